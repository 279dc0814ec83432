package logs

import (
	"log/slog"
	"os"
	"strings"

	"clipstream/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the dependencies for the logger provider.
type Params struct {
	fx.In

	Config *config.Config
}

// New builds the application slog.Logger. Output is JSON for machine
// consumption unless pretty (text) output is configured.
func New(params Params) (*slog.Logger, error) {
	level, err := parseLogLevel(params.Config.Env.Log.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	if params.Config.Env.Log.Pretty {
		return slog.New(slog.NewTextHandler(os.Stdout, opts)), nil
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, opts)), nil
}

// parseLogLevel converts the configured level name to slog.Level. An
// empty value defaults to info.
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
