package main

import (
	"context"
	"log/slog"
	"os"

	"clipstream/config"
	"clipstream/internal/delivery"
	"clipstream/internal/delivery/http"
	httpmw "clipstream/internal/delivery/http/middleware"
	"clipstream/internal/delivery/http/router/handler"
	deliverymw "clipstream/internal/delivery/middleware"
	"clipstream/internal/domain/service"
	"clipstream/internal/infra/auth"
	logs "clipstream/internal/infra/log"
	"clipstream/internal/infra/media"
	"clipstream/internal/infra/persistence/postgres"
	"clipstream/internal/infra/qrcode"
	"clipstream/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewVideoRepository,
			postgres.NewCommentRepository,
			postgres.NewTweetRepository,
			postgres.NewPlaylistRepository,
			postgres.NewSubscriptionRepository,
			postgres.NewLikeRepository,
			postgres.NewWatchHistoryRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			media.NewBlobStore,
			newShareCodeService,
		),
	)
}

// newShareCodeService creates a share code service with sensible defaults
// when the share section is absent from the config file.
func newShareCodeService(cfg *config.Config) service.ShareCodeService {
	if cfg.Share == nil {
		return qrcode.NewShareCodeService("http://localhost:3000", 256, "M")
	}

	return qrcode.NewShareCodeService(cfg.Share.BaseURL, cfg.Share.QRSize, cfg.Share.QRErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewVideoService,
			impl.NewCommentService,
			impl.NewTweetService,
			impl.NewPlaylistService,
			impl.NewEngagementService,
			impl.NewChannelService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			httpmw.NewAuthMiddleware,
			httpmw.NewErrorMiddleware,
			deliverymw.NewRequestIDMiddleware,
			deliverymw.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewVideoHandler,
			handler.NewCommentHandler,
			handler.NewTweetHandler,
			handler.NewPlaylistHandler,
			handler.NewEngagementHandler,
			handler.NewChannelHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
