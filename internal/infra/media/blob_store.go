// Package media stores uploaded files in a gocloud.dev blob bucket. The
// bucket URL decides the backend: file:// in development, s3:// or gs:// in
// production, with the drivers registered by the blank imports below.
package media

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"

	"clipstream/config"
	"clipstream/internal/domain/lifecycle"
	"clipstream/internal/domain/service"
	"clipstream/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"
)

// blobStore implements the service.MediaStore interface.
type blobStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewBlobStore opens the configured bucket and manages its lifecycle.
func NewBlobStore(params Params) (service.MediaStore, error) {
	if params.Config.Media == nil || params.Config.Media.BucketURL == "" {
		return nil, errors.New("media bucket configuration is required")
	}

	openCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, params.Config.Media.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open media bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(params.Config.Media.PublicBaseURL, "/"),
		logger:        params.Logger,
	}, nil
}

// Upload streams the file into the bucket under a fresh key. Video uploads
// are probed for their duration while the bytes stream through, so the file
// is read exactly once.
func (s *blobStore) Upload(ctx context.Context, kind service.MediaKind, filename, contentType string, r io.Reader) (*service.UploadResult, error) {
	key := string(kind) + "/" + uuid.New().String() + strings.ToLower(path.Ext(filename))

	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open bucket writer")
	}

	var probe *mvhdProbe
	if kind == service.MediaKindVideo {
		probe = &mvhdProbe{}
		r = io.TeeReader(r, probe)
	}

	size, err := io.Copy(w, r)
	if err != nil {
		w.Close()
		// Remove the partial object; a failed upload must leave nothing behind.
		if delErr := s.bucket.Delete(ctx, key); delErr != nil && gcerrors.Code(delErr) != gcerrors.NotFound {
			s.logger.Warn("Failed to clean up partial upload", slog.Any("error", delErr), slog.String("key", key))
		}

		return nil, errors.Wrap(err, "failed to stream upload")
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to finalize upload")
	}

	result := &service.UploadResult{
		URL:       s.publicBaseURL + "/" + key,
		SizeBytes: size,
	}
	if probe != nil {
		result.DurationSeconds = probe.Seconds()
	}

	s.logger.Debug("Stored media object",
		slog.String("key", key),
		slog.String("size", util.FormatBytes(size)),
		slog.String("duration", util.FormatDuration(time.Duration(result.DurationSeconds*float64(time.Second)))),
	)

	return result, nil
}

// Delete removes a stored object by its public URL. Missing objects are not
// an error.
func (s *blobStore) Delete(ctx context.Context, url string) error {
	key := strings.TrimPrefix(strings.TrimPrefix(url, s.publicBaseURL), "/")
	if key == "" {
		return nil
	}

	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrap(err, "failed to delete media object")
	}

	return nil
}
