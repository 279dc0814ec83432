package service

import (
	"context"
	"io"
)

// MediaKind selects the storage prefix and validation rules for an upload.
type MediaKind string

const (
	MediaKindVideo     MediaKind = "videos"
	MediaKindThumbnail MediaKind = "thumbnails"
	MediaKindAvatar    MediaKind = "avatars"
	MediaKindCover     MediaKind = "covers"
)

// UploadResult describes a stored media object.
type UploadResult struct {
	// URL is the durable public URL of the stored object.
	URL string
	// DurationSeconds is populated for video uploads only.
	DurationSeconds float64
	// SizeBytes is the number of bytes written.
	SizeBytes int64
}

// MediaStore persists uploaded media files and reports the durable URL the
// platform serves them from. Entity creation must not proceed when the
// upload fails, so implementations return an error rather than a partial
// result.
type MediaStore interface {
	Upload(ctx context.Context, kind MediaKind, filename string, contentType string, r io.Reader) (*UploadResult, error)

	// Delete removes a previously stored object by its URL. Missing
	// objects are not an error.
	Delete(ctx context.Context, url string) error
}
