package impl

import (
	"context"
	"log/slog"

	deliverycontext "clipstream/internal/delivery/context"
	"clipstream/internal/domain/entity"
	domainerrors "clipstream/internal/domain/errors"
	"clipstream/internal/domain/pagination"
	"clipstream/internal/domain/repository"
	"clipstream/internal/domain/service"
	"clipstream/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// videoService implements the VideoUsecase interface.
type videoService struct {
	txManager  repository.TransactionManager
	videoRepo  repository.VideoRepository
	watchRepo  repository.WatchHistoryRepository
	mediaStore service.MediaStore
	logger     *slog.Logger
}

// VideoServiceParams holds dependencies for videoService, injected by Fx.
type VideoServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	VideoRepo  repository.VideoRepository
	WatchRepo  repository.WatchHistoryRepository
	MediaStore service.MediaStore
	Logger     *slog.Logger
}

// NewVideoService is the constructor for videoService.
func NewVideoService(params VideoServiceParams) usecase.VideoUsecase {
	return &videoService{
		txManager:  params.TxManager,
		videoRepo:  params.VideoRepo,
		watchRepo:  params.WatchRepo,
		mediaStore: params.MediaStore,
		logger:     params.Logger,
	}
}

func (srv *videoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Publish uploads both media files, probes the video's duration and creates
// the video in published state. Upload failures abort before any row is
// written.
func (srv *videoService) Publish(ctx context.Context, ownerID uuid.UUID, input usecase.PublishVideoInput) (*entity.VideoView, error) {
	srv.log(ctx).Info("Publishing video", slog.Any("owner_id", ownerID), slog.String("title", input.Title))

	uploaded, err := srv.mediaStore.Upload(ctx, service.MediaKindVideo, input.VideoFile.Filename, input.VideoFile.ContentType, input.VideoFile.Reader)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrUploadFailed, err.Error())
	}

	thumbnail, err := srv.mediaStore.Upload(ctx, service.MediaKindThumbnail, input.Thumbnail.Filename, input.Thumbnail.ContentType, input.Thumbnail.Reader)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrUploadFailed, err.Error())
	}

	video := &entity.Video{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		VideoURL:     uploaded.URL,
		ThumbnailURL: thumbnail.URL,
		Title:        input.Title,
		Description:  input.Description,
		Duration:     uploaded.DurationSeconds,
		Published:    true,
	}

	if err := srv.videoRepo.Create(ctx, video); err != nil {
		return nil, errors.Wrap(err, "failed to create video")
	}

	view, err := srv.videoRepo.FindViewByID(ctx, video.ID, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load created video")
	}

	srv.log(ctx).Info("Video published", slog.Any("video_id", video.ID))

	return view, nil
}

// List returns one page of published videos.
func (srv *videoService) List(ctx context.Context, viewerID *uuid.UUID, input usecase.ListVideosInput) (*pagination.Page[*entity.VideoView], error) {
	sortBy, sortDesc, err := parseVideoSort(input.SortBy, input.SortOrder)
	if err != nil {
		return nil, err
	}

	params := input.Params.Normalize()
	items, total, err := srv.videoRepo.List(ctx, repository.VideoListQuery{
		OwnerID:       input.OwnerID,
		PublishedOnly: true,
		Search:        input.Search,
		SortBy:        sortBy,
		SortDesc:      sortDesc,
		ViewerID:      viewerID,
		Offset:        params.Offset(),
		Limit:         params.Limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list videos")
	}

	return pagination.NewPage(items, params, total), nil
}

// ListOwn returns one page of the owner's videos, unpublished included.
func (srv *videoService) ListOwn(ctx context.Context, ownerID uuid.UUID, input usecase.ListVideosInput) (*pagination.Page[*entity.VideoView], error) {
	sortBy, sortDesc, err := parseVideoSort(input.SortBy, input.SortOrder)
	if err != nil {
		return nil, err
	}

	params := input.Params.Normalize()
	items, total, err := srv.videoRepo.List(ctx, repository.VideoListQuery{
		OwnerID:  &ownerID,
		Search:   input.Search,
		SortBy:   sortBy,
		SortDesc: sortDesc,
		ViewerID: &ownerID,
		Offset:   params.Offset(),
		Limit:    params.Limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list videos")
	}

	return pagination.NewPage(items, params, total), nil
}

// Get returns the composed projection. Unpublished videos resolve only for
// their owner; everyone else gets a not-found, never a permission error, so
// drafts stay invisible. Authenticated reads bump the view counter and
// record a watch-history entry.
func (srv *videoService) Get(ctx context.Context, viewerID *uuid.UUID, videoID uuid.UUID) (*entity.VideoView, error) {
	view, err := srv.videoRepo.FindViewByID(ctx, videoID, viewerID)
	if err != nil {
		if errors.Is(err, repository.ErrVideoNotFound) {
			return nil, errors.Wrap(domainerrors.ErrVideoNotFound, "video not found")
		}

		return nil, errors.Wrap(err, "failed to load video")
	}

	if !view.Published && (viewerID == nil || *viewerID != view.OwnerID) {
		return nil, errors.Wrap(domainerrors.ErrVideoNotFound, "video not found")
	}

	if viewerID != nil {
		if err := srv.videoRepo.IncrementViews(ctx, videoID); err != nil {
			srv.log(ctx).Warn("Failed to increment views", slog.Any("error", err), slog.Any("video_id", videoID))
		} else {
			view.Views++
		}

		if err := srv.watchRepo.Record(ctx, *viewerID, videoID); err != nil {
			srv.log(ctx).Warn("Failed to record watch history", slog.Any("error", err), slog.Any("video_id", videoID))
		}
	}

	return view, nil
}

// Update modifies the video's metadata. Only the owner may update.
func (srv *videoService) Update(ctx context.Context, ownerID, videoID uuid.UUID, input usecase.UpdateVideoInput) (*entity.VideoView, error) {
	video, err := srv.findOwned(ctx, srv.videoRepo, ownerID, videoID)
	if err != nil {
		return nil, err
	}

	if input.Title != "" {
		video.Title = input.Title
	}
	if input.Description != "" {
		video.Description = input.Description
	}

	previousThumbnail := ""
	if input.Thumbnail != nil {
		uploaded, err := srv.mediaStore.Upload(ctx, service.MediaKindThumbnail, input.Thumbnail.Filename, input.Thumbnail.ContentType, input.Thumbnail.Reader)
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrUploadFailed, err.Error())
		}
		previousThumbnail = video.ThumbnailURL
		video.ThumbnailURL = uploaded.URL
	}

	if err := srv.videoRepo.Update(ctx, video); err != nil {
		return nil, errors.Wrap(err, "failed to update video")
	}

	if previousThumbnail != "" {
		if err := srv.mediaStore.Delete(ctx, previousThumbnail); err != nil {
			srv.log(ctx).Warn("Failed to delete replaced thumbnail", slog.Any("error", err))
		}
	}

	return srv.videoRepo.FindViewByID(ctx, videoID, &ownerID)
}

// Delete removes the video and prunes everything that hangs off it: likes,
// comments, playlist membership and watch-history entries, all in one
// transaction. Media objects are removed best-effort afterwards.
func (srv *videoService) Delete(ctx context.Context, ownerID, videoID uuid.UUID) error {
	var videoURL, thumbnailURL string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		videoRepo := repoFactory.VideoRepo()

		video, err := srv.findOwned(ctx, videoRepo, ownerID, videoID)
		if err != nil {
			return err
		}
		videoURL, thumbnailURL = video.VideoURL, video.ThumbnailURL

		if err := repoFactory.LikeRepo().DeleteByTarget(ctx, entity.LikeTargetVideo, videoID); err != nil {
			return errors.Wrap(err, "failed to prune likes")
		}
		if err := repoFactory.CommentRepo().DeleteByVideo(ctx, videoID); err != nil {
			return errors.Wrap(err, "failed to prune comments")
		}
		if err := repoFactory.PlaylistRepo().RemoveVideoEverywhere(ctx, videoID); err != nil {
			return errors.Wrap(err, "failed to prune playlist membership")
		}
		if err := repoFactory.WatchHistoryRepo().DeleteByVideo(ctx, videoID); err != nil {
			return errors.Wrap(err, "failed to prune watch history")
		}

		if err := videoRepo.Delete(ctx, videoID); err != nil {
			return errors.Wrap(err, "failed to delete video")
		}

		return nil
	})
	if err != nil {
		return err
	}

	for _, url := range []string{videoURL, thumbnailURL} {
		if url == "" {
			continue
		}
		if err := srv.mediaStore.Delete(ctx, url); err != nil {
			srv.log(ctx).Warn("Failed to delete media object", slog.Any("error", err), slog.String("url", url))
		}
	}

	srv.log(ctx).Info("Video deleted", slog.Any("video_id", videoID))

	return nil
}

// TogglePublish flips the publish flag. Only the owner may toggle.
func (srv *videoService) TogglePublish(ctx context.Context, ownerID, videoID uuid.UUID) (*entity.Video, error) {
	video, err := srv.findOwned(ctx, srv.videoRepo, ownerID, videoID)
	if err != nil {
		return nil, err
	}

	video.Published = !video.Published
	if err := srv.videoRepo.Update(ctx, video); err != nil {
		return nil, errors.Wrap(err, "failed to update video")
	}

	return video, nil
}

// findOwned loads the video and enforces ownership for mutations. A missing
// video is NotFound; an existing video owned by someone else is
// PermissionDenied.
func (srv *videoService) findOwned(ctx context.Context, videoRepo repository.VideoRepository, ownerID, videoID uuid.UUID) (*entity.Video, error) {
	video, err := videoRepo.FindByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, repository.ErrVideoNotFound) {
			return nil, errors.Wrap(domainerrors.ErrVideoNotFound, "video not found")
		}

		return nil, errors.Wrap(err, "failed to find video")
	}

	if video.OwnerID != ownerID {
		return nil, errors.Wrap(domainerrors.ErrPermissionDenied, "not the video owner")
	}

	return video, nil
}

// parseVideoSort validates the sort key against the allow-list and resolves
// the direction. Empty values fall back to newest-first.
func parseVideoSort(sortBy, sortOrder string) (entity.VideoSortField, bool, error) {
	field := entity.SortByCreatedAt
	if sortBy != "" {
		field = entity.VideoSortField(sortBy)
		if !field.Valid() {
			return "", false, domainerrors.ErrInvalidArgument.WrapMessage("unsupported sort field: " + sortBy)
		}
	}

	switch sortOrder {
	case "", "desc":
		return field, true, nil
	case "asc":
		return field, false, nil
	default:
		return "", false, domainerrors.ErrInvalidArgument.WrapMessage("sort order must be asc or desc")
	}
}
