package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "clipstream/internal/delivery/context"
	"clipstream/internal/domain/entity"
	domainerrors "clipstream/internal/domain/errors"
	"clipstream/internal/domain/pagination"
	"clipstream/internal/domain/repository"
	"clipstream/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// commentService implements the CommentUsecase interface.
type commentService struct {
	txManager   repository.TransactionManager
	commentRepo repository.CommentRepository
	videoRepo   repository.VideoRepository
	userRepo    repository.UserRepository
	logger      *slog.Logger
}

// CommentServiceParams holds dependencies for commentService, injected by Fx.
type CommentServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CommentRepo repository.CommentRepository
	VideoRepo   repository.VideoRepository
	UserRepo    repository.UserRepository
	Logger      *slog.Logger
}

// NewCommentService is the constructor for commentService.
func NewCommentService(params CommentServiceParams) usecase.CommentUsecase {
	return &commentService{
		txManager:   params.TxManager,
		commentRepo: params.CommentRepo,
		videoRepo:   params.VideoRepo,
		userRepo:    params.UserRepo,
		logger:      params.Logger,
	}
}

func (srv *commentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Add creates a comment on a published video.
func (srv *commentService) Add(ctx context.Context, ownerID, videoID uuid.UUID, content string) (*entity.CommentView, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("comment content is required")
	}

	video, err := srv.videoRepo.FindByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, repository.ErrVideoNotFound) {
			return nil, errors.Wrap(domainerrors.ErrVideoNotFound, "video not found")
		}

		return nil, errors.Wrap(err, "failed to find video")
	}
	if !video.Published && video.OwnerID != ownerID {
		return nil, errors.Wrap(domainerrors.ErrVideoNotFound, "video not found")
	}

	comment := &entity.Comment{
		ID:      uuid.New(),
		OwnerID: ownerID,
		VideoID: videoID,
		Content: content,
	}
	if err := srv.commentRepo.Create(ctx, comment); err != nil {
		return nil, errors.Wrap(err, "failed to create comment")
	}

	srv.log(ctx).Info("Comment added", slog.Any("comment_id", comment.ID), slog.Any("video_id", videoID))

	return srv.toView(ctx, comment)
}

// ListByVideo returns one page of the video's comments, newest first.
func (srv *commentService) ListByVideo(ctx context.Context, videoID uuid.UUID, params pagination.Params) (*pagination.Page[*entity.CommentView], error) {
	if _, err := srv.videoRepo.FindByID(ctx, videoID); err != nil {
		if errors.Is(err, repository.ErrVideoNotFound) {
			return nil, errors.Wrap(domainerrors.ErrVideoNotFound, "video not found")
		}

		return nil, errors.Wrap(err, "failed to find video")
	}

	params = params.Normalize()
	comments, total, err := srv.commentRepo.ListByVideo(ctx, videoID, params.Offset(), params.Limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	return pagination.NewPage(comments, params, total), nil
}

// Update edits the comment's content. Only the author may update.
func (srv *commentService) Update(ctx context.Context, ownerID, commentID uuid.UUID, content string) (*entity.CommentView, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("comment content is required")
	}

	comment, err := srv.findOwned(ctx, ownerID, commentID)
	if err != nil {
		return nil, err
	}

	comment.Content = content
	if err := srv.commentRepo.Update(ctx, comment); err != nil {
		return nil, errors.Wrap(err, "failed to update comment")
	}

	return srv.toView(ctx, comment)
}

// Delete removes the comment and prunes its likes. Only the author may
// delete.
func (srv *commentService) Delete(ctx context.Context, ownerID, commentID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		comment, err := repoFactory.CommentRepo().FindByID(ctx, commentID)
		if err != nil {
			if errors.Is(err, repository.ErrCommentNotFound) {
				return errors.Wrap(domainerrors.ErrCommentNotFound, "comment not found")
			}

			return errors.Wrap(err, "failed to find comment")
		}
		if comment.OwnerID != ownerID {
			return errors.Wrap(domainerrors.ErrPermissionDenied, "not the comment author")
		}

		if err := repoFactory.LikeRepo().DeleteByTarget(ctx, entity.LikeTargetComment, commentID); err != nil {
			return errors.Wrap(err, "failed to prune likes")
		}
		if err := repoFactory.CommentRepo().Delete(ctx, commentID); err != nil {
			return errors.Wrap(err, "failed to delete comment")
		}

		return nil
	})
}

func (srv *commentService) findOwned(ctx context.Context, ownerID, commentID uuid.UUID) (*entity.Comment, error) {
	comment, err := srv.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCommentNotFound, "comment not found")
		}

		return nil, errors.Wrap(err, "failed to find comment")
	}

	if comment.OwnerID != ownerID {
		return nil, errors.Wrap(domainerrors.ErrPermissionDenied, "not the comment author")
	}

	return comment, nil
}

func (srv *commentService) toView(ctx context.Context, comment *entity.Comment) (*entity.CommentView, error) {
	author, err := srv.userRepo.FindByID(ctx, comment.OwnerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load comment author")
	}

	return &entity.CommentView{
		Comment: *comment,
		Owner: &entity.Owner{
			ID:        author.ID,
			Username:  author.Username,
			FullName:  author.FullName,
			AvatarURL: author.AvatarURL,
		},
	}, nil
}
