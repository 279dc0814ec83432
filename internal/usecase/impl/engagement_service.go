package impl

import (
	"context"
	"log/slog"

	deliverycontext "clipstream/internal/delivery/context"
	"clipstream/internal/domain/entity"
	domainerrors "clipstream/internal/domain/errors"
	"clipstream/internal/domain/repository"
	"clipstream/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// engagementService implements the EngagementUsecase interface.
type engagementService struct {
	txManager        repository.TransactionManager
	subscriptionRepo repository.SubscriptionRepository
	likeRepo         repository.LikeRepository
	userRepo         repository.UserRepository
	logger           *slog.Logger
}

// EngagementServiceParams holds dependencies for engagementService, injected by Fx.
type EngagementServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	SubscriptionRepo repository.SubscriptionRepository
	LikeRepo         repository.LikeRepository
	UserRepo         repository.UserRepository
	Logger           *slog.Logger
}

// NewEngagementService is the constructor for engagementService.
func NewEngagementService(params EngagementServiceParams) usecase.EngagementUsecase {
	return &engagementService{
		txManager:        params.TxManager,
		subscriptionRepo: params.SubscriptionRepo,
		likeRepo:         params.LikeRepo,
		userRepo:         params.UserRepo,
		logger:           params.Logger,
	}
}

func (srv *engagementService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ToggleSubscription flips the subscriber→channel edge and reports the
// resulting membership. The toggle itself is a single insert-if-absent
// against the unique index, so two racing requests settle on one edge.
func (srv *engagementService) ToggleSubscription(ctx context.Context, subscriberID, channelID uuid.UUID) (*usecase.ToggleSubscriptionOutput, error) {
	if subscriberID == channelID {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("cannot subscribe to own channel")
	}

	if _, err := srv.userRepo.FindByID(ctx, channelID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrChannelNotFound, "channel not found")
		}

		return nil, errors.Wrap(err, "failed to find channel")
	}

	state, _, err := srv.subscriptionRepo.Toggle(ctx, subscriberID, channelID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to toggle subscription")
	}

	srv.log(ctx).Info("Subscription toggled",
		slog.Any("subscriber_id", subscriberID),
		slog.Any("channel_id", channelID),
		slog.String("state", string(state)))

	return &usecase.ToggleSubscriptionOutput{
		State:      state,
		Subscribed: state == entity.ToggleCreated,
	}, nil
}

// ToggleLike flips the user's like edge on one target. Creating an edge
// requires the target to exist; removal succeeds regardless, so dangling
// edges can always be cleared.
func (srv *engagementService) ToggleLike(ctx context.Context, userID uuid.UUID, kind entity.LikeTargetKind, targetID uuid.UUID) (*usecase.ToggleLikeOutput, error) {
	if !kind.Valid() {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("unknown like target kind: " + string(kind))
	}

	var output *usecase.ToggleLikeOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		likeRepo := repoFactory.LikeRepo()

		exists, err := likeRepo.Exists(ctx, userID, kind, targetID)
		if err != nil {
			return errors.Wrap(err, "failed to check like")
		}
		if !exists {
			if err := srv.checkTargetExists(ctx, repoFactory, kind, targetID); err != nil {
				return err
			}
		}

		state, _, err := likeRepo.Toggle(ctx, userID, kind, targetID)
		if err != nil {
			return errors.Wrap(err, "failed to toggle like")
		}

		count, err := likeRepo.CountByTarget(ctx, kind, targetID)
		if err != nil {
			return errors.Wrap(err, "failed to count likes")
		}

		output = &usecase.ToggleLikeOutput{
			State:     state,
			Liked:     state == entity.ToggleCreated,
			LikeCount: count,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Like toggled",
		slog.Any("user_id", userID),
		slog.String("target_kind", string(kind)),
		slog.Any("target_id", targetID),
		slog.String("state", string(output.State)))

	return output, nil
}

// ListChannelSubscribers returns the users subscribed to the channel.
func (srv *engagementService) ListChannelSubscribers(ctx context.Context, channelID uuid.UUID) ([]*entity.ChannelSummary, error) {
	if _, err := srv.userRepo.FindByID(ctx, channelID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrChannelNotFound, "channel not found")
		}

		return nil, errors.Wrap(err, "failed to find channel")
	}

	subscribers, err := srv.subscriptionRepo.ListSubscribers(ctx, channelID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscribers")
	}

	return subscribers, nil
}

// ListSubscribedChannels returns the channels the user follows.
func (srv *engagementService) ListSubscribedChannels(ctx context.Context, subscriberID uuid.UUID) ([]*entity.ChannelSummary, error) {
	channels, err := srv.subscriptionRepo.ListSubscribedChannels(ctx, subscriberID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscribed channels")
	}

	return channels, nil
}

// LikedVideos returns the user's liked, still-published videos.
func (srv *engagementService) LikedVideos(ctx context.Context, userID uuid.UUID) ([]*entity.VideoView, error) {
	videos, err := srv.likeRepo.ListLikedVideos(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list liked videos")
	}

	return videos, nil
}

func (srv *engagementService) checkTargetExists(ctx context.Context, repoFactory repository.RepositoryFactory, kind entity.LikeTargetKind, targetID uuid.UUID) error {
	switch kind {
	case entity.LikeTargetVideo:
		if _, err := repoFactory.VideoRepo().FindByID(ctx, targetID); err != nil {
			if errors.Is(err, repository.ErrVideoNotFound) {
				return errors.Wrap(domainerrors.ErrVideoNotFound, "video not found")
			}

			return errors.Wrap(err, "failed to find video")
		}
	case entity.LikeTargetComment:
		if _, err := repoFactory.CommentRepo().FindByID(ctx, targetID); err != nil {
			if errors.Is(err, repository.ErrCommentNotFound) {
				return errors.Wrap(domainerrors.ErrCommentNotFound, "comment not found")
			}

			return errors.Wrap(err, "failed to find comment")
		}
	case entity.LikeTargetTweet:
		if _, err := repoFactory.TweetRepo().FindByID(ctx, targetID); err != nil {
			if errors.Is(err, repository.ErrTweetNotFound) {
				return errors.Wrap(domainerrors.ErrTweetNotFound, "tweet not found")
			}

			return errors.Wrap(err, "failed to find tweet")
		}
	}

	return nil
}
