package impl

import (
	"context"
	"log/slog"

	deliverycontext "clipstream/internal/delivery/context"
	"clipstream/internal/domain/entity"
	domainerrors "clipstream/internal/domain/errors"
	"clipstream/internal/domain/pagination"
	"clipstream/internal/domain/repository"
	"clipstream/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// channelService implements the ChannelUsecase interface.
type channelService struct {
	userRepo         repository.UserRepository
	videoRepo        repository.VideoRepository
	subscriptionRepo repository.SubscriptionRepository
	likeRepo         repository.LikeRepository
	watchRepo        repository.WatchHistoryRepository
	logger           *slog.Logger
}

// ChannelServiceParams holds dependencies for channelService, injected by Fx.
type ChannelServiceParams struct {
	fx.In

	UserRepo         repository.UserRepository
	VideoRepo        repository.VideoRepository
	SubscriptionRepo repository.SubscriptionRepository
	LikeRepo         repository.LikeRepository
	WatchRepo        repository.WatchHistoryRepository
	Logger           *slog.Logger
}

// NewChannelService is the constructor for channelService.
func NewChannelService(params ChannelServiceParams) usecase.ChannelUsecase {
	return &channelService{
		userRepo:         params.UserRepo,
		videoRepo:        params.VideoRepo,
		subscriptionRepo: params.SubscriptionRepo,
		likeRepo:         params.LikeRepo,
		watchRepo:        params.WatchRepo,
		logger:           params.Logger,
	}
}

func (srv *channelService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Profile composes the channel page: the public user record, both
// subscription counts, the viewer's membership flag and the channel's
// published videos. The reads are independent, so they run concurrently.
func (srv *channelService) Profile(ctx context.Context, viewerID *uuid.UUID, username string) (*entity.ChannelProfile, error) {
	channel, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrChannelNotFound, "channel not found")
		}

		return nil, errors.Wrap(err, "failed to find channel")
	}

	profile := &entity.ChannelProfile{
		PublicUser: channel.Sanitized(),
		Videos:     []*entity.VideoView{},
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		count, err := srv.subscriptionRepo.CountByChannel(groupCtx, channel.ID)
		if err != nil {
			return errors.Wrap(err, "failed to count subscribers")
		}
		profile.SubscriberCount = count

		return nil
	})

	group.Go(func() error {
		count, err := srv.subscriptionRepo.CountBySubscriber(groupCtx, channel.ID)
		if err != nil {
			return errors.Wrap(err, "failed to count subscribed channels")
		}
		profile.SubscribedToCount = count

		return nil
	})

	if viewerID != nil && *viewerID != channel.ID {
		group.Go(func() error {
			subscribed, err := srv.subscriptionRepo.Exists(groupCtx, *viewerID, channel.ID)
			if err != nil {
				return errors.Wrap(err, "failed to check subscription")
			}
			profile.IsSubscribed = subscribed

			return nil
		})
	}

	group.Go(func() error {
		videos, _, err := srv.videoRepo.List(groupCtx, repository.VideoListQuery{
			OwnerID:       &channel.ID,
			PublishedOnly: true,
			SortBy:        entity.SortByCreatedAt,
			SortDesc:      true,
			ViewerID:      viewerID,
			Limit:         pagination.DefaultLimit,
		})
		if err != nil {
			return errors.Wrap(err, "failed to list channel videos")
		}
		profile.Videos = videos

		return nil
	})

	if err := group.Wait(); err != nil {
		srv.log(ctx).Error("Failed to compose channel profile", slog.Any("error", err), slog.String("username", username))

		return nil, err
	}

	return profile, nil
}

// Stats computes the owner dashboard. Each aggregate is independent and a
// channel with no content reports zeros, never nulls.
func (srv *channelService) Stats(ctx context.Context, ownerID uuid.UUID) (*entity.ChannelStats, error) {
	stats := &entity.ChannelStats{}
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		count, err := srv.videoRepo.CountByOwner(groupCtx, ownerID)
		if err != nil {
			return errors.Wrap(err, "failed to count videos")
		}
		stats.TotalVideos = count

		return nil
	})

	group.Go(func() error {
		views, err := srv.videoRepo.SumViewsByOwner(groupCtx, ownerID)
		if err != nil {
			return errors.Wrap(err, "failed to sum views")
		}
		stats.TotalViews = views

		return nil
	})

	group.Go(func() error {
		count, err := srv.subscriptionRepo.CountByChannel(groupCtx, ownerID)
		if err != nil {
			return errors.Wrap(err, "failed to count subscribers")
		}
		stats.TotalSubscribers = count

		return nil
	})

	group.Go(func() error {
		count, err := srv.likeRepo.CountReceivedByOwner(groupCtx, ownerID)
		if err != nil {
			return errors.Wrap(err, "failed to count received likes")
		}
		stats.TotalLikes = count

		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return stats, nil
}

// WatchHistory returns one page of the user's history, most recent first.
func (srv *channelService) WatchHistory(ctx context.Context, userID uuid.UUID, params pagination.Params) (*pagination.Page[*entity.WatchEntryView], error) {
	params = params.Normalize()

	entries, total, err := srv.watchRepo.ListByUser(ctx, userID, params.Offset(), params.Limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list watch history")
	}

	return pagination.NewPage(entries, params, total), nil
}
