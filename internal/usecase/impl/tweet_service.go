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

// tweetService implements the TweetUsecase interface.
type tweetService struct {
	txManager repository.TransactionManager
	tweetRepo repository.TweetRepository
	userRepo  repository.UserRepository
	likeRepo  repository.LikeRepository
	logger    *slog.Logger
}

// TweetServiceParams holds dependencies for tweetService, injected by Fx.
type TweetServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	TweetRepo repository.TweetRepository
	UserRepo  repository.UserRepository
	LikeRepo  repository.LikeRepository
	Logger    *slog.Logger
}

// NewTweetService is the constructor for tweetService.
func NewTweetService(params TweetServiceParams) usecase.TweetUsecase {
	return &tweetService{
		txManager: params.TxManager,
		tweetRepo: params.TweetRepo,
		userRepo:  params.UserRepo,
		likeRepo:  params.LikeRepo,
		logger:    params.Logger,
	}
}

func (srv *tweetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create posts a tweet to the user's channel.
func (srv *tweetService) Create(ctx context.Context, ownerID uuid.UUID, content string) (*entity.TweetView, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("tweet content is required")
	}

	tweet := &entity.Tweet{
		ID:      uuid.New(),
		OwnerID: ownerID,
		Content: content,
	}
	if err := srv.tweetRepo.Create(ctx, tweet); err != nil {
		return nil, errors.Wrap(err, "failed to create tweet")
	}

	srv.log(ctx).Info("Tweet created", slog.Any("tweet_id", tweet.ID))

	return srv.toView(ctx, tweet)
}

// ListByUser returns one page of the user's tweets, newest first.
func (srv *tweetService) ListByUser(ctx context.Context, userID uuid.UUID, params pagination.Params) (*pagination.Page[*entity.TweetView], error) {
	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	params = params.Normalize()
	tweets, total, err := srv.tweetRepo.ListByOwner(ctx, userID, params.Offset(), params.Limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tweets")
	}

	return pagination.NewPage(tweets, params, total), nil
}

// Update edits the tweet's content. Only the author may update.
func (srv *tweetService) Update(ctx context.Context, ownerID, tweetID uuid.UUID, content string) (*entity.TweetView, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domainerrors.ErrInvalidArgument.WrapMessage("tweet content is required")
	}

	tweet, err := srv.findOwned(ctx, ownerID, tweetID)
	if err != nil {
		return nil, err
	}

	tweet.Content = content
	if err := srv.tweetRepo.Update(ctx, tweet); err != nil {
		return nil, errors.Wrap(err, "failed to update tweet")
	}

	return srv.toView(ctx, tweet)
}

// Delete removes the tweet and prunes its likes. Only the author may delete.
func (srv *tweetService) Delete(ctx context.Context, ownerID, tweetID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tweet, err := repoFactory.TweetRepo().FindByID(ctx, tweetID)
		if err != nil {
			if errors.Is(err, repository.ErrTweetNotFound) {
				return errors.Wrap(domainerrors.ErrTweetNotFound, "tweet not found")
			}

			return errors.Wrap(err, "failed to find tweet")
		}
		if tweet.OwnerID != ownerID {
			return errors.Wrap(domainerrors.ErrPermissionDenied, "not the tweet author")
		}

		if err := repoFactory.LikeRepo().DeleteByTarget(ctx, entity.LikeTargetTweet, tweetID); err != nil {
			return errors.Wrap(err, "failed to prune likes")
		}
		if err := repoFactory.TweetRepo().Delete(ctx, tweetID); err != nil {
			return errors.Wrap(err, "failed to delete tweet")
		}

		return nil
	})
}

func (srv *tweetService) findOwned(ctx context.Context, ownerID, tweetID uuid.UUID) (*entity.Tweet, error) {
	tweet, err := srv.tweetRepo.FindByID(ctx, tweetID)
	if err != nil {
		if errors.Is(err, repository.ErrTweetNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTweetNotFound, "tweet not found")
		}

		return nil, errors.Wrap(err, "failed to find tweet")
	}

	if tweet.OwnerID != ownerID {
		return nil, errors.Wrap(domainerrors.ErrPermissionDenied, "not the tweet author")
	}

	return tweet, nil
}

func (srv *tweetService) toView(ctx context.Context, tweet *entity.Tweet) (*entity.TweetView, error) {
	author, err := srv.userRepo.FindByID(ctx, tweet.OwnerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load tweet author")
	}

	count, err := srv.likeRepo.CountByTarget(ctx, entity.LikeTargetTweet, tweet.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count likes")
	}

	return &entity.TweetView{
		Tweet:     *tweet,
		LikeCount: count,
		Owner: &entity.Owner{
			ID:        author.ID,
			Username:  author.Username,
			FullName:  author.FullName,
			AvatarURL: author.AvatarURL,
		},
	}, nil
}
