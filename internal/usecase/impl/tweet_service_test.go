package impl

import (
	"context"
	"testing"

	"clipstream/internal/domain/entity"
	domainerrors "clipstream/internal/domain/errors"
	"clipstream/internal/domain/pagination"
	"clipstream/internal/domain/repository"
	mockRepo "clipstream/internal/mocks/repository"
	"clipstream/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type tweetMocks struct {
	tweets *mockRepo.MockTweetRepository
	users  *mockRepo.MockUserRepository
	likes  *mockRepo.MockLikeRepository
}

func newTweetServiceForTest(t *testing.T) (usecase.TweetUsecase, tweetMocks) {
	t.Helper()

	mocks := tweetMocks{
		tweets: mockRepo.NewMockTweetRepository(t),
		users:  mockRepo.NewMockUserRepository(t),
		likes:  mockRepo.NewMockLikeRepository(t),
	}

	service := NewTweetService(TweetServiceParams{
		TxManager: testTxManager(&mockRepo.MockRepositoryFactory{
			Tweets: mocks.tweets,
			Likes:  mocks.likes,
		}),
		TweetRepo: mocks.tweets,
		UserRepo:  mocks.users,
		LikeRepo:  mocks.likes,
		Logger:    testLogger(),
	})

	return service, mocks
}

func TestTweetService_Create_TrimsContent(t *testing.T) {
	service, mocks := newTweetServiceForTest(t)

	ownerID := uuid.New()
	author := &entity.User{ID: ownerID, Username: "maya", FullName: "Maya Chen"}

	mocks.tweets.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Tweet")).Return(nil)
	mocks.users.EXPECT().FindByID(mock.Anything, ownerID).Return(author, nil)
	mocks.likes.EXPECT().CountByTarget(mock.Anything, entity.LikeTargetTweet, mock.Anything).Return(int64(0), nil)

	view, err := service.Create(context.Background(), ownerID, "  hello channel  ")
	require.NoError(t, err)
	assert.Equal(t, "hello channel", view.Content)
	assert.Equal(t, "maya", view.Owner.Username)
	assert.Zero(t, view.LikeCount)
}

func TestTweetService_Create_RequiresContent(t *testing.T) {
	service, _ := newTweetServiceForTest(t)

	_, err := service.Create(context.Background(), uuid.New(), "   ")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestTweetService_ListByUser_UnknownUser(t *testing.T) {
	service, mocks := newTweetServiceForTest(t)

	userID := uuid.New()
	mocks.users.EXPECT().FindByID(mock.Anything, userID).Return(nil, repository.ErrUserNotFound)

	_, err := service.ListByUser(context.Background(), userID, pagination.Params{})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestTweetService_ListByUser_Windows(t *testing.T) {
	service, mocks := newTweetServiceForTest(t)

	userID := uuid.New()
	mocks.users.EXPECT().FindByID(mock.Anything, userID).Return(&entity.User{ID: userID}, nil)
	mocks.tweets.EXPECT().ListByOwner(mock.Anything, userID, 10, 10).
		Return([]*entity.TweetView{}, int64(25), nil)

	page, err := service.ListByUser(context.Background(), userID, pagination.Params{Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, int64(25), page.TotalItems)
	assert.Equal(t, int64(3), page.TotalPages)
}

func TestTweetService_Update_NotAuthor(t *testing.T) {
	service, mocks := newTweetServiceForTest(t)

	tweetID := uuid.New()
	mocks.tweets.EXPECT().FindByID(mock.Anything, tweetID).
		Return(&entity.Tweet{ID: tweetID, OwnerID: uuid.New()}, nil)

	_, err := service.Update(context.Background(), uuid.New(), tweetID, "edited")
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestTweetService_Delete_PrunesLikes(t *testing.T) {
	service, mocks := newTweetServiceForTest(t)

	ownerID := uuid.New()
	tweetID := uuid.New()

	mocks.tweets.EXPECT().FindByID(mock.Anything, tweetID).
		Return(&entity.Tweet{ID: tweetID, OwnerID: ownerID}, nil)
	mocks.likes.EXPECT().DeleteByTarget(mock.Anything, entity.LikeTargetTweet, tweetID).Return(nil)
	mocks.tweets.EXPECT().Delete(mock.Anything, tweetID).Return(nil)

	err := service.Delete(context.Background(), ownerID, tweetID)
	require.NoError(t, err)
}
