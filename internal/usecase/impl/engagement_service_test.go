package impl

import (
	"context"
	"testing"

	"clipstream/internal/domain/entity"
	domainerrors "clipstream/internal/domain/errors"
	"clipstream/internal/domain/repository"
	mockRepo "clipstream/internal/mocks/repository"
	"clipstream/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type engagementMocks struct {
	subs   *mockRepo.MockSubscriptionRepository
	likes  *mockRepo.MockLikeRepository
	users  *mockRepo.MockUserRepository
	videos *mockRepo.MockVideoRepository
}

func newEngagementServiceForTest(t *testing.T) (usecase.EngagementUsecase, engagementMocks) {
	t.Helper()

	m := engagementMocks{
		subs:   mockRepo.NewMockSubscriptionRepository(t),
		likes:  mockRepo.NewMockLikeRepository(t),
		users:  mockRepo.NewMockUserRepository(t),
		videos: mockRepo.NewMockVideoRepository(t),
	}

	service := NewEngagementService(EngagementServiceParams{
		TxManager: testTxManager(&mockRepo.MockRepositoryFactory{
			Likes:  m.likes,
			Videos: m.videos,
		}),
		SubscriptionRepo: m.subs,
		LikeRepo:         m.likes,
		UserRepo:         m.users,
		Logger:           testLogger(),
	})

	return service, m
}

func TestEngagementService_ToggleSubscription_Create(t *testing.T) {
	service, m := newEngagementServiceForTest(t)

	subscriberID := uuid.New()
	channelID := uuid.New()

	m.users.EXPECT().FindByID(mock.Anything, channelID).Return(&entity.User{ID: channelID}, nil)
	m.subs.EXPECT().Toggle(mock.Anything, subscriberID, channelID).
		Return(entity.ToggleCreated, &entity.Subscription{}, nil)

	output, err := service.ToggleSubscription(context.Background(), subscriberID, channelID)
	require.NoError(t, err)
	assert.Equal(t, entity.ToggleCreated, output.State)
	assert.True(t, output.Subscribed)
}

func TestEngagementService_ToggleSubscription_Remove(t *testing.T) {
	service, m := newEngagementServiceForTest(t)

	subscriberID := uuid.New()
	channelID := uuid.New()

	m.users.EXPECT().FindByID(mock.Anything, channelID).Return(&entity.User{ID: channelID}, nil)
	m.subs.EXPECT().Toggle(mock.Anything, subscriberID, channelID).
		Return(entity.ToggleRemoved, nil, nil)

	output, err := service.ToggleSubscription(context.Background(), subscriberID, channelID)
	require.NoError(t, err)
	assert.Equal(t, entity.ToggleRemoved, output.State)
	assert.False(t, output.Subscribed)
}

func TestEngagementService_ToggleSubscription_SelfRejected(t *testing.T) {
	service, _ := newEngagementServiceForTest(t)

	id := uuid.New()

	_, err := service.ToggleSubscription(context.Background(), id, id)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestEngagementService_ToggleSubscription_UnknownChannel(t *testing.T) {
	service, m := newEngagementServiceForTest(t)

	subscriberID := uuid.New()
	channelID := uuid.New()

	m.users.EXPECT().FindByID(mock.Anything, channelID).Return(nil, repository.ErrUserNotFound)

	_, err := service.ToggleSubscription(context.Background(), subscriberID, channelID)
	assert.ErrorIs(t, err, domainerrors.ErrChannelNotFound)
}

func TestEngagementService_ToggleLike_CreateChecksTarget(t *testing.T) {
	service, m := newEngagementServiceForTest(t)

	userID := uuid.New()
	videoID := uuid.New()

	m.likes.EXPECT().Exists(mock.Anything, userID, entity.LikeTargetVideo, videoID).Return(false, nil)
	m.videos.EXPECT().FindByID(mock.Anything, videoID).Return(&entity.Video{ID: videoID}, nil)
	m.likes.EXPECT().Toggle(mock.Anything, userID, entity.LikeTargetVideo, videoID).
		Return(entity.ToggleCreated, &entity.Like{}, nil)
	m.likes.EXPECT().CountByTarget(mock.Anything, entity.LikeTargetVideo, videoID).Return(int64(5), nil)

	output, err := service.ToggleLike(context.Background(), userID, entity.LikeTargetVideo, videoID)
	require.NoError(t, err)
	assert.True(t, output.Liked)
	assert.Equal(t, int64(5), output.LikeCount)
}

func TestEngagementService_ToggleLike_CreateMissingTarget(t *testing.T) {
	service, m := newEngagementServiceForTest(t)

	userID := uuid.New()
	videoID := uuid.New()

	m.likes.EXPECT().Exists(mock.Anything, userID, entity.LikeTargetVideo, videoID).Return(false, nil)
	m.videos.EXPECT().FindByID(mock.Anything, videoID).Return(nil, repository.ErrVideoNotFound)

	_, err := service.ToggleLike(context.Background(), userID, entity.LikeTargetVideo, videoID)
	assert.ErrorIs(t, err, domainerrors.ErrVideoNotFound)
}

func TestEngagementService_ToggleLike_RemoveSkipsTargetCheck(t *testing.T) {
	service, m := newEngagementServiceForTest(t)

	userID := uuid.New()
	videoID := uuid.New()

	// An existing edge can always be removed, even if the target row is
	// gone; nothing touches the video repository here.
	m.likes.EXPECT().Exists(mock.Anything, userID, entity.LikeTargetVideo, videoID).Return(true, nil)
	m.likes.EXPECT().Toggle(mock.Anything, userID, entity.LikeTargetVideo, videoID).
		Return(entity.ToggleRemoved, nil, nil)
	m.likes.EXPECT().CountByTarget(mock.Anything, entity.LikeTargetVideo, videoID).Return(int64(0), nil)

	output, err := service.ToggleLike(context.Background(), userID, entity.LikeTargetVideo, videoID)
	require.NoError(t, err)
	assert.False(t, output.Liked)
	assert.Equal(t, int64(0), output.LikeCount)
}

func TestEngagementService_ToggleLike_UnknownKind(t *testing.T) {
	service, _ := newEngagementServiceForTest(t)

	_, err := service.ToggleLike(context.Background(), uuid.New(), entity.LikeTargetKind("story"), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestEngagementService_ListChannelSubscribers_UnknownChannel(t *testing.T) {
	service, m := newEngagementServiceForTest(t)

	channelID := uuid.New()
	m.users.EXPECT().FindByID(mock.Anything, channelID).Return(nil, repository.ErrUserNotFound)

	_, err := service.ListChannelSubscribers(context.Background(), channelID)
	assert.ErrorIs(t, err, domainerrors.ErrChannelNotFound)
}
