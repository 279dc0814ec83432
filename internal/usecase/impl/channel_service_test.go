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

type channelMocks struct {
	users  *mockRepo.MockUserRepository
	videos *mockRepo.MockVideoRepository
	subs   *mockRepo.MockSubscriptionRepository
	likes  *mockRepo.MockLikeRepository
	watch  *mockRepo.MockWatchHistoryRepository
}

func newChannelServiceForTest(t *testing.T) (usecase.ChannelUsecase, channelMocks) {
	t.Helper()

	m := channelMocks{
		users:  mockRepo.NewMockUserRepository(t),
		videos: mockRepo.NewMockVideoRepository(t),
		subs:   mockRepo.NewMockSubscriptionRepository(t),
		likes:  mockRepo.NewMockLikeRepository(t),
		watch:  mockRepo.NewMockWatchHistoryRepository(t),
	}

	service := NewChannelService(ChannelServiceParams{
		UserRepo:         m.users,
		VideoRepo:        m.videos,
		SubscriptionRepo: m.subs,
		LikeRepo:         m.likes,
		WatchRepo:        m.watch,
		Logger:           testLogger(),
	})

	return service, m
}

func TestChannelService_Profile_AnonymousViewer(t *testing.T) {
	service, m := newChannelServiceForTest(t)

	channel := &entity.User{ID: uuid.New(), Username: "alice"}

	m.users.EXPECT().FindByUsername(mock.Anything, "alice").Return(channel, nil)
	m.subs.EXPECT().CountByChannel(mock.Anything, channel.ID).Return(int64(0), nil)
	m.subs.EXPECT().CountBySubscriber(mock.Anything, channel.ID).Return(int64(0), nil)
	m.videos.EXPECT().List(mock.Anything, mock.AnythingOfType("repository.VideoListQuery")).
		Return([]*entity.VideoView{}, int64(0), nil)

	profile, err := service.Profile(context.Background(), nil, "alice")
	require.NoError(t, err)
	// A channel with no activity reports zero counts and an explicit
	// false membership flag, never nulls.
	assert.Equal(t, int64(0), profile.SubscriberCount)
	assert.Equal(t, int64(0), profile.SubscribedToCount)
	assert.False(t, profile.IsSubscribed)
	assert.NotNil(t, profile.Videos)
	assert.Empty(t, profile.Videos)
}

func TestChannelService_Profile_SubscribedViewer(t *testing.T) {
	service, m := newChannelServiceForTest(t)

	channel := &entity.User{ID: uuid.New(), Username: "alice"}
	viewerID := uuid.New()

	m.users.EXPECT().FindByUsername(mock.Anything, "alice").Return(channel, nil)
	m.subs.EXPECT().CountByChannel(mock.Anything, channel.ID).Return(int64(42), nil)
	m.subs.EXPECT().CountBySubscriber(mock.Anything, channel.ID).Return(int64(3), nil)
	m.subs.EXPECT().Exists(mock.Anything, viewerID, channel.ID).Return(true, nil)
	m.videos.EXPECT().List(mock.Anything, mock.AnythingOfType("repository.VideoListQuery")).
		Return([]*entity.VideoView{}, int64(0), nil)

	profile, err := service.Profile(context.Background(), &viewerID, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(42), profile.SubscriberCount)
	assert.Equal(t, int64(3), profile.SubscribedToCount)
	assert.True(t, profile.IsSubscribed)
}

func TestChannelService_Profile_OwnChannelSkipsMembershipCheck(t *testing.T) {
	service, m := newChannelServiceForTest(t)

	channel := &entity.User{ID: uuid.New(), Username: "alice"}

	// Viewing one's own channel never queries the edge; the flag stays false.
	m.users.EXPECT().FindByUsername(mock.Anything, "alice").Return(channel, nil)
	m.subs.EXPECT().CountByChannel(mock.Anything, channel.ID).Return(int64(42), nil)
	m.subs.EXPECT().CountBySubscriber(mock.Anything, channel.ID).Return(int64(3), nil)
	m.videos.EXPECT().List(mock.Anything, mock.AnythingOfType("repository.VideoListQuery")).
		Return([]*entity.VideoView{}, int64(0), nil)

	profile, err := service.Profile(context.Background(), &channel.ID, "alice")
	require.NoError(t, err)
	assert.False(t, profile.IsSubscribed)
}

func TestChannelService_Profile_UnknownChannel(t *testing.T) {
	service, m := newChannelServiceForTest(t)

	m.users.EXPECT().FindByUsername(mock.Anything, "ghost").Return(nil, repository.ErrUserNotFound)

	_, err := service.Profile(context.Background(), nil, "ghost")
	assert.ErrorIs(t, err, domainerrors.ErrChannelNotFound)
}

func TestChannelService_Stats_EmptyChannelReportsZeros(t *testing.T) {
	service, m := newChannelServiceForTest(t)

	ownerID := uuid.New()

	m.videos.EXPECT().CountByOwner(mock.Anything, ownerID).Return(int64(0), nil)
	m.videos.EXPECT().SumViewsByOwner(mock.Anything, ownerID).Return(int64(0), nil)
	m.subs.EXPECT().CountByChannel(mock.Anything, ownerID).Return(int64(0), nil)
	m.likes.EXPECT().CountReceivedByOwner(mock.Anything, ownerID).Return(int64(0), nil)

	stats, err := service.Stats(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Equal(t, &entity.ChannelStats{}, stats)
}

func TestChannelService_Stats_Aggregates(t *testing.T) {
	service, m := newChannelServiceForTest(t)

	ownerID := uuid.New()

	m.videos.EXPECT().CountByOwner(mock.Anything, ownerID).Return(int64(12), nil)
	m.videos.EXPECT().SumViewsByOwner(mock.Anything, ownerID).Return(int64(3400), nil)
	m.subs.EXPECT().CountByChannel(mock.Anything, ownerID).Return(int64(56), nil)
	m.likes.EXPECT().CountReceivedByOwner(mock.Anything, ownerID).Return(int64(78), nil)

	stats, err := service.Stats(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.TotalVideos)
	assert.Equal(t, int64(3400), stats.TotalViews)
	assert.Equal(t, int64(56), stats.TotalSubscribers)
	assert.Equal(t, int64(78), stats.TotalLikes)
}

func TestChannelService_WatchHistory_Windows(t *testing.T) {
	service, m := newChannelServiceForTest(t)

	userID := uuid.New()
	entries := []*entity.WatchEntryView{{}}

	m.watch.EXPECT().ListByUser(mock.Anything, userID, 10, 10).Return(entries, int64(11), nil)

	page, err := service.WatchHistory(context.Background(), userID, pagination.Params{Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, int64(11), page.TotalItems)
	assert.Equal(t, int64(2), page.TotalPages)
}
