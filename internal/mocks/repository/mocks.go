// Package repository provides testify mocks for the persistence interfaces.
package repository

import (
	"context"

	"clipstream/internal/domain/entity"
	"clipstream/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type constructorTestingT interface {
	mock.TestingT
	Cleanup(func())
}

// --- UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func NewMockUserRepository(t constructorTestingT) *MockUserRepository {
	m := &MockUserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserRepository) EXPECT() *MockUserRepositoryExpecter {
	return &MockUserRepositoryExpecter{m: &m.Mock}
}

type MockUserRepositoryExpecter struct{ m *mock.Mock }

func (e *MockUserRepositoryExpecter) FindByID(ctx, id any) *mock.Call {
	return e.m.On("FindByID", ctx, id)
}

func (e *MockUserRepositoryExpecter) FindByUsername(ctx, username any) *mock.Call {
	return e.m.On("FindByUsername", ctx, username)
}

func (e *MockUserRepositoryExpecter) FindByLogin(ctx, usernameOrEmail any) *mock.Call {
	return e.m.On("FindByLogin", ctx, usernameOrEmail)
}

func (e *MockUserRepositoryExpecter) Create(ctx, user any) *mock.Call {
	return e.m.On("Create", ctx, user)
}

func (e *MockUserRepositoryExpecter) Update(ctx, user any) *mock.Call {
	return e.m.On("Update", ctx, user)
}

func (e *MockUserRepositoryExpecter) UpdateRefreshTokenHash(ctx, userID, tokenHash any) *mock.Call {
	return e.m.On("UpdateRefreshTokenHash", ctx, userID, tokenHash)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByLogin(ctx context.Context, usernameOrEmail string) (*entity.User, error) {
	args := m.Called(ctx, usernameOrEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdateRefreshTokenHash(ctx context.Context, userID uuid.UUID, tokenHash string) error {
	return m.Called(ctx, userID, tokenHash).Error(0)
}

// --- VideoRepository ---

type MockVideoRepository struct {
	mock.Mock
}

func NewMockVideoRepository(t constructorTestingT) *MockVideoRepository {
	m := &MockVideoRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockVideoRepository) EXPECT() *MockVideoRepositoryExpecter {
	return &MockVideoRepositoryExpecter{m: &m.Mock}
}

type MockVideoRepositoryExpecter struct{ m *mock.Mock }

func (e *MockVideoRepositoryExpecter) Create(ctx, video any) *mock.Call {
	return e.m.On("Create", ctx, video)
}

func (e *MockVideoRepositoryExpecter) FindByID(ctx, id any) *mock.Call {
	return e.m.On("FindByID", ctx, id)
}

func (e *MockVideoRepositoryExpecter) FindViewByID(ctx, id, viewerID any) *mock.Call {
	return e.m.On("FindViewByID", ctx, id, viewerID)
}

func (e *MockVideoRepositoryExpecter) List(ctx, query any) *mock.Call {
	return e.m.On("List", ctx, query)
}

func (e *MockVideoRepositoryExpecter) Update(ctx, video any) *mock.Call {
	return e.m.On("Update", ctx, video)
}

func (e *MockVideoRepositoryExpecter) Delete(ctx, id any) *mock.Call {
	return e.m.On("Delete", ctx, id)
}

func (e *MockVideoRepositoryExpecter) IncrementViews(ctx, id any) *mock.Call {
	return e.m.On("IncrementViews", ctx, id)
}

func (e *MockVideoRepositoryExpecter) CountByOwner(ctx, ownerID any) *mock.Call {
	return e.m.On("CountByOwner", ctx, ownerID)
}

func (e *MockVideoRepositoryExpecter) SumViewsByOwner(ctx, ownerID any) *mock.Call {
	return e.m.On("SumViewsByOwner", ctx, ownerID)
}

func (m *MockVideoRepository) Create(ctx context.Context, video *entity.Video) error {
	return m.Called(ctx, video).Error(0)
}

func (m *MockVideoRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Video, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoRepository) FindViewByID(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID) (*entity.VideoView, error) {
	args := m.Called(ctx, id, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.VideoView), args.Error(1)
}

func (m *MockVideoRepository) List(ctx context.Context, query repository.VideoListQuery) ([]*entity.VideoView, int64, error) {
	args := m.Called(ctx, query)
	var items []*entity.VideoView
	if args.Get(0) != nil {
		items = args.Get(0).([]*entity.VideoView)
	}

	return items, args.Get(1).(int64), args.Error(2)
}

func (m *MockVideoRepository) Update(ctx context.Context, video *entity.Video) error {
	return m.Called(ctx, video).Error(0)
}

func (m *MockVideoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockVideoRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockVideoRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, ownerID)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVideoRepository) SumViewsByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, ownerID)

	return args.Get(0).(int64), args.Error(1)
}

// --- CommentRepository ---

type MockCommentRepository struct {
	mock.Mock
}

func NewMockCommentRepository(t constructorTestingT) *MockCommentRepository {
	m := &MockCommentRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCommentRepository) EXPECT() *MockCommentRepositoryExpecter {
	return &MockCommentRepositoryExpecter{m: &m.Mock}
}

type MockCommentRepositoryExpecter struct{ m *mock.Mock }

func (e *MockCommentRepositoryExpecter) Create(ctx, comment any) *mock.Call {
	return e.m.On("Create", ctx, comment)
}

func (e *MockCommentRepositoryExpecter) FindByID(ctx, id any) *mock.Call {
	return e.m.On("FindByID", ctx, id)
}

func (e *MockCommentRepositoryExpecter) ListByVideo(ctx, videoID, offset, limit any) *mock.Call {
	return e.m.On("ListByVideo", ctx, videoID, offset, limit)
}

func (e *MockCommentRepositoryExpecter) Update(ctx, comment any) *mock.Call {
	return e.m.On("Update", ctx, comment)
}

func (e *MockCommentRepositoryExpecter) Delete(ctx, id any) *mock.Call {
	return e.m.On("Delete", ctx, id)
}

func (e *MockCommentRepositoryExpecter) DeleteByVideo(ctx, videoID any) *mock.Call {
	return e.m.On("DeleteByVideo", ctx, videoID)
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	return m.Called(ctx, comment).Error(0)
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListByVideo(ctx context.Context, videoID uuid.UUID, offset, limit int) ([]*entity.CommentView, int64, error) {
	args := m.Called(ctx, videoID, offset, limit)
	var items []*entity.CommentView
	if args.Get(0) != nil {
		items = args.Get(0).([]*entity.CommentView)
	}

	return items, args.Get(1).(int64), args.Error(2)
}

func (m *MockCommentRepository) Update(ctx context.Context, comment *entity.Comment) error {
	return m.Called(ctx, comment).Error(0)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCommentRepository) DeleteByVideo(ctx context.Context, videoID uuid.UUID) error {
	return m.Called(ctx, videoID).Error(0)
}

// --- TweetRepository ---

type MockTweetRepository struct {
	mock.Mock
}

func NewMockTweetRepository(t constructorTestingT) *MockTweetRepository {
	m := &MockTweetRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTweetRepository) EXPECT() *MockTweetRepositoryExpecter {
	return &MockTweetRepositoryExpecter{m: &m.Mock}
}

type MockTweetRepositoryExpecter struct{ m *mock.Mock }

func (e *MockTweetRepositoryExpecter) Create(ctx, tweet any) *mock.Call {
	return e.m.On("Create", ctx, tweet)
}

func (e *MockTweetRepositoryExpecter) FindByID(ctx, id any) *mock.Call {
	return e.m.On("FindByID", ctx, id)
}

func (e *MockTweetRepositoryExpecter) ListByOwner(ctx, ownerID, offset, limit any) *mock.Call {
	return e.m.On("ListByOwner", ctx, ownerID, offset, limit)
}

func (e *MockTweetRepositoryExpecter) Update(ctx, tweet any) *mock.Call {
	return e.m.On("Update", ctx, tweet)
}

func (e *MockTweetRepositoryExpecter) Delete(ctx, id any) *mock.Call {
	return e.m.On("Delete", ctx, id)
}

func (m *MockTweetRepository) Create(ctx context.Context, tweet *entity.Tweet) error {
	return m.Called(ctx, tweet).Error(0)
}

func (m *MockTweetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tweet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Tweet), args.Error(1)
}

func (m *MockTweetRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]*entity.TweetView, int64, error) {
	args := m.Called(ctx, ownerID, offset, limit)
	var items []*entity.TweetView
	if args.Get(0) != nil {
		items = args.Get(0).([]*entity.TweetView)
	}

	return items, args.Get(1).(int64), args.Error(2)
}

func (m *MockTweetRepository) Update(ctx context.Context, tweet *entity.Tweet) error {
	return m.Called(ctx, tweet).Error(0)
}

func (m *MockTweetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// --- PlaylistRepository ---

type MockPlaylistRepository struct {
	mock.Mock
}

func NewMockPlaylistRepository(t constructorTestingT) *MockPlaylistRepository {
	m := &MockPlaylistRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPlaylistRepository) EXPECT() *MockPlaylistRepositoryExpecter {
	return &MockPlaylistRepositoryExpecter{m: &m.Mock}
}

type MockPlaylistRepositoryExpecter struct{ m *mock.Mock }

func (e *MockPlaylistRepositoryExpecter) Create(ctx, playlist any) *mock.Call {
	return e.m.On("Create", ctx, playlist)
}

func (e *MockPlaylistRepositoryExpecter) FindByID(ctx, id any) *mock.Call {
	return e.m.On("FindByID", ctx, id)
}

func (e *MockPlaylistRepositoryExpecter) FindViewByID(ctx, id any) *mock.Call {
	return e.m.On("FindViewByID", ctx, id)
}

func (e *MockPlaylistRepositoryExpecter) ListByOwner(ctx, ownerID any) *mock.Call {
	return e.m.On("ListByOwner", ctx, ownerID)
}

func (e *MockPlaylistRepositoryExpecter) Update(ctx, playlist any) *mock.Call {
	return e.m.On("Update", ctx, playlist)
}

func (e *MockPlaylistRepositoryExpecter) Delete(ctx, id any) *mock.Call {
	return e.m.On("Delete", ctx, id)
}

func (e *MockPlaylistRepositoryExpecter) AddVideo(ctx, playlistID, videoID any) *mock.Call {
	return e.m.On("AddVideo", ctx, playlistID, videoID)
}

func (e *MockPlaylistRepositoryExpecter) RemoveVideo(ctx, playlistID, videoID any) *mock.Call {
	return e.m.On("RemoveVideo", ctx, playlistID, videoID)
}

func (e *MockPlaylistRepositoryExpecter) RemoveVideoEverywhere(ctx, videoID any) *mock.Call {
	return e.m.On("RemoveVideoEverywhere", ctx, videoID)
}

func (m *MockPlaylistRepository) Create(ctx context.Context, playlist *entity.Playlist) error {
	return m.Called(ctx, playlist).Error(0)
}

func (m *MockPlaylistRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Playlist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) FindViewByID(ctx context.Context, id uuid.UUID) (*entity.PlaylistView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.PlaylistView), args.Error(1)
}

func (m *MockPlaylistRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Playlist, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) Update(ctx context.Context, playlist *entity.Playlist) error {
	return m.Called(ctx, playlist).Error(0)
}

func (m *MockPlaylistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockPlaylistRepository) AddVideo(ctx context.Context, playlistID, videoID uuid.UUID) error {
	return m.Called(ctx, playlistID, videoID).Error(0)
}

func (m *MockPlaylistRepository) RemoveVideo(ctx context.Context, playlistID, videoID uuid.UUID) error {
	return m.Called(ctx, playlistID, videoID).Error(0)
}

func (m *MockPlaylistRepository) RemoveVideoEverywhere(ctx context.Context, videoID uuid.UUID) error {
	return m.Called(ctx, videoID).Error(0)
}

// --- SubscriptionRepository ---

type MockSubscriptionRepository struct {
	mock.Mock
}

func NewMockSubscriptionRepository(t constructorTestingT) *MockSubscriptionRepository {
	m := &MockSubscriptionRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSubscriptionRepository) EXPECT() *MockSubscriptionRepositoryExpecter {
	return &MockSubscriptionRepositoryExpecter{m: &m.Mock}
}

type MockSubscriptionRepositoryExpecter struct{ m *mock.Mock }

func (e *MockSubscriptionRepositoryExpecter) Toggle(ctx, subscriberID, channelID any) *mock.Call {
	return e.m.On("Toggle", ctx, subscriberID, channelID)
}

func (e *MockSubscriptionRepositoryExpecter) Exists(ctx, subscriberID, channelID any) *mock.Call {
	return e.m.On("Exists", ctx, subscriberID, channelID)
}

func (e *MockSubscriptionRepositoryExpecter) CountByChannel(ctx, channelID any) *mock.Call {
	return e.m.On("CountByChannel", ctx, channelID)
}

func (e *MockSubscriptionRepositoryExpecter) CountBySubscriber(ctx, subscriberID any) *mock.Call {
	return e.m.On("CountBySubscriber", ctx, subscriberID)
}

func (e *MockSubscriptionRepositoryExpecter) ListSubscribers(ctx, channelID any) *mock.Call {
	return e.m.On("ListSubscribers", ctx, channelID)
}

func (e *MockSubscriptionRepositoryExpecter) ListSubscribedChannels(ctx, subscriberID any) *mock.Call {
	return e.m.On("ListSubscribedChannels", ctx, subscriberID)
}

func (m *MockSubscriptionRepository) Toggle(ctx context.Context, subscriberID, channelID uuid.UUID) (entity.ToggleState, *entity.Subscription, error) {
	args := m.Called(ctx, subscriberID, channelID)
	var edge *entity.Subscription
	if args.Get(1) != nil {
		edge = args.Get(1).(*entity.Subscription)
	}

	return args.Get(0).(entity.ToggleState), edge, args.Error(2)
}

func (m *MockSubscriptionRepository) Exists(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error) {
	args := m.Called(ctx, subscriberID, channelID)

	return args.Bool(0), args.Error(1)
}

func (m *MockSubscriptionRepository) CountByChannel(ctx context.Context, channelID uuid.UUID) (int64, error) {
	args := m.Called(ctx, channelID)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSubscriptionRepository) CountBySubscriber(ctx context.Context, subscriberID uuid.UUID) (int64, error) {
	args := m.Called(ctx, subscriberID)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSubscriptionRepository) ListSubscribers(ctx context.Context, channelID uuid.UUID) ([]*entity.ChannelSummary, error) {
	args := m.Called(ctx, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.ChannelSummary), args.Error(1)
}

func (m *MockSubscriptionRepository) ListSubscribedChannels(ctx context.Context, subscriberID uuid.UUID) ([]*entity.ChannelSummary, error) {
	args := m.Called(ctx, subscriberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.ChannelSummary), args.Error(1)
}

// --- LikeRepository ---

type MockLikeRepository struct {
	mock.Mock
}

func NewMockLikeRepository(t constructorTestingT) *MockLikeRepository {
	m := &MockLikeRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockLikeRepository) EXPECT() *MockLikeRepositoryExpecter {
	return &MockLikeRepositoryExpecter{m: &m.Mock}
}

type MockLikeRepositoryExpecter struct{ m *mock.Mock }

func (e *MockLikeRepositoryExpecter) Toggle(ctx, userID, kind, targetID any) *mock.Call {
	return e.m.On("Toggle", ctx, userID, kind, targetID)
}

func (e *MockLikeRepositoryExpecter) Exists(ctx, userID, kind, targetID any) *mock.Call {
	return e.m.On("Exists", ctx, userID, kind, targetID)
}

func (e *MockLikeRepositoryExpecter) CountByTarget(ctx, kind, targetID any) *mock.Call {
	return e.m.On("CountByTarget", ctx, kind, targetID)
}

func (e *MockLikeRepositoryExpecter) ListLikedVideos(ctx, userID any) *mock.Call {
	return e.m.On("ListLikedVideos", ctx, userID)
}

func (e *MockLikeRepositoryExpecter) CountReceivedByOwner(ctx, ownerID any) *mock.Call {
	return e.m.On("CountReceivedByOwner", ctx, ownerID)
}

func (e *MockLikeRepositoryExpecter) DeleteByTarget(ctx, kind, targetID any) *mock.Call {
	return e.m.On("DeleteByTarget", ctx, kind, targetID)
}

func (m *MockLikeRepository) Toggle(ctx context.Context, userID uuid.UUID, kind entity.LikeTargetKind, targetID uuid.UUID) (entity.ToggleState, *entity.Like, error) {
	args := m.Called(ctx, userID, kind, targetID)
	var edge *entity.Like
	if args.Get(1) != nil {
		edge = args.Get(1).(*entity.Like)
	}

	return args.Get(0).(entity.ToggleState), edge, args.Error(2)
}

func (m *MockLikeRepository) Exists(ctx context.Context, userID uuid.UUID, kind entity.LikeTargetKind, targetID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, kind, targetID)

	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) CountByTarget(ctx context.Context, kind entity.LikeTargetKind, targetID uuid.UUID) (int64, error) {
	args := m.Called(ctx, kind, targetID)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLikeRepository) ListLikedVideos(ctx context.Context, userID uuid.UUID) ([]*entity.VideoView, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.VideoView), args.Error(1)
}

func (m *MockLikeRepository) CountReceivedByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, ownerID)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLikeRepository) DeleteByTarget(ctx context.Context, kind entity.LikeTargetKind, targetID uuid.UUID) error {
	return m.Called(ctx, kind, targetID).Error(0)
}

// --- WatchHistoryRepository ---

type MockWatchHistoryRepository struct {
	mock.Mock
}

func NewMockWatchHistoryRepository(t constructorTestingT) *MockWatchHistoryRepository {
	m := &MockWatchHistoryRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockWatchHistoryRepository) EXPECT() *MockWatchHistoryRepositoryExpecter {
	return &MockWatchHistoryRepositoryExpecter{m: &m.Mock}
}

type MockWatchHistoryRepositoryExpecter struct{ m *mock.Mock }

func (e *MockWatchHistoryRepositoryExpecter) Record(ctx, userID, videoID any) *mock.Call {
	return e.m.On("Record", ctx, userID, videoID)
}

func (e *MockWatchHistoryRepositoryExpecter) ListByUser(ctx, userID, offset, limit any) *mock.Call {
	return e.m.On("ListByUser", ctx, userID, offset, limit)
}

func (e *MockWatchHistoryRepositoryExpecter) DeleteByVideo(ctx, videoID any) *mock.Call {
	return e.m.On("DeleteByVideo", ctx, videoID)
}

func (m *MockWatchHistoryRepository) Record(ctx context.Context, userID, videoID uuid.UUID) error {
	return m.Called(ctx, userID, videoID).Error(0)
}

func (m *MockWatchHistoryRepository) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*entity.WatchEntryView, int64, error) {
	args := m.Called(ctx, userID, offset, limit)
	var items []*entity.WatchEntryView
	if args.Get(0) != nil {
		items = args.Get(0).([]*entity.WatchEntryView)
	}

	return items, args.Get(1).(int64), args.Error(2)
}

func (m *MockWatchHistoryRepository) DeleteByVideo(ctx context.Context, videoID uuid.UUID) error {
	return m.Called(ctx, videoID).Error(0)
}

// --- TransactionManager ---

// MockTransactionManager executes the transactional function against a
// factory of mocks, without any real transaction semantics.
type MockTransactionManager struct {
	Factory repository.RepositoryFactory
}

func (m *MockTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.Factory)
}

// MockRepositoryFactory hands out the configured mocks as the
// transaction-bound repositories.
type MockRepositoryFactory struct {
	Users         repository.UserRepository
	Videos        repository.VideoRepository
	Comments      repository.CommentRepository
	Tweets        repository.TweetRepository
	Playlists     repository.PlaylistRepository
	Subscriptions repository.SubscriptionRepository
	Likes         repository.LikeRepository
	WatchHistory  repository.WatchHistoryRepository
}

func (f *MockRepositoryFactory) UserRepo() repository.UserRepository { return f.Users }

func (f *MockRepositoryFactory) VideoRepo() repository.VideoRepository { return f.Videos }

func (f *MockRepositoryFactory) CommentRepo() repository.CommentRepository { return f.Comments }

func (f *MockRepositoryFactory) TweetRepo() repository.TweetRepository { return f.Tweets }

func (f *MockRepositoryFactory) PlaylistRepo() repository.PlaylistRepository { return f.Playlists }

func (f *MockRepositoryFactory) SubscriptionRepo() repository.SubscriptionRepository {
	return f.Subscriptions
}

func (f *MockRepositoryFactory) LikeRepo() repository.LikeRepository { return f.Likes }

func (f *MockRepositoryFactory) WatchHistoryRepo() repository.WatchHistoryRepository {
	return f.WatchHistory
}
