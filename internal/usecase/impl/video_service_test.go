package impl

import (
	"context"
	"testing"

	"clipstream/internal/domain/entity"
	domainerrors "clipstream/internal/domain/errors"
	"clipstream/internal/domain/pagination"
	"clipstream/internal/domain/repository"
	mockRepo "clipstream/internal/mocks/repository"
	mockSvc "clipstream/internal/mocks/service"
	"clipstream/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newVideoServiceForTest(t *testing.T) (usecase.VideoUsecase, *mockRepo.MockVideoRepository, *mockRepo.MockWatchHistoryRepository, *mockSvc.MockMediaStore) {
	t.Helper()

	videoRepo := mockRepo.NewMockVideoRepository(t)
	watchRepo := mockRepo.NewMockWatchHistoryRepository(t)
	mediaStore := mockSvc.NewMockMediaStore(t)

	service := NewVideoService(VideoServiceParams{
		TxManager:  testTxManager(&mockRepo.MockRepositoryFactory{Videos: videoRepo}),
		VideoRepo:  videoRepo,
		WatchRepo:  watchRepo,
		MediaStore: mediaStore,
		Logger:     testLogger(),
	})

	return service, videoRepo, watchRepo, mediaStore
}

func TestParseVideoSort(t *testing.T) {
	tests := []struct {
		name      string
		sortBy    string
		sortOrder string
		wantField entity.VideoSortField
		wantDesc  bool
		wantErr   bool
	}{
		{name: "defaults to newest first", wantField: entity.SortByCreatedAt, wantDesc: true},
		{name: "views ascending", sortBy: "views", sortOrder: "asc", wantField: entity.SortByViews, wantDesc: false},
		{name: "title descending", sortBy: "title", sortOrder: "desc", wantField: entity.SortByTitle, wantDesc: true},
		{name: "duration default order", sortBy: "duration", wantField: entity.SortByDuration, wantDesc: true},
		{name: "disallowed field", sortBy: "ownerId", wantErr: true},
		{name: "sql injection attempt", sortBy: "created_at; DROP TABLE videos", wantErr: true},
		{name: "bad order", sortBy: "views", sortOrder: "sideways", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, desc, err := parseVideoSort(tt.sortBy, tt.sortOrder)
			if tt.wantErr {
				assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantField, field)
			assert.Equal(t, tt.wantDesc, desc)
		})
	}
}

func TestVideoService_List_WindowsAndCounts(t *testing.T) {
	service, videoRepo, _, _ := newVideoServiceForTest(t)

	items := []*entity.VideoView{{Video: entity.Video{ID: uuid.New()}}}

	videoRepo.EXPECT().
		List(mock.Anything, repository.VideoListQuery{
			PublishedOnly: true,
			SortBy:        entity.SortByCreatedAt,
			SortDesc:      true,
			Offset:        20,
			Limit:         10,
		}).
		Return(items, int64(21), nil)

	page, err := service.List(context.Background(), nil, usecase.ListVideosInput{
		Params: pagination.Params{Page: 3, Limit: 10},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Page)
	assert.Equal(t, int64(21), page.TotalItems)
	assert.Equal(t, int64(3), page.TotalPages)
	assert.Len(t, page.Items, 1)
}

func TestVideoService_List_FiltersByOwner(t *testing.T) {
	service, videoRepo, _, _ := newVideoServiceForTest(t)

	ownerID := uuid.New()

	videoRepo.EXPECT().
		List(mock.Anything, repository.VideoListQuery{
			OwnerID:       &ownerID,
			PublishedOnly: true,
			SortBy:        entity.SortByCreatedAt,
			SortDesc:      true,
			Limit:         10,
		}).
		Return([]*entity.VideoView{}, int64(0), nil)

	_, err := service.List(context.Background(), nil, usecase.ListVideosInput{
		OwnerID: &ownerID,
	})
	require.NoError(t, err)
}

func TestVideoService_List_RejectsUnknownSort(t *testing.T) {
	service, _, _, _ := newVideoServiceForTest(t)

	_, err := service.List(context.Background(), nil, usecase.ListVideosInput{SortBy: "password"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestVideoService_Get_AnonymousDoesNotCount(t *testing.T) {
	service, videoRepo, _, _ := newVideoServiceForTest(t)

	videoID := uuid.New()
	view := &entity.VideoView{Video: entity.Video{ID: videoID, Published: true, Views: 7}}

	// No IncrementViews, no watch-history Record: anonymous reads leave
	// the counters untouched.
	videoRepo.EXPECT().FindViewByID(mock.Anything, videoID, (*uuid.UUID)(nil)).Return(view, nil)

	got, err := service.Get(context.Background(), nil, videoID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.Views)
}

func TestVideoService_Get_AuthenticatedCountsAndRecords(t *testing.T) {
	service, videoRepo, watchRepo, _ := newVideoServiceForTest(t)

	videoID := uuid.New()
	viewerID := uuid.New()
	view := &entity.VideoView{Video: entity.Video{ID: videoID, Published: true, Views: 7}}

	videoRepo.EXPECT().FindViewByID(mock.Anything, videoID, &viewerID).Return(view, nil)
	videoRepo.EXPECT().IncrementViews(mock.Anything, videoID).Return(nil)
	watchRepo.EXPECT().Record(mock.Anything, viewerID, videoID).Return(nil)

	got, err := service.Get(context.Background(), &viewerID, videoID)
	require.NoError(t, err)
	assert.Equal(t, int64(8), got.Views)
}

func TestVideoService_Get_UnpublishedHiddenFromOthers(t *testing.T) {
	service, videoRepo, _, _ := newVideoServiceForTest(t)

	videoID := uuid.New()
	ownerID := uuid.New()
	strangerID := uuid.New()
	draft := &entity.VideoView{Video: entity.Video{ID: videoID, OwnerID: ownerID, Published: false}}

	videoRepo.EXPECT().FindViewByID(mock.Anything, videoID, &strangerID).Return(draft, nil)

	_, err := service.Get(context.Background(), &strangerID, videoID)
	// A draft resolves as not-found for everyone but the owner, so its
	// existence is not leaked.
	assert.ErrorIs(t, err, domainerrors.ErrVideoNotFound)
}

func TestVideoService_Get_UnpublishedVisibleToOwner(t *testing.T) {
	service, videoRepo, watchRepo, _ := newVideoServiceForTest(t)

	videoID := uuid.New()
	ownerID := uuid.New()
	draft := &entity.VideoView{Video: entity.Video{ID: videoID, OwnerID: ownerID, Published: false}}

	videoRepo.EXPECT().FindViewByID(mock.Anything, videoID, &ownerID).Return(draft, nil)
	videoRepo.EXPECT().IncrementViews(mock.Anything, videoID).Return(nil)
	watchRepo.EXPECT().Record(mock.Anything, ownerID, videoID).Return(nil)

	got, err := service.Get(context.Background(), &ownerID, videoID)
	require.NoError(t, err)
	assert.Equal(t, videoID, got.ID)
}

func TestVideoService_Update_NotOwner(t *testing.T) {
	service, videoRepo, _, _ := newVideoServiceForTest(t)

	videoID := uuid.New()
	video := &entity.Video{ID: videoID, OwnerID: uuid.New()}

	videoRepo.EXPECT().FindByID(mock.Anything, videoID).Return(video, nil)

	_, err := service.Update(context.Background(), uuid.New(), videoID, usecase.UpdateVideoInput{Title: "new"})
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestVideoService_TogglePublish_Flips(t *testing.T) {
	service, videoRepo, _, _ := newVideoServiceForTest(t)

	ownerID := uuid.New()
	videoID := uuid.New()
	video := &entity.Video{ID: videoID, OwnerID: ownerID, Published: true}

	videoRepo.EXPECT().FindByID(mock.Anything, videoID).Return(video, nil)
	videoRepo.EXPECT().Update(mock.Anything, video).Return(nil)

	got, err := service.TogglePublish(context.Background(), ownerID, videoID)
	require.NoError(t, err)
	assert.False(t, got.Published)
}

func TestVideoService_Delete_PrunesDependents(t *testing.T) {
	videoRepo := mockRepo.NewMockVideoRepository(t)
	likeRepo := mockRepo.NewMockLikeRepository(t)
	commentRepo := mockRepo.NewMockCommentRepository(t)
	playlistRepo := mockRepo.NewMockPlaylistRepository(t)
	watchRepo := mockRepo.NewMockWatchHistoryRepository(t)
	mediaStore := mockSvc.NewMockMediaStore(t)

	service := NewVideoService(VideoServiceParams{
		TxManager: testTxManager(&mockRepo.MockRepositoryFactory{
			Videos:       videoRepo,
			Likes:        likeRepo,
			Comments:     commentRepo,
			Playlists:    playlistRepo,
			WatchHistory: watchRepo,
		}),
		VideoRepo:  videoRepo,
		WatchRepo:  watchRepo,
		MediaStore: mediaStore,
		Logger:     testLogger(),
	})

	ownerID := uuid.New()
	videoID := uuid.New()
	video := &entity.Video{
		ID:           videoID,
		OwnerID:      ownerID,
		VideoURL:     "https://cdn.example.com/videos/a.mp4",
		ThumbnailURL: "https://cdn.example.com/thumbnails/a.jpg",
	}

	videoRepo.EXPECT().FindByID(mock.Anything, videoID).Return(video, nil)
	likeRepo.EXPECT().DeleteByTarget(mock.Anything, entity.LikeTargetVideo, videoID).Return(nil)
	commentRepo.EXPECT().DeleteByVideo(mock.Anything, videoID).Return(nil)
	playlistRepo.EXPECT().RemoveVideoEverywhere(mock.Anything, videoID).Return(nil)
	watchRepo.EXPECT().DeleteByVideo(mock.Anything, videoID).Return(nil)
	videoRepo.EXPECT().Delete(mock.Anything, videoID).Return(nil)
	mediaStore.EXPECT().Delete(mock.Anything, video.VideoURL).Return(nil)
	mediaStore.EXPECT().Delete(mock.Anything, video.ThumbnailURL).Return(nil)

	require.NoError(t, service.Delete(context.Background(), ownerID, videoID))
}
