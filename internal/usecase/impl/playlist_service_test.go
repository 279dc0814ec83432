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

func newPlaylistServiceForTest(t *testing.T) (usecase.PlaylistUsecase, *mockRepo.MockPlaylistRepository, *mockRepo.MockVideoRepository) {
	t.Helper()

	playlistRepo := mockRepo.NewMockPlaylistRepository(t)
	videoRepo := mockRepo.NewMockVideoRepository(t)

	service := NewPlaylistService(PlaylistServiceParams{
		TxManager: testTxManager(&mockRepo.MockRepositoryFactory{
			Playlists: playlistRepo,
			Videos:    videoRepo,
		}),
		PlaylistRepo: playlistRepo,
		VideoRepo:    videoRepo,
		Logger:       testLogger(),
	})

	return service, playlistRepo, videoRepo
}

func TestPlaylistService_Create_RequiresName(t *testing.T) {
	service, _, _ := newPlaylistServiceForTest(t)

	_, err := service.Create(context.Background(), uuid.New(), usecase.CreatePlaylistInput{Name: "  "})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestPlaylistService_AddVideo_Duplicate(t *testing.T) {
	service, playlistRepo, videoRepo := newPlaylistServiceForTest(t)

	ownerID := uuid.New()
	playlistID := uuid.New()
	videoID := uuid.New()

	playlistRepo.EXPECT().FindByID(mock.Anything, playlistID).
		Return(&entity.Playlist{ID: playlistID, OwnerID: ownerID}, nil)
	videoRepo.EXPECT().FindByID(mock.Anything, videoID).
		Return(&entity.Video{ID: videoID}, nil)
	playlistRepo.EXPECT().AddVideo(mock.Anything, playlistID, videoID).
		Return(repository.ErrDuplicatePlaylistVideo)

	_, err := service.AddVideo(context.Background(), ownerID, playlistID, videoID)
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestPlaylistService_AddVideo_Appends(t *testing.T) {
	service, playlistRepo, videoRepo := newPlaylistServiceForTest(t)

	ownerID := uuid.New()
	playlistID := uuid.New()
	videoID := uuid.New()
	view := &entity.PlaylistView{Playlist: entity.Playlist{ID: playlistID, OwnerID: ownerID}}

	playlistRepo.EXPECT().FindByID(mock.Anything, playlistID).
		Return(&entity.Playlist{ID: playlistID, OwnerID: ownerID}, nil)
	videoRepo.EXPECT().FindByID(mock.Anything, videoID).
		Return(&entity.Video{ID: videoID}, nil)
	playlistRepo.EXPECT().AddVideo(mock.Anything, playlistID, videoID).Return(nil)
	playlistRepo.EXPECT().FindViewByID(mock.Anything, playlistID).Return(view, nil)

	got, err := service.AddVideo(context.Background(), ownerID, playlistID, videoID)
	require.NoError(t, err)
	assert.Equal(t, playlistID, got.ID)
}

func TestPlaylistService_RemoveVideo_NotMember(t *testing.T) {
	service, playlistRepo, _ := newPlaylistServiceForTest(t)

	ownerID := uuid.New()
	playlistID := uuid.New()
	videoID := uuid.New()

	playlistRepo.EXPECT().FindByID(mock.Anything, playlistID).
		Return(&entity.Playlist{ID: playlistID, OwnerID: ownerID}, nil)
	playlistRepo.EXPECT().RemoveVideo(mock.Anything, playlistID, videoID).
		Return(repository.ErrVideoNotInPlaylist)

	_, err := service.RemoveVideo(context.Background(), ownerID, playlistID, videoID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestPlaylistService_Mutations_OwnerOnly(t *testing.T) {
	service, playlistRepo, _ := newPlaylistServiceForTest(t)

	playlistID := uuid.New()
	strangerID := uuid.New()

	playlistRepo.EXPECT().FindByID(mock.Anything, playlistID).
		Return(&entity.Playlist{ID: playlistID, OwnerID: uuid.New()}, nil)

	err := service.Delete(context.Background(), strangerID, playlistID)
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}
