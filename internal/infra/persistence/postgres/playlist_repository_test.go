package postgres

import (
	"context"
	"testing"

	"clipstream/internal/domain/repository"
	"clipstream/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openMembershipDB gives each test an in-memory database with only the
// membership table, enough to exercise the position bookkeeping.
func openMembershipDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.PlaylistVideoModel{}))

	return db
}

func membershipPositions(t *testing.T, db *gorm.DB, playlistID uuid.UUID) map[uuid.UUID]int {
	t.Helper()

	var rows []model.PlaylistVideoModel
	require.NoError(t, db.Where("playlist_id = ?", playlistID).Find(&rows).Error)

	positions := make(map[uuid.UUID]int, len(rows))
	for _, row := range rows {
		positions[row.VideoID] = row.Position
	}

	return positions
}

func TestPlaylistRepository_AddVideo_AppendsInOrder(t *testing.T) {
	db := openMembershipDB(t)
	repo := NewPlaylistRepository(db)

	playlistID := uuid.New()
	first, second, third := uuid.New(), uuid.New(), uuid.New()

	require.NoError(t, repo.AddVideo(context.Background(), playlistID, first))
	require.NoError(t, repo.AddVideo(context.Background(), playlistID, second))
	require.NoError(t, repo.AddVideo(context.Background(), playlistID, third))

	positions := membershipPositions(t, db, playlistID)
	assert.Equal(t, 1, positions[first])
	assert.Equal(t, 2, positions[second])
	assert.Equal(t, 3, positions[third])
}

func TestPlaylistRepository_AddVideo_Duplicate(t *testing.T) {
	db := openMembershipDB(t)
	repo := NewPlaylistRepository(db)

	playlistID := uuid.New()
	videoID := uuid.New()

	require.NoError(t, repo.AddVideo(context.Background(), playlistID, videoID))

	err := repo.AddVideo(context.Background(), playlistID, videoID)
	assert.ErrorIs(t, err, repository.ErrDuplicatePlaylistVideo)
}

func TestPlaylistRepository_AddVideo_OrderSurvivesRemoval(t *testing.T) {
	db := openMembershipDB(t)
	repo := NewPlaylistRepository(db)

	playlistID := uuid.New()
	first, second, third := uuid.New(), uuid.New(), uuid.New()

	require.NoError(t, repo.AddVideo(context.Background(), playlistID, first))
	require.NoError(t, repo.AddVideo(context.Background(), playlistID, second))
	require.NoError(t, repo.RemoveVideo(context.Background(), playlistID, first))

	// The next append goes after the highest surviving position, so the
	// remaining order never shifts.
	require.NoError(t, repo.AddVideo(context.Background(), playlistID, third))

	positions := membershipPositions(t, db, playlistID)
	assert.Equal(t, 2, positions[second])
	assert.Equal(t, 3, positions[third])
}
