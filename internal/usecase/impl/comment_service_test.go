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

type commentMocks struct {
	comments *mockRepo.MockCommentRepository
	videos   *mockRepo.MockVideoRepository
	users    *mockRepo.MockUserRepository
	likes    *mockRepo.MockLikeRepository
}

func newCommentServiceForTest(t *testing.T) (usecase.CommentUsecase, commentMocks) {
	t.Helper()

	m := commentMocks{
		comments: mockRepo.NewMockCommentRepository(t),
		videos:   mockRepo.NewMockVideoRepository(t),
		users:    mockRepo.NewMockUserRepository(t),
		likes:    mockRepo.NewMockLikeRepository(t),
	}

	service := NewCommentService(CommentServiceParams{
		TxManager: testTxManager(&mockRepo.MockRepositoryFactory{
			Comments: m.comments,
			Likes:    m.likes,
		}),
		CommentRepo: m.comments,
		VideoRepo:   m.videos,
		UserRepo:    m.users,
		Logger:      testLogger(),
	})

	return service, m
}

func TestCommentService_Add_Success(t *testing.T) {
	service, m := newCommentServiceForTest(t)

	authorID := uuid.New()
	videoID := uuid.New()
	author := &entity.User{ID: authorID, Username: "alice", FullName: "Alice"}

	m.videos.EXPECT().FindByID(mock.Anything, videoID).
		Return(&entity.Video{ID: videoID, Published: true}, nil)
	m.comments.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Comment")).Return(nil)
	m.users.EXPECT().FindByID(mock.Anything, authorID).Return(author, nil)

	view, err := service.Add(context.Background(), authorID, videoID, "  nice video  ")
	require.NoError(t, err)
	assert.Equal(t, "nice video", view.Content)
	assert.Equal(t, "alice", view.Owner.Username)
}

func TestCommentService_Add_EmptyContent(t *testing.T) {
	service, _ := newCommentServiceForTest(t)

	_, err := service.Add(context.Background(), uuid.New(), uuid.New(), "   ")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestCommentService_Add_DraftHiddenFromOthers(t *testing.T) {
	service, m := newCommentServiceForTest(t)

	videoID := uuid.New()

	m.videos.EXPECT().FindByID(mock.Anything, videoID).
		Return(&entity.Video{ID: videoID, OwnerID: uuid.New(), Published: false}, nil)

	_, err := service.Add(context.Background(), uuid.New(), videoID, "first")
	assert.ErrorIs(t, err, domainerrors.ErrVideoNotFound)
}

func TestCommentService_ListByVideo_UnknownVideo(t *testing.T) {
	service, m := newCommentServiceForTest(t)

	videoID := uuid.New()
	m.videos.EXPECT().FindByID(mock.Anything, videoID).Return(nil, repository.ErrVideoNotFound)

	_, err := service.ListByVideo(context.Background(), videoID, pagination.Params{})
	assert.ErrorIs(t, err, domainerrors.ErrVideoNotFound)
}

func TestCommentService_ListByVideo_DefaultWindow(t *testing.T) {
	service, m := newCommentServiceForTest(t)

	videoID := uuid.New()

	m.videos.EXPECT().FindByID(mock.Anything, videoID).
		Return(&entity.Video{ID: videoID, Published: true}, nil)
	m.comments.EXPECT().ListByVideo(mock.Anything, videoID, 0, 10).
		Return([]*entity.CommentView{}, int64(0), nil)

	page, err := service.ListByVideo(context.Background(), videoID, pagination.Params{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.Limit)
	assert.Equal(t, int64(0), page.TotalPages)
}

func TestCommentService_Update_NotAuthor(t *testing.T) {
	service, m := newCommentServiceForTest(t)

	commentID := uuid.New()
	comment := &entity.Comment{ID: commentID, OwnerID: uuid.New()}

	m.comments.EXPECT().FindByID(mock.Anything, commentID).Return(comment, nil)

	_, err := service.Update(context.Background(), uuid.New(), commentID, "edited")
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestCommentService_Delete_PrunesLikes(t *testing.T) {
	service, m := newCommentServiceForTest(t)

	authorID := uuid.New()
	commentID := uuid.New()
	comment := &entity.Comment{ID: commentID, OwnerID: authorID}

	m.comments.EXPECT().FindByID(mock.Anything, commentID).Return(comment, nil)
	m.likes.EXPECT().DeleteByTarget(mock.Anything, entity.LikeTargetComment, commentID).Return(nil)
	m.comments.EXPECT().Delete(mock.Anything, commentID).Return(nil)

	require.NoError(t, service.Delete(context.Background(), authorID, commentID))
}
