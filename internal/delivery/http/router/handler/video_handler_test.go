package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"clipstream/internal/domain/entity"
	"clipstream/internal/domain/pagination"
	"clipstream/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingVideoUsecase captures List calls; every other method panics
// through the embedded nil interface.
type recordingVideoUsecase struct {
	usecase.VideoUsecase

	called bool
	viewer *uuid.UUID
	input  usecase.ListVideosInput
}

func (f *recordingVideoUsecase) List(_ context.Context, viewerID *uuid.UUID, input usecase.ListVideosInput) (*pagination.Page[*entity.VideoView], error) {
	f.called = true
	f.viewer = viewerID
	f.input = input

	return &pagination.Page[*entity.VideoView]{Items: []*entity.VideoView{}, Page: 1, Limit: 10}, nil
}

func listRequest(t *testing.T, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestVideoHandler_List_OwnerFilter(t *testing.T) {
	uc := &recordingVideoUsecase{}
	h := NewVideoHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	ownerID := uuid.New()
	c, rec := listRequest(t, "/api/v1/videos?userId="+ownerID.String())

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, uc.called)
	require.NotNil(t, uc.input.OwnerID)
	assert.Equal(t, ownerID, *uc.input.OwnerID)
}

func TestVideoHandler_List_NoOwnerFilter(t *testing.T) {
	uc := &recordingVideoUsecase{}
	h := NewVideoHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := listRequest(t, "/api/v1/videos?query=cats")

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, uc.called)
	assert.Nil(t, uc.input.OwnerID)
	assert.Equal(t, "cats", uc.input.Search)
}

func TestVideoHandler_List_MalformedOwnerRejected(t *testing.T) {
	uc := &recordingVideoUsecase{}
	h := NewVideoHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := listRequest(t, "/api/v1/videos?userId=not-a-uuid")

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, uc.called)
}
