package impl

import (
	"context"
	"strings"
	"testing"

	"clipstream/internal/domain/entity"
	domainerrors "clipstream/internal/domain/errors"
	"clipstream/internal/domain/repository"
	domainservice "clipstream/internal/domain/service"
	mockRepo "clipstream/internal/mocks/repository"
	mockSvc "clipstream/internal/mocks/service"
	"clipstream/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthServiceForTest(t *testing.T) (usecase.AuthUsecase, *mockRepo.MockUserRepository, *mockSvc.MockPasswordHasher, *mockSvc.MockTokenService, *mockSvc.MockMediaStore) {
	t.Helper()

	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	mediaStore := mockSvc.NewMockMediaStore(t)

	service := NewAuthService(AuthServiceParams{
		TxManager:    testTxManager(&mockRepo.MockRepositoryFactory{Users: userRepo}),
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenSvc,
		MediaStore:   mediaStore,
		Logger:       testLogger(),
	})

	return service, userRepo, hasher, tokenSvc, mediaStore
}

func TestAuthService_Login_Success(t *testing.T) {
	service, userRepo, hasher, tokenSvc, _ := newAuthServiceForTest(t)

	user := &entity.User{
		ID:           uuid.New(),
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "stored-hash",
	}

	userRepo.EXPECT().FindByLogin(mock.Anything, "alice").Return(user, nil)
	hasher.EXPECT().Check("secret", "stored-hash").Return(true)
	tokenSvc.EXPECT().GenerateTokens(user.ID).Return("access-token", "refresh-token", nil)
	tokenSvc.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	userRepo.EXPECT().UpdateRefreshTokenHash(mock.Anything, user.ID, "refresh-hash").Return(nil)

	output, err := service.Login(context.Background(), usecase.LoginInput{Identifier: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, user.ID, output.User.ID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	service, userRepo, hasher, _, _ := newAuthServiceForTest(t)

	user := &entity.User{ID: uuid.New(), Username: "alice", PasswordHash: "stored-hash"}

	userRepo.EXPECT().FindByLogin(mock.Anything, "alice").Return(user, nil)
	hasher.EXPECT().Check("wrong", "stored-hash").Return(false)

	_, err := service.Login(context.Background(), usecase.LoginInput{Identifier: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownAccount(t *testing.T) {
	service, userRepo, _, _, _ := newAuthServiceForTest(t)

	userRepo.EXPECT().FindByLogin(mock.Anything, "ghost").Return(nil, repository.ErrUserNotFound)

	_, err := service.Login(context.Background(), usecase.LoginInput{Identifier: "ghost", Password: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_RefreshTokens_RotatesSlot(t *testing.T) {
	service, userRepo, _, tokenSvc, _ := newAuthServiceForTest(t)

	userID := uuid.New()
	user := &entity.User{ID: userID, Username: "alice", RefreshTokenHash: "old-hash"}

	tokenSvc.EXPECT().ValidateRefreshToken("old-token").
		Return(refreshClaims(userID), nil)
	userRepo.EXPECT().FindByID(mock.Anything, userID).Return(user, nil)
	tokenSvc.EXPECT().HashToken("old-token").Return("old-hash")
	tokenSvc.EXPECT().GenerateTokens(userID).Return("new-access", "new-refresh", nil)
	tokenSvc.EXPECT().HashToken("new-refresh").Return("new-hash")
	userRepo.EXPECT().UpdateRefreshTokenHash(mock.Anything, userID, "new-hash").Return(nil)

	output, err := service.RefreshTokens(context.Background(), "old-token")
	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)
}

func TestAuthService_RefreshTokens_ReusedTokenRejected(t *testing.T) {
	service, userRepo, _, tokenSvc, _ := newAuthServiceForTest(t)

	userID := uuid.New()
	// The slot already holds the hash of a newer token: the presented token
	// was rotated away and must be rejected even though it still verifies.
	user := &entity.User{ID: userID, RefreshTokenHash: "newer-hash"}

	tokenSvc.EXPECT().ValidateRefreshToken("stale-token").
		Return(refreshClaims(userID), nil)
	userRepo.EXPECT().FindByID(mock.Anything, userID).Return(user, nil)
	tokenSvc.EXPECT().HashToken("stale-token").Return("stale-hash")

	_, err := service.RefreshTokens(context.Background(), "stale-token")
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_RefreshTokens_EmptySlotRejected(t *testing.T) {
	service, userRepo, _, tokenSvc, _ := newAuthServiceForTest(t)

	userID := uuid.New()
	user := &entity.User{ID: userID, RefreshTokenHash: ""}

	tokenSvc.EXPECT().ValidateRefreshToken("any-token").
		Return(refreshClaims(userID), nil)
	userRepo.EXPECT().FindByID(mock.Anything, userID).Return(user, nil)

	_, err := service.RefreshTokens(context.Background(), "any-token")
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_RefreshTokens_MalformedToken(t *testing.T) {
	service, _, _, tokenSvc, _ := newAuthServiceForTest(t)

	tokenSvc.EXPECT().ValidateRefreshToken("garbage").
		Return(nil, assert.AnError)

	_, err := service.RefreshTokens(context.Background(), "garbage")
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_Logout_ClearsSlot(t *testing.T) {
	service, userRepo, _, _, _ := newAuthServiceForTest(t)

	userID := uuid.New()
	userRepo.EXPECT().UpdateRefreshTokenHash(mock.Anything, userID, "").Return(nil)

	require.NoError(t, service.Logout(context.Background(), userID))
}

func TestAuthService_Register_RequiresAvatar(t *testing.T) {
	service, _, _, _, _ := newAuthServiceForTest(t)

	_, err := service.Register(context.Background(), usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestAuthService_Register_TakenUsernameSkipsUpload(t *testing.T) {
	service, userRepo, _, _, _ := newAuthServiceForTest(t)

	userRepo.EXPECT().FindByUsername(mock.Anything, "alice").
		Return(&entity.User{ID: uuid.New(), Username: "alice"}, nil)

	_, err := service.Register(context.Background(), usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
		Avatar:   &usecase.FileUpload{Filename: "a.png", ContentType: "image/png", Reader: strings.NewReader("img")},
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Register_ConflictDiscardsUpload(t *testing.T) {
	service, userRepo, hasher, _, mediaStore := newAuthServiceForTest(t)

	// Pre-flight sees the identity as free; the transactional re-check
	// loses the race to a concurrent registration.
	userRepo.EXPECT().FindByUsername(mock.Anything, "alice").
		Return(nil, repository.ErrUserNotFound).Once()
	userRepo.EXPECT().FindByLogin(mock.Anything, "alice@example.com").
		Return(nil, repository.ErrUserNotFound)
	hasher.EXPECT().Hash("secret123").Return("hashed", nil)
	mediaStore.EXPECT().Upload(mock.Anything, domainservice.MediaKindAvatar, "a.png", "image/png", mock.Anything).
		Return(&domainservice.UploadResult{URL: "https://cdn/avatar.png"}, nil)
	userRepo.EXPECT().FindByUsername(mock.Anything, "alice").
		Return(&entity.User{ID: uuid.New(), Username: "alice"}, nil).Once()
	mediaStore.EXPECT().Delete(mock.Anything, "https://cdn/avatar.png").Return(nil)

	_, err := service.Register(context.Background(), usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
		Avatar:   &usecase.FileUpload{Filename: "a.png", ContentType: "image/png", Reader: strings.NewReader("img")},
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_CurrentUser_OmitsCredentialFields(t *testing.T) {
	service, userRepo, _, _, _ := newAuthServiceForTest(t)

	userID := uuid.New()
	user := &entity.User{
		ID:               userID,
		Username:         "alice",
		PasswordHash:     "secret-hash",
		RefreshTokenHash: "token-hash",
	}

	userRepo.EXPECT().FindByID(mock.Anything, userID).Return(user, nil)

	public, err := service.CurrentUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "alice", public.Username)
	// PublicUser has no credential fields at all; the projection is the
	// only user shape handed to the delivery layer.
}
