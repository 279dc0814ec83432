// Package service provides testify mocks for the domain service interfaces.
package service

import (
	"context"
	"io"
	"time"

	"clipstream/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type constructorTestingT interface {
	mock.TestingT
	Cleanup(func())
}

// --- TokenService ---

type MockTokenService struct {
	mock.Mock
}

func NewMockTokenService(t constructorTestingT) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) EXPECT() *MockTokenServiceExpecter {
	return &MockTokenServiceExpecter{m: &m.Mock}
}

type MockTokenServiceExpecter struct{ m *mock.Mock }

func (e *MockTokenServiceExpecter) GenerateTokens(userID any) *mock.Call {
	return e.m.On("GenerateTokens", userID)
}

func (e *MockTokenServiceExpecter) ValidateAccessToken(tokenString any) *mock.Call {
	return e.m.On("ValidateAccessToken", tokenString)
}

func (e *MockTokenServiceExpecter) ValidateRefreshToken(tokenString any) *mock.Call {
	return e.m.On("ValidateRefreshToken", tokenString)
}

func (e *MockTokenServiceExpecter) HashToken(token any) *mock.Call {
	return e.m.On("HashToken", token)
}

func (e *MockTokenServiceExpecter) GetRefreshTokenDuration() *mock.Call {
	return e.m.On("GetRefreshTokenDuration")
}

func (m *MockTokenService) GenerateTokens(userID uuid.UUID) (string, string, error) {
	args := m.Called(userID)

	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockTokenService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.Claims), args.Error(1)
}

func (m *MockTokenService) ValidateRefreshToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.Claims), args.Error(1)
}

func (m *MockTokenService) HashToken(token string) string {
	return m.Called(token).String(0)
}

func (m *MockTokenService) GetRefreshTokenDuration() time.Duration {
	return m.Called().Get(0).(time.Duration)
}

// --- PasswordHasher ---

type MockPasswordHasher struct {
	mock.Mock
}

func NewMockPasswordHasher(t constructorTestingT) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordHasher) EXPECT() *MockPasswordHasherExpecter {
	return &MockPasswordHasherExpecter{m: &m.Mock}
}

type MockPasswordHasherExpecter struct{ m *mock.Mock }

func (e *MockPasswordHasherExpecter) Hash(password any) *mock.Call {
	return e.m.On("Hash", password)
}

func (e *MockPasswordHasherExpecter) Check(password, hash any) *mock.Call {
	return e.m.On("Check", password, hash)
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

// --- MediaStore ---

type MockMediaStore struct {
	mock.Mock
}

func NewMockMediaStore(t constructorTestingT) *MockMediaStore {
	m := &MockMediaStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockMediaStore) EXPECT() *MockMediaStoreExpecter {
	return &MockMediaStoreExpecter{m: &m.Mock}
}

type MockMediaStoreExpecter struct{ m *mock.Mock }

func (e *MockMediaStoreExpecter) Upload(ctx, kind, filename, contentType, r any) *mock.Call {
	return e.m.On("Upload", ctx, kind, filename, contentType, r)
}

func (e *MockMediaStoreExpecter) Delete(ctx, url any) *mock.Call {
	return e.m.On("Delete", ctx, url)
}

func (m *MockMediaStore) Upload(ctx context.Context, kind service.MediaKind, filename, contentType string, r io.Reader) (*service.UploadResult, error) {
	args := m.Called(ctx, kind, filename, contentType, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.UploadResult), args.Error(1)
}

func (m *MockMediaStore) Delete(ctx context.Context, url string) error {
	return m.Called(ctx, url).Error(0)
}
