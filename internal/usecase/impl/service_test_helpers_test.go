package impl

import (
	"io"
	"log/slog"

	"clipstream/internal/domain/repository"
	"clipstream/internal/domain/service"
	mockRepo "clipstream/internal/mocks/repository"

	"github.com/google/uuid"
)

// testLogger discards everything; test assertions never depend on log output.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testTxManager builds a pass-through transaction manager over the given
// mocks, so code under test sees the same repositories inside and outside a
// transaction.
func testTxManager(factory *mockRepo.MockRepositoryFactory) repository.TransactionManager {
	return &mockRepo.MockTransactionManager{Factory: factory}
}

// refreshClaims builds verified refresh-token claims for the given subject.
func refreshClaims(userID uuid.UUID) *service.Claims {
	return &service.Claims{UserID: userID, Type: "refresh"}
}
