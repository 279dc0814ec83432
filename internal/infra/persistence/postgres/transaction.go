// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"fmt"

	"clipstream/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object is also a *gorm.DB
}

// UserRepo returns a user repository bound to the transaction.
func (f *gormRepositoryFactory) UserRepo() repository.UserRepository {
	return NewUserRepository(f.tx)
}

// VideoRepo returns a video repository bound to the transaction.
func (f *gormRepositoryFactory) VideoRepo() repository.VideoRepository {
	return NewVideoRepository(f.tx)
}

// CommentRepo returns a comment repository bound to the transaction.
func (f *gormRepositoryFactory) CommentRepo() repository.CommentRepository {
	return NewCommentRepository(f.tx)
}

// TweetRepo returns a tweet repository bound to the transaction.
func (f *gormRepositoryFactory) TweetRepo() repository.TweetRepository {
	return NewTweetRepository(f.tx)
}

// PlaylistRepo returns a playlist repository bound to the transaction.
func (f *gormRepositoryFactory) PlaylistRepo() repository.PlaylistRepository {
	return NewPlaylistRepository(f.tx)
}

// SubscriptionRepo returns a subscription repository bound to the transaction.
func (f *gormRepositoryFactory) SubscriptionRepo() repository.SubscriptionRepository {
	return NewSubscriptionRepository(f.tx)
}

// LikeRepo returns a like repository bound to the transaction.
func (f *gormRepositoryFactory) LikeRepo() repository.LikeRepository {
	return NewLikeRepository(f.tx)
}

// WatchHistoryRepo returns a watch history repository bound to the transaction.
func (f *gormRepositoryFactory) WatchHistoryRepo() repository.WatchHistoryRepository {
	return NewWatchHistoryRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// If a panic occurs within the callback the transaction must still be
	// rolled back before the panic propagates.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx}

	err := fn(factory)
	if err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// Report the rollback failure but keep the original business error.
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
