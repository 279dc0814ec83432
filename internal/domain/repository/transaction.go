package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
// This ensures all repository operations within a transaction use the same database connection.
type RepositoryFactory interface {
	// UserRepo returns a UserRepository bound to the current transaction.
	UserRepo() UserRepository

	// VideoRepo returns a VideoRepository bound to the current transaction.
	VideoRepo() VideoRepository

	// CommentRepo returns a CommentRepository bound to the current transaction.
	CommentRepo() CommentRepository

	// TweetRepo returns a TweetRepository bound to the current transaction.
	TweetRepo() TweetRepository

	// PlaylistRepo returns a PlaylistRepository bound to the current transaction.
	PlaylistRepo() PlaylistRepository

	// SubscriptionRepo returns a SubscriptionRepository bound to the current transaction.
	SubscriptionRepo() SubscriptionRepository

	// LikeRepo returns a LikeRepository bound to the current transaction.
	LikeRepo() LikeRepository

	// WatchHistoryRepo returns a WatchHistoryRepository bound to the current transaction.
	WatchHistoryRepo() WatchHistoryRepository
}
