// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/budgetease/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for ledger persistence operations.
// Every read is scoped to the owning user and ordered newest first by (date, created_at).
type TransactionRepository interface {
	// Create persists a new transaction.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByIDAndUser returns the user's transaction or ErrTransactionNotFound.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.TransactionWithCategory, error)

	// FindRecent returns at most limit transactions.
	FindRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.TransactionWithCategory, error)

	// FindByDateRange returns transactions dated in [start, end).
	FindByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.TransactionWithCategory, error)

	// Search returns transactions matching filter.
	Search(ctx context.Context, userID uuid.UUID, filter entity.TransactionFilter) ([]*entity.TransactionWithCategory, error)

	// Update saves changes to an existing transaction.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// DeleteByIDAndUser removes the user's transaction and reports whether a row was deleted.
	DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) (bool, error)

	// CountByCategory returns how many transactions reference the category.
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
}
