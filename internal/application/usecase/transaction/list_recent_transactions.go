package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetease/backend/internal/application/adapter"
)

// ListRecentTransactionsInput represents the input for the recent activity list.
type ListRecentTransactionsInput struct {
	UserID uuid.UUID
	Count  int
}

// ListRecentTransactionsUseCase lists the newest transactions across all months.
type ListRecentTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListRecentTransactionsUseCase creates a new ListRecentTransactionsUseCase instance.
func NewListRecentTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListRecentTransactionsUseCase {
	return &ListRecentTransactionsUseCase{transactionRepo: transactionRepo}
}

// Execute returns up to Count transactions, DefaultRecentCount when Count is not positive.
func (uc *ListRecentTransactionsUseCase) Execute(ctx context.Context, input ListRecentTransactionsInput) (*ListTransactionsOutput, error) {
	count := input.Count
	if count <= 0 {
		count = DefaultRecentCount
	}

	rows, err := uc.transactionRepo.FindRecent(ctx, input.UserID, count)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent transactions: %w", err)
	}
	return toListOutput(rows), nil
}
