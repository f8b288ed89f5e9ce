package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetease/backend/internal/application/adapter"
	"github.com/budgetease/backend/internal/domain/valueobject"
)

// ListMonthTransactionsInput represents the input for listing one month of the ledger.
type ListMonthTransactionsInput struct {
	UserID uuid.UUID
	Month  valueobject.Month
}

// ListMonthTransactionsUseCase lists transactions dated within a calendar month.
type ListMonthTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListMonthTransactionsUseCase creates a new ListMonthTransactionsUseCase instance.
func NewListMonthTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListMonthTransactionsUseCase {
	return &ListMonthTransactionsUseCase{transactionRepo: transactionRepo}
}

// Execute lists the month using the same half-open bounds as the dashboard.
func (uc *ListMonthTransactionsUseCase) Execute(ctx context.Context, input ListMonthTransactionsInput) (*ListTransactionsOutput, error) {
	rows, err := uc.transactionRepo.FindByDateRange(ctx, input.UserID, input.Month.Start(), input.Month.End())
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for %s: %w", input.Month, err)
	}
	return toListOutput(rows), nil
}
