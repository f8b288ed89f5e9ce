package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetease/backend/internal/application/adapter"
	"github.com/budgetease/backend/internal/domain/entity"
	domainerror "github.com/budgetease/backend/internal/domain/error"
)

// SearchTransactionsInput represents the input for a filtered ledger search.
type SearchTransactionsInput struct {
	UserID uuid.UUID
	Filter entity.TransactionFilter
}

// SearchTransactionsUseCase searches the ledger by date range, category and type.
type SearchTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewSearchTransactionsUseCase creates a new SearchTransactionsUseCase instance.
func NewSearchTransactionsUseCase(transactionRepo adapter.TransactionRepository) *SearchTransactionsUseCase {
	return &SearchTransactionsUseCase{transactionRepo: transactionRepo}
}

// Execute runs the search. Both ends of the date range are inclusive.
func (uc *SearchTransactionsUseCase) Execute(ctx context.Context, input SearchTransactionsInput) (*ListTransactionsOutput, error) {
	filter := input.Filter

	if filter.Type != nil && !filter.Type.IsValid() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if filter.From != nil {
		from := calendarDate(*filter.From)
		filter.From = &from
	}
	if filter.To != nil {
		to := calendarDate(*filter.To)
		filter.To = &to
	}
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidDateRange,
			"to must not be before from",
			domainerror.ErrInvalidDateRange,
		)
	}

	rows, err := uc.transactionRepo.Search(ctx, input.UserID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search transactions: %w", err)
	}
	return toListOutput(rows), nil
}
