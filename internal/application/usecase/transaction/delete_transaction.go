// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetease/backend/internal/application/adapter"
	"github.com/budgetease/backend/internal/domain/entity"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	TransactionID uuid.UUID
	UserID        uuid.UUID
}

// DeleteTransactionOutput represents the output of transaction deletion.
type DeleteTransactionOutput struct {
	Deleted bool
}

// DeleteTransactionUseCase handles transaction deletion logic.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	publisher       adapter.LedgerEventPublisher
	clock           adapter.Clock
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	publisher adapter.LedgerEventPublisher,
	clock adapter.Clock,
) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
		publisher:       publisher,
		clock:           clock,
	}
}

// Execute deletes the transaction. Missing or foreign ids are a no-op.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	deleted, err := uc.transactionRepo.DeleteByIDAndUser(ctx, input.TransactionID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete transaction: %w", err)
	}

	if deleted {
		event := entity.LedgerEvent{
			Type:          entity.LedgerEventTransactionDeleted,
			TransactionID: input.TransactionID,
			UserID:        input.UserID,
			OccurredAt:    uc.clock.Now().UTC(),
		}
		publishEvent(ctx, uc.publisher, event)
	}

	return &DeleteTransactionOutput{Deleted: deleted}, nil
}
