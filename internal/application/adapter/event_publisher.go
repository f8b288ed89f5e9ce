package adapter

import (
	"context"

	"github.com/budgetease/backend/internal/domain/entity"
)

// LedgerEventPublisher delivers ledger change notifications to downstream consumers.
type LedgerEventPublisher interface {
	Publish(ctx context.Context, event entity.LedgerEvent) error
}
