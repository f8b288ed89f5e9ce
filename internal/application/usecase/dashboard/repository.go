// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetease/backend/internal/domain/entity"
)

// DashboardRepository defines the read side of the ledger used by the dashboard.
type DashboardRepository interface {
	// GetPeriodTransactions returns the user's transactions dated in [startDate, endDate),
	// with category name and color resolved through a join.
	GetPeriodTransactions(
		ctx context.Context,
		userID uuid.UUID,
		startDate, endDate time.Time,
	) ([]PeriodTransaction, error)
}

// PeriodTransaction represents a transaction within a period.
// Category fields are nil when the transaction is uncategorized.
type PeriodTransaction struct {
	ID            uuid.UUID
	Amount        decimal.Decimal
	Date          time.Time
	Type          entity.TransactionType
	CategoryID    *uuid.UUID
	CategoryName  *string
	CategoryColor *string
	Description   *string
	CreatedAt     time.Time
}
