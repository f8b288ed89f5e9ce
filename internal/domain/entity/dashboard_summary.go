package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetease/backend/internal/domain/valueobject"
)

// DashboardSummary is the month-over-month view of a user's ledger.
// It is computed per request and never persisted.
type DashboardSummary struct {
	ReferenceMonth valueobject.Month

	CurrentIncome   decimal.Decimal
	CurrentExpense  decimal.Decimal
	PreviousIncome  decimal.Decimal
	PreviousExpense decimal.Decimal

	// Nil means the previous value was zero and no percentage applies.
	IncomeChangePercent  *decimal.Decimal
	ExpenseChangePercent *decimal.Decimal
	NetChangePercent     *decimal.Decimal

	CategoryBreakdown  []CategoryBreakdownItem
	RecentTransactions []RecentTransactionItem
}

// CurrentNet returns current income minus current expense.
func (s *DashboardSummary) CurrentNet() decimal.Decimal {
	return s.CurrentIncome.Sub(s.CurrentExpense)
}

// PreviousNet returns previous income minus previous expense.
func (s *DashboardSummary) PreviousNet() decimal.Decimal {
	return s.PreviousIncome.Sub(s.PreviousExpense)
}

// CategoryBreakdownItem is one category's share of the month's expenses.
// Uncategorized spending uses uuid.Nil as its CategoryID.
type CategoryBreakdownItem struct {
	CategoryID        uuid.UUID
	CategoryName      string
	ColorHex          *string
	TotalAmount       decimal.Decimal
	PercentageOfTotal decimal.Decimal
}

// IsUncategorized reports whether the item aggregates transactions without a category.
func (i CategoryBreakdownItem) IsUncategorized() bool {
	return i.CategoryID == uuid.Nil
}

// RecentTransactionItem is a lightweight projection of a ledger entry.
type RecentTransactionItem struct {
	ID           uuid.UUID
	Date         time.Time
	Amount       decimal.Decimal
	Type         TransactionType
	CategoryName *string
	Description  *string
}
