// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeExpense || t == TransactionTypeIncome
}

// Transaction represents a single ledger entry.
// Amount is always positive; Type carries the direction.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Date        time.Time
	Type        TransactionType
	CategoryID  *uuid.UUID
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTransaction creates a new Transaction entity stamped with now.
func NewTransaction(
	userID uuid.UUID,
	amount decimal.Decimal,
	date time.Time,
	transactionType TransactionType,
	categoryID *uuid.UUID,
	description *string,
	now time.Time,
) *Transaction {
	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      amount,
		Date:        date,
		Type:        transactionType,
		CategoryID:  categoryID,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// TransactionWithCategory represents a transaction with its resolved category, if any.
type TransactionWithCategory struct {
	Transaction *Transaction
	Category    *Category
}

// TransactionFilter narrows a ledger search. Nil fields are not applied.
// From and To are both inclusive calendar dates.
type TransactionFilter struct {
	From       *time.Time
	To         *time.Time
	CategoryID *uuid.UUID
	Type       *TransactionType
}
