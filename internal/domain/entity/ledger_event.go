package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerEventType identifies what happened to a transaction.
type LedgerEventType string

const (
	LedgerEventTransactionCreated LedgerEventType = "transaction.created"
	LedgerEventTransactionUpdated LedgerEventType = "transaction.updated"
	LedgerEventTransactionDeleted LedgerEventType = "transaction.deleted"
)

// LedgerEvent is emitted after a transaction is written.
type LedgerEvent struct {
	Type          LedgerEventType
	TransactionID uuid.UUID
	UserID        uuid.UUID
	Amount        decimal.Decimal
	Date          time.Time
	OccurredAt    time.Time
}

// NewLedgerEvent builds an event describing tx.
func NewLedgerEvent(eventType LedgerEventType, tx *Transaction, occurredAt time.Time) LedgerEvent {
	return LedgerEvent{
		Type:          eventType,
		TransactionID: tx.ID,
		UserID:        tx.UserID,
		Amount:        tx.Amount,
		Date:          tx.Date,
		OccurredAt:    occurredAt,
	}
}
