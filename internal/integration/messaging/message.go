// Package messaging publishes ledger events to downstream consumers over AMQP.
package messaging

import (
	"encoding/json"
	"time"

	"github.com/budgetease/backend/internal/domain/entity"
)

const messageDateLayout = "2006-01-02"

// LedgerMessage is the wire form of a ledger event.
// Amount is a fixed two-place decimal string.
type LedgerMessage struct {
	Type          string    `json:"type"`
	TransactionID string    `json:"transaction_id"`
	UserID        string    `json:"user_id"`
	Amount        string    `json:"amount"`
	Date          string    `json:"date"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// NewLedgerMessage converts a domain event into its wire form.
func NewLedgerMessage(event entity.LedgerEvent) *LedgerMessage {
	return &LedgerMessage{
		Type:          string(event.Type),
		TransactionID: event.TransactionID.String(),
		UserID:        event.UserID.String(),
		Amount:        event.Amount.StringFixed(2),
		Date:          event.Date.UTC().Format(messageDateLayout),
		OccurredAt:    event.OccurredAt.UTC(),
	}
}

// ToJSON converts the message to JSON bytes.
func (m *LedgerMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// LedgerMessageFromJSON decodes a message published by AMQPPublisher.
func LedgerMessageFromJSON(data []byte) (*LedgerMessage, error) {
	var msg LedgerMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
