// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetease/backend/internal/application/adapter"
	"github.com/budgetease/backend/internal/domain/entity"
	domainerror "github.com/budgetease/backend/internal/domain/error"
	"github.com/budgetease/backend/internal/domain/valueobject"
)

const (
	// MaxDescriptionLength is the maximum stored length, in characters, of a description.
	MaxDescriptionLength = 512
	// DefaultRecentCount is used when a non-positive count is requested.
	DefaultRecentCount = 5
)

// MaxTransactionAmount is the largest accepted amount.
var MaxTransactionAmount = decimal.NewFromInt(1_000_000_000)

// TransactionOutput represents a transaction returned by the ledger use cases.
type TransactionOutput struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Date        time.Time
	Type        entity.TransactionType
	CategoryID  *uuid.UUID
	Category    *CategoryOutput
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CategoryOutput represents category information in transaction output.
type CategoryOutput struct {
	ID    uuid.UUID
	Name  string
	Color *string
}

// ListTransactionsOutput is shared by the list and search use cases.
type ListTransactionsOutput struct {
	Transactions []*TransactionOutput
}

func toTransactionOutput(tx *entity.Transaction, category *entity.Category) *TransactionOutput {
	out := &TransactionOutput{
		ID:          tx.ID,
		UserID:      tx.UserID,
		Amount:      tx.Amount,
		Date:        tx.Date,
		Type:        tx.Type,
		CategoryID:  tx.CategoryID,
		Description: tx.Description,
		CreatedAt:   tx.CreatedAt,
		UpdatedAt:   tx.UpdatedAt,
	}
	if category != nil {
		out.Category = &CategoryOutput{
			ID:    category.ID,
			Name:  category.Name,
			Color: category.Color,
		}
	}
	return out
}

func toListOutput(rows []*entity.TransactionWithCategory) *ListTransactionsOutput {
	txs := make([]*TransactionOutput, len(rows))
	for i, row := range rows {
		txs[i] = toTransactionOutput(row.Transaction, row.Category)
	}
	return &ListTransactionsOutput{Transactions: txs}
}

// ledgerFields are the user-editable fields shared by create and update.
type ledgerFields struct {
	Amount      decimal.Decimal
	Date        time.Time
	Type        entity.TransactionType
	CategoryID  *uuid.UUID
	Description *string
}

// validate checks amount, date and type. now is the caller's clock reading.
// The amount is checked after rounding to cents, as that is the value stored.
func (f ledgerFields) validate(now time.Time) error {
	amount := valueobject.RoundMoney(f.Amount)
	if !amount.IsPositive() || amount.GreaterThan(MaxTransactionAmount) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			fmt.Sprintf("amount must be greater than 0 and at most %s", MaxTransactionAmount),
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if f.Date.IsZero() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"date is required",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	if calendarDate(f.Date).After(calendarDate(now)) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"date cannot be in the future",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	if !f.Type.IsValid() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	return nil
}

// calendarDate strips the time of day in UTC.
func calendarDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// normalizeDescription drops blank descriptions and truncates long ones.
func normalizeDescription(description *string) *string {
	if description == nil || strings.TrimSpace(*description) == "" {
		return nil
	}
	value := *description
	if utf8.RuneCountInString(value) > MaxDescriptionLength {
		value = string([]rune(value)[:MaxDescriptionLength])
	}
	return &value
}

// resolveCategory loads the category and checks the user may use it.
func resolveCategory(
	ctx context.Context,
	categoryRepo adapter.CategoryRepository,
	userID uuid.UUID,
	categoryID *uuid.UUID,
) (*entity.Category, error) {
	if categoryID == nil {
		return nil, nil
	}

	category, err := categoryRepo.FindByID(ctx, *categoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, categoryNotAvailable()
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	if !category.IsAvailableTo(userID) {
		return nil, categoryNotAvailable()
	}
	return category, nil
}

func categoryNotAvailable() error {
	return domainerror.NewTransactionError(
		domainerror.ErrCodeTxnCategoryNotAvailable,
		"the selected category is not available for this user",
		domainerror.ErrCategoryNotAvailable,
	)
}

func transactionNotFound() error {
	return domainerror.NewTransactionError(
		domainerror.ErrCodeTransactionNotFound,
		"transaction not found",
		domainerror.ErrTransactionNotFound,
	)
}

// applyFields copies validated fields onto tx with the ledger's rounding rules.
func applyFields(tx *entity.Transaction, fields ledgerFields, category *entity.Category) {
	tx.Amount = valueobject.RoundMoney(fields.Amount)
	tx.Date = calendarDate(fields.Date)
	tx.Type = fields.Type
	tx.CategoryID = nil
	if category != nil {
		id := category.ID
		tx.CategoryID = &id
	}
	tx.Description = normalizeDescription(fields.Description)
}

// publishEvent notifies subscribers. Failures are logged and never fail the write.
func publishEvent(ctx context.Context, publisher adapter.LedgerEventPublisher, event entity.LedgerEvent) {
	if err := publisher.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish ledger event",
			"event_type", event.Type,
			"transaction_id", event.TransactionID,
			"error", err,
		)
	}
}
