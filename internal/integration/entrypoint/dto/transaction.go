package dto

import (
	"time"

	"github.com/budgetease/backend/internal/application/usecase/transaction"
)

// TransactionRequest represents the request body for creating or replacing a transaction.
// Amount is a decimal string to avoid float rounding, e.g. "12.50".
type TransactionRequest struct {
	Date        string  `json:"date" binding:"required"`
	Amount      string  `json:"amount" binding:"required"`
	Type        string  `json:"type" binding:"required,oneof=expense income"`
	CategoryID  *string `json:"category_id,omitempty"`
	Description *string `json:"description,omitempty"`
}

// TransactionCategoryResponse represents category information in transaction response.
type TransactionCategoryResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Color *string `json:"color"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string                       `json:"id"`
	UserID      string                       `json:"user_id"`
	Date        string                       `json:"date"`
	Amount      string                       `json:"amount"`
	Type        string                       `json:"type"`
	CategoryID  *string                      `json:"category_id,omitempty"`
	Category    *TransactionCategoryResponse `json:"category,omitempty"`
	Description *string                      `json:"description"`
	CreatedAt   time.Time                    `json:"created_at"`
	UpdatedAt   time.Time                    `json:"updated_at"`
}

// TransactionListResponse represents a list of transactions.
type TransactionListResponse struct {
	Data []TransactionResponse `json:"data"`
}

// ToTransactionResponse converts a TransactionOutput to TransactionResponse DTO.
func ToTransactionResponse(output *transaction.TransactionOutput) TransactionResponse {
	response := TransactionResponse{
		ID:          output.ID.String(),
		UserID:      output.UserID.String(),
		Date:        output.Date.Format(dateLayout),
		Amount:      formatMoney(output.Amount),
		Type:        string(output.Type),
		Description: output.Description,
		CreatedAt:   output.CreatedAt,
		UpdatedAt:   output.UpdatedAt,
	}

	if output.CategoryID != nil {
		id := output.CategoryID.String()
		response.CategoryID = &id
	}

	if output.Category != nil {
		response.Category = &TransactionCategoryResponse{
			ID:    output.Category.ID.String(),
			Name:  output.Category.Name,
			Color: output.Category.Color,
		}
	}

	return response
}

// ToTransactionListResponse converts a ListTransactionsOutput to its DTO.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	data := make([]TransactionResponse, len(output.Transactions))
	for i, tx := range output.Transactions {
		data[i] = ToTransactionResponse(tx)
	}
	return TransactionListResponse{Data: data}
}
