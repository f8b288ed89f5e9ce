package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetease/backend/internal/application/adapter"
	"github.com/budgetease/backend/internal/application/usecase/transaction"
	"github.com/budgetease/backend/internal/domain/entity"
	domainerror "github.com/budgetease/backend/internal/domain/error"
	"github.com/budgetease/backend/internal/integration/entrypoint/dto"
)

const dateLayout = "2006-01-02"

// TransactionController handles transaction endpoints.
type TransactionController struct {
	createUseCase *transaction.CreateTransactionUseCase
	getUseCase    *transaction.GetTransactionUseCase
	recentUseCase *transaction.ListRecentTransactionsUseCase
	monthUseCase  *transaction.ListMonthTransactionsUseCase
	searchUseCase *transaction.SearchTransactionsUseCase
	updateUseCase *transaction.UpdateTransactionUseCase
	deleteUseCase *transaction.DeleteTransactionUseCase
	clock         adapter.Clock
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	createUseCase *transaction.CreateTransactionUseCase,
	getUseCase *transaction.GetTransactionUseCase,
	recentUseCase *transaction.ListRecentTransactionsUseCase,
	monthUseCase *transaction.ListMonthTransactionsUseCase,
	searchUseCase *transaction.SearchTransactionsUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	clock adapter.Clock,
) *TransactionController {
	return &TransactionController{
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		recentUseCase: recentUseCase,
		monthUseCase:  monthUseCase,
		searchUseCase: searchUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		clock:         clock,
	}
}

// List handles GET /transactions requests for one month (default: current UTC month).
func (c *TransactionController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	month, ok := monthQuery(ctx, c.clock)
	if !ok {
		return
	}

	output, err := c.monthUseCase.Execute(ctx.Request.Context(), transaction.ListMonthTransactionsInput{
		UserID: userID,
		Month:  month,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output))
}

// Recent handles GET /transactions/recent requests.
func (c *TransactionController) Recent(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	count := 0
	if raw := ctx.Query("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "count must be an integer",
			})
			return
		}
		count = n
	}

	output, err := c.recentUseCase.Execute(ctx.Request.Context(), transaction.ListRecentTransactionsInput{
		UserID: userID,
		Count:  count,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output))
}

// Search handles GET /transactions/search requests.
// Supported filters: from, to (YYYY-MM-DD, inclusive), category_id, type.
func (c *TransactionController) Search(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var filter entity.TransactionFilter

	if raw := ctx.Query("from"); raw != "" {
		from, err := time.Parse(dateLayout, raw)
		if err != nil {
			c.invalidDate(ctx, "from")
			return
		}
		filter.From = &from
	}

	if raw := ctx.Query("to"); raw != "" {
		to, err := time.Parse(dateLayout, raw)
		if err != nil {
			c.invalidDate(ctx, "to")
			return
		}
		filter.To = &to
	}

	if raw := ctx.Query("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category ID format",
			})
			return
		}
		filter.CategoryID = &id
	}

	if raw := ctx.Query("type"); raw != "" {
		typ := entity.TransactionType(raw)
		filter.Type = &typ
	}

	output, err := c.searchUseCase.Execute(ctx.Request.Context(), transaction.SearchTransactionsInput{
		UserID: userID,
		Filter: filter,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output))
}

// Get handles GET /transactions/:id requests.
func (c *TransactionController) Get(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	transactionID, ok := parseIDParam(ctx, "transaction")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), transaction.GetTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	fields, ok := c.bindTransactionRequest(ctx)
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), transaction.CreateTransactionInput{
		UserID:      userID,
		Amount:      fields.amount,
		Date:        fields.date,
		Type:        fields.typ,
		CategoryID:  fields.categoryID,
		Description: fields.description,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// Update handles PUT /transactions/:id requests. All fields are replaced.
func (c *TransactionController) Update(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	transactionID, ok := parseIDParam(ctx, "transaction")
	if !ok {
		return
	}

	fields, ok := c.bindTransactionRequest(ctx)
	if !ok {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), transaction.UpdateTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
		Amount:        fields.amount,
		Date:          fields.date,
		Type:          fields.typ,
		CategoryID:    fields.categoryID,
		Description:   fields.description,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /transactions/:id requests.
// Deleting a missing or foreign transaction is not an error.
func (c *TransactionController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	transactionID, ok := parseIDParam(ctx, "transaction")
	if !ok {
		return
	}

	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	// Return no content on success
	ctx.Status(http.StatusNoContent)
}

type transactionFields struct {
	amount      decimal.Decimal
	date        time.Time
	typ         entity.TransactionType
	categoryID  *uuid.UUID
	description *string
}

// bindTransactionRequest parses the JSON body, writing a 400 on malformed input.
func (c *TransactionController) bindTransactionRequest(ctx *gin.Context) (transactionFields, bool) {
	var req dto.TransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return transactionFields{}, false
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid amount, expected a decimal string such as \"12.50\"",
			Code:  string(domainerror.ErrCodeInvalidTransactionAmount),
		})
		return transactionFields{}, false
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		c.invalidDate(ctx, "date")
		return transactionFields{}, false
	}

	var categoryID *uuid.UUID
	if req.CategoryID != nil && *req.CategoryID != "" {
		id, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category ID format",
			})
			return transactionFields{}, false
		}
		categoryID = &id
	}

	return transactionFields{
		amount:      amount,
		date:        date,
		typ:         entity.TransactionType(req.Type),
		categoryID:  categoryID,
		description: req.Description,
	}, true
}

func (c *TransactionController) invalidDate(ctx *gin.Context, field string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid " + field + " format. Use YYYY-MM-DD",
		Code:  string(domainerror.ErrCodeInvalidTransactionDate),
	})
}

// handleTransactionError handles transaction errors and returns appropriate HTTP responses.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		statusCode := c.getStatusCodeForTransactionError(txnErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		})
		return
	}

	slog.Error("Transaction request failed", "path", ctx.FullPath(), "error", err)
	internalError(ctx, string(domainerror.ErrCodeTransactionInternalError))
}

// getStatusCodeForTransactionError maps transaction error codes to HTTP status codes.
func (c *TransactionController) getStatusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidTransactionType,
		domainerror.ErrCodeInvalidTransactionDate,
		domainerror.ErrCodeInvalidTransactionAmount,
		domainerror.ErrCodeTxnCategoryNotAvailable,
		domainerror.ErrCodeMissingTransactionFields,
		domainerror.ErrCodeInvalidDateRange:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
