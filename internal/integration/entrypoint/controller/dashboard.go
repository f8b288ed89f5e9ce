package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budgetease/backend/internal/application/adapter"
	"github.com/budgetease/backend/internal/application/usecase/dashboard"
	domainerror "github.com/budgetease/backend/internal/domain/error"
	"github.com/budgetease/backend/internal/domain/valueobject"
	"github.com/budgetease/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	getSummaryUseCase *dashboard.GetSummaryUseCase
	clock             adapter.Clock
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(getSummaryUseCase *dashboard.GetSummaryUseCase, clock adapter.Clock) *DashboardController {
	return &DashboardController{
		getSummaryUseCase: getSummaryUseCase,
		clock:             clock,
	}
}

// GetSummary handles GET /dashboard/summary requests.
// The month query parameter (YYYY-MM) defaults to the current UTC month.
func (c *DashboardController) GetSummary(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	month, ok := monthQuery(ctx, c.clock)
	if !ok {
		return
	}

	summary, err := c.getSummaryUseCase.Execute(ctx.Request.Context(), dashboard.GetSummaryInput{
		UserID: userID,
		Month:  month,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardSummaryResponse(summary))
}

// monthQuery reads ?month=YYYY-MM, writing a 400 when it is malformed.
func monthQuery(ctx *gin.Context, clock adapter.Clock) (valueobject.Month, bool) {
	raw := ctx.Query("month")
	if raw == "" {
		return valueobject.MonthOf(clock.Now()), true
	}

	month, err := valueobject.ParseMonth(raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid month format, expected YYYY-MM",
			Code:  string(domainerror.ErrCodeInvalidMonth),
		})
		return valueobject.Month{}, false
	}
	return month, true
}

// handleDashboardError handles dashboard errors and returns appropriate HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var dashErr *domainerror.DashboardError
	if errors.As(err, &dashErr) {
		ctx.JSON(c.getStatusCodeForDashboardError(dashErr.Code), dto.ErrorResponse{
			Error: dashErr.Message,
			Code:  string(dashErr.Code),
		})
		return
	}

	slog.Error("Failed to compute dashboard summary", "error", err)
	internalError(ctx, string(domainerror.ErrCodeDashboardInternalError))
}

// getStatusCodeForDashboardError maps dashboard error codes to HTTP status codes.
func (c *DashboardController) getStatusCodeForDashboardError(code domainerror.DashboardErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidMonth:
		return http.StatusBadRequest
	case domainerror.ErrCodeMissingUserID:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
