package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budgetease/backend/internal/application/usecase/settings"
	domainerror "github.com/budgetease/backend/internal/domain/error"
	"github.com/budgetease/backend/internal/integration/entrypoint/dto"
)

// SettingsController handles user settings endpoints.
type SettingsController struct {
	getUseCase    *settings.GetSettingsUseCase
	updateUseCase *settings.UpdateSettingsUseCase
}

// NewSettingsController creates a new settings controller instance.
func NewSettingsController(getUseCase *settings.GetSettingsUseCase, updateUseCase *settings.UpdateSettingsUseCase) *SettingsController {
	return &SettingsController{
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
	}
}

// Get handles GET /settings requests.
func (c *SettingsController) Get(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), settings.GetSettingsInput{UserID: userID})
	if err != nil {
		slog.Error("Failed to load settings", "user_id", userID, "error", err)
		internalError(ctx, string(domainerror.ErrCodeSettingsInternalError))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(output.Settings))
}

// Update handles PUT /settings requests.
func (c *SettingsController) Update(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), settings.UpdateSettingsInput{
		UserID:   userID,
		Currency: req.Currency,
		Theme:    req.Theme,
		TimeZone: req.TimeZone,
	})
	if err != nil {
		slog.Error("Failed to update settings", "user_id", userID, "error", err)
		internalError(ctx, string(domainerror.ErrCodeSettingsInternalError))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(output.Settings))
}
