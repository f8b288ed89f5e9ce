// Package settings contains user settings use cases.
package settings

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetease/backend/internal/application/adapter"
	"github.com/budgetease/backend/internal/domain/entity"
)

// GetSettingsInput represents the input for reading settings.
type GetSettingsInput struct {
	UserID uuid.UUID
}

// SettingsOutput represents a user's settings.
type SettingsOutput struct {
	Settings *entity.UserSettings
}

// GetSettingsUseCase returns the user's settings, creating defaults on first access.
type GetSettingsUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewGetSettingsUseCase creates a new GetSettingsUseCase instance.
func NewGetSettingsUseCase(settingsRepo adapter.SettingsRepository) *GetSettingsUseCase {
	return &GetSettingsUseCase{
		settingsRepo: settingsRepo,
	}
}

// Execute performs the lookup.
func (uc *GetSettingsUseCase) Execute(ctx context.Context, input GetSettingsInput) (*SettingsOutput, error) {
	settings, err := getOrCreate(ctx, uc.settingsRepo, input.UserID)
	if err != nil {
		return nil, err
	}
	return &SettingsOutput{Settings: settings}, nil
}

func getOrCreate(ctx context.Context, repo adapter.SettingsRepository, userID uuid.UUID) (*entity.UserSettings, error) {
	settings, err := repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find settings: %w", err)
	}
	if settings != nil {
		return settings, nil
	}

	settings = entity.NewUserSettings(userID)
	if err := repo.Create(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to create settings: %w", err)
	}
	return settings, nil
}
