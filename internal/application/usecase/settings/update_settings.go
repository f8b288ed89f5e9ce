package settings

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/budgetease/backend/internal/application/adapter"
	"github.com/budgetease/backend/internal/domain/entity"
)

const (
	// MaxCurrencyLength is the longest currency code stored.
	MaxCurrencyLength = 16
	// MaxTimeZoneLength is the longest time zone name stored.
	MaxTimeZoneLength = 128
)

// UpdateSettingsInput represents the input for updating settings.
// Nil fields are left unchanged.
type UpdateSettingsInput struct {
	UserID   uuid.UUID
	Currency *string
	Theme    *string
	TimeZone *string
}

// UpdateSettingsUseCase normalises and saves user settings.
type UpdateSettingsUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewUpdateSettingsUseCase creates a new UpdateSettingsUseCase instance.
func NewUpdateSettingsUseCase(settingsRepo adapter.SettingsRepository) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{
		settingsRepo: settingsRepo,
	}
}

// Execute applies the update. Invalid values fall back to defaults instead of failing.
func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, input UpdateSettingsInput) (*SettingsOutput, error) {
	settings, err := getOrCreate(ctx, uc.settingsRepo, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Currency != nil {
		settings.Currency = normalizeCurrency(*input.Currency)
	}
	if input.Theme != nil {
		settings.Theme = normalizeTheme(*input.Theme)
	}
	if input.TimeZone != nil {
		settings.TimeZone = normalizeTimeZone(*input.TimeZone)
	}

	if err := uc.settingsRepo.Update(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}

	return &SettingsOutput{Settings: settings}, nil
}

func normalizeCurrency(currency string) string {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" || len(currency) > MaxCurrencyLength {
		return entity.DefaultCurrency
	}
	return currency
}

func normalizeTheme(theme string) string {
	switch theme := strings.ToLower(strings.TrimSpace(theme)); theme {
	case entity.ThemeLight, entity.ThemeDark, entity.ThemeSystem:
		return theme
	default:
		return entity.DefaultTheme
	}
}

func normalizeTimeZone(tz string) string {
	tz = strings.TrimSpace(tz)
	if tz == "" || len(tz) > MaxTimeZoneLength {
		return entity.DefaultTimeZone
	}
	return tz
}
