package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budgetease/backend/internal/domain/entity"
)

// SettingsRepository defines the interface for user settings persistence.
type SettingsRepository interface {
	// FindByUserID returns the user's settings, or nil when none exist yet.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error)

	// Create persists new settings.
	Create(ctx context.Context, settings *entity.UserSettings) error

	// Update saves changes to existing settings.
	Update(ctx context.Context, settings *entity.UserSettings) error
}
