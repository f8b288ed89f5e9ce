package model

import (
	"github.com/google/uuid"

	"github.com/budgetease/backend/internal/domain/entity"
)

// UserSettingsModel represents the user_settings table in the database.
type UserSettingsModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Currency string    `gorm:"type:varchar(16);not null;default:'USD'"`
	Theme    string    `gorm:"type:varchar(16);not null;default:'system'"`
	TimeZone string    `gorm:"type:varchar(128);not null;default:'UTC'"`
}

// TableName returns the table name for the UserSettingsModel.
func (UserSettingsModel) TableName() string {
	return "user_settings"
}

// ToEntity converts a UserSettingsModel to a domain UserSettings entity.
func (m *UserSettingsModel) ToEntity() *entity.UserSettings {
	return &entity.UserSettings{
		ID:       m.ID,
		UserID:   m.UserID,
		Currency: m.Currency,
		Theme:    m.Theme,
		TimeZone: m.TimeZone,
	}
}

// UserSettingsFromEntity creates a UserSettingsModel from a domain UserSettings entity.
func UserSettingsFromEntity(settings *entity.UserSettings) *UserSettingsModel {
	return &UserSettingsModel{
		ID:       settings.ID,
		UserID:   settings.UserID,
		Currency: settings.Currency,
		Theme:    settings.Theme,
		TimeZone: settings.TimeZone,
	}
}

// AllModels lists every model managed by AutoMigrate, in dependency order.
func AllModels() []interface{} {
	return []interface{}{
		&CategoryModel{},
		&TransactionModel{},
		&UserSettingsModel{},
	}
}
