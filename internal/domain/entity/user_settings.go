package entity

import "github.com/google/uuid"

// Theme values accepted for UserSettings.Theme.
const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// Defaults applied when settings are first created or a value is rejected.
const (
	DefaultCurrency = "USD"
	DefaultTheme    = ThemeSystem
	DefaultTimeZone = "UTC"
)

// UserSettings holds per-user display preferences.
type UserSettings struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Currency string
	Theme    string
	TimeZone string
}

// NewUserSettings creates settings for userID with default values.
func NewUserSettings(userID uuid.UUID) *UserSettings {
	return &UserSettings{
		ID:       uuid.New(),
		UserID:   userID,
		Currency: DefaultCurrency,
		Theme:    DefaultTheme,
		TimeZone: DefaultTimeZone,
	}
}
