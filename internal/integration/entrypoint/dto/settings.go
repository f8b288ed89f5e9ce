package dto

import "github.com/budgetease/backend/internal/domain/entity"

// UpdateSettingsRequest represents the request body for updating settings.
// Omitted fields are left unchanged.
type UpdateSettingsRequest struct {
	Currency *string `json:"currency,omitempty"`
	Theme    *string `json:"theme,omitempty"`
	TimeZone *string `json:"time_zone,omitempty"`
}

// SettingsResponse represents a user's settings.
type SettingsResponse struct {
	Currency string `json:"currency"`
	Theme    string `json:"theme"`
	TimeZone string `json:"time_zone"`
}

// ToSettingsResponse converts UserSettings to its DTO.
func ToSettingsResponse(settings *entity.UserSettings) SettingsResponse {
	return SettingsResponse{
		Currency: settings.Currency,
		Theme:    settings.Theme,
		TimeZone: settings.TimeZone,
	}
}
