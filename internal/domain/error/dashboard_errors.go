// Package error defines domain-specific errors for the BudgetEase application.
package error

import "errors"

// Dashboard domain errors.
var (
	// ErrInvalidMonth is returned when the reference month cannot be parsed.
	ErrInvalidMonth = errors.New("month must be formatted as YYYY-MM")

	// ErrMissingUserID is returned when a summary is requested without an owner.
	ErrMissingUserID = errors.New("user id is required")
)

// DashboardErrorCode defines error codes for dashboard errors.
// Format: DSH-XXYYYY where XX is category and YYYY is specific error.
type DashboardErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidMonth  DashboardErrorCode = "DSH-010001"
	ErrCodeMissingUserID DashboardErrorCode = "DSH-010002"

	// Internal errors (99XXXX)
	ErrCodeDashboardInternalError DashboardErrorCode = "DSH-990001"
)

// DashboardError represents a dashboard error with code and message.
type DashboardError struct {
	Code    DashboardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DashboardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError creates a new DashboardError with the given code and message.
func NewDashboardError(code DashboardErrorCode, message string, err error) *DashboardError {
	return &DashboardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
