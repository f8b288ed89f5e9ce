package error

// SettingsErrorCode defines error codes for settings errors.
// Settings values are normalized rather than rejected, so only internal failures carry a code.
type SettingsErrorCode string

const (
	ErrCodeSettingsInternalError SettingsErrorCode = "SET-990001"
)
