package adapter

import "time"

// Clock supplies the current time so date validation can be tested.
type Clock interface {
	Now() time.Time
}

// SystemClock is a Clock backed by time.Now in UTC.
type SystemClock struct{}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
