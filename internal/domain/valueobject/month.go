// Package valueobject contains immutable domain values.
package valueobject

import (
	"fmt"
	"time"
)

// monthLayout is the wire format for a Month.
const monthLayout = "2006-01"

// Month is a calendar month with no day component.
// All derived bounds are UTC midnight.
type Month struct {
	Year  int
	Month time.Month
}

// NewMonth builds a Month, normalizing out-of-range months (13 becomes January next year).
func NewMonth(year int, month time.Month) Month {
	return MonthOf(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthOf returns the month containing t. The day and time of t are ignored.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// ParseMonth parses "YYYY-MM".
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(monthLayout, s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q, expected YYYY-MM: %w", s, err)
	}
	return MonthOf(t), nil
}

// Start returns the first instant of the month.
func (m Month) Start() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End returns the first instant of the following month, the exclusive upper bound.
func (m Month) End() time.Time {
	return m.Start().AddDate(0, 1, 0)
}

// Previous returns the month before m.
func (m Month) Previous() Month {
	return MonthOf(m.Start().AddDate(0, -1, 0))
}

// Contains reports whether t falls in [Start, End).
func (m Month) Contains(t time.Time) bool {
	t = t.UTC()
	return !t.Before(m.Start()) && t.Before(m.End())
}

// String returns the month as "YYYY-MM".
func (m Month) String() string {
	return m.Start().Format(monthLayout)
}

// Label returns a short human label such as "Dec 2025".
func (m Month) Label() string {
	return m.Start().Format("Jan 2006")
}

// IsZero reports whether m is the zero Month.
func (m Month) IsZero() bool {
	return m.Year == 0 && m.Month == 0
}
