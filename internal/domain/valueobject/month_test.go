package valueobject

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonth(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Month
		wantErr bool
	}{
		{name: "december", input: "2025-12", want: Month{Year: 2025, Month: time.December}},
		{name: "january", input: "2026-01", want: Month{Year: 2026, Month: time.January}},
		{name: "month out of range", input: "2025-13", wantErr: true},
		{name: "wrong layout", input: "12/2025", wantErr: true},
		{name: "full date", input: "2025-12-01", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMonth(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMonth_Bounds(t *testing.T) {
	m := NewMonth(2025, time.December)

	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), m.Start())
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), m.End())
	assert.Equal(t, NewMonth(2025, time.November), m.Previous())
}

func TestMonth_PreviousCrossesYear(t *testing.T) {
	m := NewMonth(2026, time.January)

	assert.Equal(t, Month{Year: 2025, Month: time.December}, m.Previous())
}

func TestNewMonth_Normalizes(t *testing.T) {
	assert.Equal(t, Month{Year: 2026, Month: time.January}, NewMonth(2025, 13))
	assert.Equal(t, Month{Year: 2024, Month: time.December}, NewMonth(2025, 0))
}

func TestMonthOf_IgnoresDay(t *testing.T) {
	m := MonthOf(time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC))

	assert.Equal(t, Month{Year: 2025, Month: time.March}, m)
	assert.Equal(t, 1, m.Start().Day())
}

func TestMonth_Contains(t *testing.T) {
	m := NewMonth(2025, time.December)

	assert.True(t, m.Contains(time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, m.Contains(time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC)))
	assert.False(t, m.Contains(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, m.Contains(time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC)))
}

func TestMonth_Formatting(t *testing.T) {
	m := NewMonth(2025, time.December)

	assert.Equal(t, "2025-12", m.String())
	assert.Equal(t, "Dec 2025", m.Label())
	assert.False(t, m.IsZero())
	assert.True(t, Month{}.IsZero())
}
