package valueobject

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangePercent(t *testing.T) {
	tests := []struct {
		name     string
		previous string
		current  string
		want     string
	}{
		{name: "growth", previous: "3000", current: "4000", want: "33.3"},
		{name: "doubling", previous: "1000", current: "2000", want: "100"},
		{name: "unchanged", previous: "2000", current: "2000", want: "0"},
		{name: "drop to zero", previous: "500", current: "0", want: "-100"},
		{name: "negative to more negative", previous: "-500", current: "-1000", want: "100"},
		{name: "negative to positive", previous: "-200", current: "100", want: "-150"},
		{name: "half rounds away from zero", previous: "8", current: "8.1", want: "1.3"},
		{name: "negative half rounds away from zero", previous: "8", current: "7.9", want: "-1.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ChangePercent(decimal.RequireFromString(tt.previous), decimal.RequireFromString(tt.current))
			require.NotNil(t, got)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(*got), "got %s, want %s", got, tt.want)
		})
	}
}

func TestChangePercent_ZeroPreviousIsNotApplicable(t *testing.T) {
	for _, current := range []string{"0", "150", "-20"} {
		assert.Nil(t, ChangePercent(decimal.Zero, decimal.RequireFromString(current)))
	}
}

func TestShareOfTotal(t *testing.T) {
	total := decimal.NewFromInt(2000)

	assert.True(t, decimal.NewFromInt(75).Equal(ShareOfTotal(decimal.NewFromInt(1500), total)))
	assert.True(t, decimal.NewFromInt(25).Equal(ShareOfTotal(decimal.NewFromInt(500), total)))
	assert.True(t, decimal.RequireFromString("33.3").Equal(ShareOfTotal(decimal.NewFromInt(1), decimal.NewFromInt(3))))
	assert.True(t, ShareOfTotal(decimal.NewFromInt(10), decimal.Zero).IsZero())
	assert.True(t, ShareOfTotal(decimal.NewFromInt(10), decimal.NewFromInt(-5)).IsZero())
}

func TestRoundMoney(t *testing.T) {
	assert.Equal(t, "10.13", RoundMoney(decimal.RequireFromString("10.125")).String())
	assert.Equal(t, "10.12", RoundMoney(decimal.RequireFromString("10.1249")).String())
}

func TestCategoryKey(t *testing.T) {
	id := uuid.New()

	categorized := CategoryKeyFor(&id)
	assert.False(t, categorized.IsUncategorized())
	assert.Equal(t, id, categorized.ID())

	uncategorized := CategoryKeyFor(nil)
	assert.True(t, uncategorized.IsUncategorized())
	assert.Equal(t, uuid.Nil, uncategorized.ID())
	assert.Equal(t, UncategorizedKey(), uncategorized)

	nilID := uuid.Nil
	assert.NotEqual(t, uncategorized, CategoryKeyFor(&nilID))
}
