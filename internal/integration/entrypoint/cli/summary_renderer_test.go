package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgetease/backend/internal/integration/entrypoint/dto"
)

func init() {
	pterm.DisableColor()
}

func strPtr(s string) *string { return &s }

func sampleSummary() dto.DashboardSummaryResponse {
	return dto.DashboardSummaryResponse{
		Month:                "2025-12",
		MonthLabel:           "Dec 2025",
		CurrentIncome:        "1500.00",
		CurrentExpense:       "400.00",
		CurrentNet:           "1100.00",
		PreviousIncome:       "1000.00",
		PreviousExpense:      "0.00",
		PreviousNet:          "1000.00",
		IncomeChangePercent:  strPtr("50.0"),
		ExpenseChangePercent: nil,
		NetChangePercent:     strPtr("10.0"),
		CategoryBreakdown: []dto.CategoryBreakdownResponse{
			{CategoryID: "11111111-1111-1111-1111-111111111111", CategoryName: "Food", TotalAmount: "300.00", PercentageOfTotal: "75.0"},
			{CategoryID: "", CategoryName: "Uncategorized", TotalAmount: "100.00", PercentageOfTotal: "25.0"},
		},
		RecentTransactions: []dto.RecentTransactionResponse{
			{ID: "a", Date: "2025-12-12", Amount: "100.00", Type: "expense", Description: strPtr("coffee beans")},
		},
	}
}

func TestRenderSummary_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderSummary(&buf, sampleSummary(), FormatTable))

	out := buf.String()
	assert.Contains(t, out, "Dec 2025")
	assert.Contains(t, out, "1500.00")
	assert.Contains(t, out, "+50.0%")
	assert.Contains(t, out, "n/a")
	assert.Contains(t, out, "Uncategorized")
	assert.Contains(t, out, "75.0%")
	assert.Contains(t, out, "coffee beans")
}

func TestRenderSummary_EmptyMonth(t *testing.T) {
	summary := sampleSummary()
	summary.CategoryBreakdown = []dto.CategoryBreakdownResponse{}
	summary.RecentTransactions = []dto.RecentTransactionResponse{}

	var buf bytes.Buffer
	require.NoError(t, RenderSummary(&buf, summary, ""))
	assert.Contains(t, buf.String(), "No expenses this month.")
}

func TestRenderSummary_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderSummary(&buf, sampleSummary(), "JSON"))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "2025-12", decoded["month"])
	assert.Nil(t, decoded["expense_change_percent"])
	assert.Equal(t, "50.0", decoded["income_change_percent"])
}

func TestRenderSummary_UnknownFormat(t *testing.T) {
	err := RenderSummary(&bytes.Buffer{}, sampleSummary(), "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestChangeCell(t *testing.T) {
	tests := []struct {
		name          string
		percent       *string
		higherIsWorse bool
		want          string
	}{
		{name: "no baseline", percent: nil, want: "n/a"},
		{name: "income up", percent: strPtr("12.5"), want: "+12.5%"},
		{name: "income down", percent: strPtr("-3.0"), want: "-3.0%"},
		{name: "flat", percent: strPtr("0.0"), want: "0.0%"},
		{name: "expense up", percent: strPtr("7.1"), higherIsWorse: true, want: "+7.1%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, changeCell(tt.percent, tt.higherIsWorse))
		})
	}
}
