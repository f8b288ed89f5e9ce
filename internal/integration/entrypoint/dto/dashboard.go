package dto

import (
	"github.com/budgetease/backend/internal/domain/entity"
)

// DashboardSummaryResponse represents the response for GET /dashboard/summary.
// Amounts are decimal strings; change percentages are null when the previous value is zero.
type DashboardSummaryResponse struct {
	Month                string                      `json:"month"`
	MonthLabel           string                      `json:"month_label"`
	CurrentIncome        string                      `json:"current_income"`
	CurrentExpense       string                      `json:"current_expense"`
	CurrentNet           string                      `json:"current_net"`
	PreviousIncome       string                      `json:"previous_income"`
	PreviousExpense      string                      `json:"previous_expense"`
	PreviousNet          string                      `json:"previous_net"`
	IncomeChangePercent  *string                     `json:"income_change_percent"`
	ExpenseChangePercent *string                     `json:"expense_change_percent"`
	NetChangePercent     *string                     `json:"net_change_percent"`
	CategoryBreakdown    []CategoryBreakdownResponse `json:"category_breakdown"`
	RecentTransactions   []RecentTransactionResponse `json:"recent_transactions"`
}

// CategoryBreakdownResponse represents one category's share of monthly expenses.
type CategoryBreakdownResponse struct {
	CategoryID        string  `json:"category_id"`
	CategoryName      string  `json:"category_name"`
	ColorHex          *string `json:"color_hex"`
	TotalAmount       string  `json:"total_amount"`
	PercentageOfTotal string  `json:"percentage_of_total"`
}

// RecentTransactionResponse represents a transaction in the recent activity list.
type RecentTransactionResponse struct {
	ID           string  `json:"id"`
	Date         string  `json:"date"`
	Amount       string  `json:"amount"`
	Type         string  `json:"type"`
	CategoryName *string `json:"category_name"`
	Description  *string `json:"description"`
}

// ToDashboardSummaryResponse converts a DashboardSummary entity to its DTO.
// The uncategorized bucket is reported with an empty category id.
func ToDashboardSummaryResponse(summary *entity.DashboardSummary) DashboardSummaryResponse {
	breakdown := make([]CategoryBreakdownResponse, len(summary.CategoryBreakdown))
	for i, item := range summary.CategoryBreakdown {
		categoryID := ""
		if !item.IsUncategorized() {
			categoryID = item.CategoryID.String()
		}
		breakdown[i] = CategoryBreakdownResponse{
			CategoryID:        categoryID,
			CategoryName:      item.CategoryName,
			ColorHex:          item.ColorHex,
			TotalAmount:       formatMoney(item.TotalAmount),
			PercentageOfTotal: formatShare(item.PercentageOfTotal),
		}
	}

	recent := make([]RecentTransactionResponse, len(summary.RecentTransactions))
	for i, tx := range summary.RecentTransactions {
		recent[i] = RecentTransactionResponse{
			ID:           tx.ID.String(),
			Date:         tx.Date.Format(dateLayout),
			Amount:       formatMoney(tx.Amount),
			Type:         string(tx.Type),
			CategoryName: tx.CategoryName,
			Description:  tx.Description,
		}
	}

	return DashboardSummaryResponse{
		Month:                summary.ReferenceMonth.String(),
		MonthLabel:           summary.ReferenceMonth.Label(),
		CurrentIncome:        formatMoney(summary.CurrentIncome),
		CurrentExpense:       formatMoney(summary.CurrentExpense),
		CurrentNet:           formatMoney(summary.CurrentNet()),
		PreviousIncome:       formatMoney(summary.PreviousIncome),
		PreviousExpense:      formatMoney(summary.PreviousExpense),
		PreviousNet:          formatMoney(summary.PreviousNet()),
		IncomeChangePercent:  formatPercent(summary.IncomeChangePercent),
		ExpenseChangePercent: formatPercent(summary.ExpenseChangePercent),
		NetChangePercent:     formatPercent(summary.NetChangePercent),
		CategoryBreakdown:    breakdown,
		RecentTransactions:   recent,
	}
}
