// Package cli renders application output for the budgetctl operator tool.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/budgetease/backend/internal/integration/entrypoint/dto"
)

// Output formats accepted by RenderSummary.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

const notApplicable = "n/a"

// RenderSummary writes the dashboard summary to w as pterm tables or indented JSON.
func RenderSummary(w io.Writer, summary dto.DashboardSummaryResponse, format string) error {
	switch strings.ToLower(format) {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(summary)
	case FormatTable, "":
		return renderSummaryTables(w, summary)
	default:
		return fmt.Errorf("unknown output format %q (use %s or %s)", format, FormatTable, FormatJSON)
	}
}

func renderSummaryTables(w io.Writer, summary dto.DashboardSummaryResponse) error {
	totals, err := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(pterm.TableData{
			{"", "Current", "Previous", "Change"},
			{"Income", summary.CurrentIncome, summary.PreviousIncome, changeCell(summary.IncomeChangePercent, false)},
			{"Expense", summary.CurrentExpense, summary.PreviousExpense, changeCell(summary.ExpenseChangePercent, true)},
			{"Net", summary.CurrentNet, summary.PreviousNet, changeCell(summary.NetChangePercent, false)},
		}).
		Srender()
	if err != nil {
		return fmt.Errorf("render totals: %w", err)
	}

	panel := pterm.DefaultBox.
		WithTitle(summary.MonthLabel).
		WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).
		Sprint(totals)
	if _, err := fmt.Fprintln(w, panel); err != nil {
		return err
	}

	if len(summary.CategoryBreakdown) == 0 {
		_, err := fmt.Fprintln(w, pterm.FgGray.Sprint("No expenses this month."))
		return err
	}

	breakdown := pterm.TableData{{"Category", "Total", "Share"}}
	for _, item := range summary.CategoryBreakdown {
		breakdown = append(breakdown, []string{item.CategoryName, item.TotalAmount, item.PercentageOfTotal + "%"})
	}
	rendered, err := pterm.DefaultTable.WithHasHeader().WithData(breakdown).Srender()
	if err != nil {
		return fmt.Errorf("render breakdown: %w", err)
	}
	if _, err := fmt.Fprintln(w, rendered); err != nil {
		return err
	}

	recent := pterm.TableData{{"Date", "Type", "Amount", "Category", "Description"}}
	for _, tx := range summary.RecentTransactions {
		recent = append(recent, []string{tx.Date, tx.Type, tx.Amount, valueOr(tx.CategoryName, "-"), valueOr(tx.Description, "")})
	}
	rendered, err = pterm.DefaultTable.WithHasHeader().WithData(recent).Srender()
	if err != nil {
		return fmt.Errorf("render recent transactions: %w", err)
	}
	_, err = fmt.Fprintln(w, rendered)
	return err
}

// changeCell colours a change percentage. Rising expenses are red, rising income and net are green.
func changeCell(percent *string, higherIsWorse bool) string {
	if percent == nil {
		return notApplicable
	}

	value := *percent
	switch {
	case strings.HasPrefix(value, "-"):
		if higherIsWorse {
			return pterm.FgGreen.Sprint(value + "%")
		}
		return pterm.FgRed.Sprint(value + "%")
	case strings.Trim(value, "0.") == "":
		return pterm.FgYellow.Sprint(value + "%")
	default:
		if higherIsWorse {
			return pterm.FgRed.Sprint("+" + value + "%")
		}
		return pterm.FgGreen.Sprint("+" + value + "%")
	}
}

func valueOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
