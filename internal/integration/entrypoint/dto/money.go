package dto

import (
	"github.com/shopspring/decimal"

	"github.com/budgetease/backend/internal/domain/valueobject"
)

const dateLayout = "2006-01-02"

// formatMoney renders an amount with exactly two decimals, e.g. "1250.50".
func formatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// formatPercent renders a percentage with one decimal, or nil when not applicable.
func formatPercent(p *decimal.Decimal) *string {
	if p == nil {
		return nil
	}
	s := p.StringFixed(valueobject.PercentPlaces)
	return &s
}

// formatShare renders a share of total with one decimal, e.g. "33.3".
func formatShare(d decimal.Decimal) string {
	return d.StringFixed(valueobject.PercentPlaces)
}
