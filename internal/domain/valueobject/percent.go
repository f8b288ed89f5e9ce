package valueobject

import "github.com/shopspring/decimal"

// PercentPlaces is the number of decimal places kept on derived percentages.
const PercentPlaces = 1

var hundred = decimal.NewFromInt(100)

// ChangePercent returns (current-previous)/previous*100 rounded to one place,
// half away from zero. It returns nil when previous is zero.
func ChangePercent(previous, current decimal.Decimal) *decimal.Decimal {
	if previous.IsZero() {
		return nil
	}
	pct := current.Sub(previous).Mul(hundred).Div(previous).Round(PercentPlaces)
	return &pct
}

// ShareOfTotal returns part/total*100 rounded to one place.
// A non-positive total yields zero.
func ShareOfTotal(part, total decimal.Decimal) decimal.Decimal {
	if !total.IsPositive() {
		return decimal.Zero
	}
	return part.Mul(hundred).Div(total).Round(PercentPlaces)
}

// RoundMoney rounds an amount to cents.
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}
