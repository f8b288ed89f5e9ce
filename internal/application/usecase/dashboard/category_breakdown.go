package dashboard

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/budgetease/backend/internal/domain/entity"
	"github.com/budgetease/backend/internal/domain/valueobject"
)

// UncategorizedName is the display name for spending without a category,
// and for categories whose name could not be resolved.
const UncategorizedName = "Uncategorized"

type breakdownBucket struct {
	key   valueobject.CategoryKey
	name  string
	color *string
	total decimal.Decimal
}

// buildCategoryBreakdown groups expenses by category and orders them by total descending.
// Ties fall back to name, then id, so output is deterministic.
func buildCategoryBreakdown(txs []PeriodTransaction) []entity.CategoryBreakdownItem {
	buckets := make(map[valueobject.CategoryKey]*breakdownBucket)
	totalExpense := decimal.Zero

	for _, tx := range txs {
		if tx.Type != entity.TransactionTypeExpense {
			continue
		}
		totalExpense = totalExpense.Add(tx.Amount)

		key := valueobject.CategoryKeyFor(tx.CategoryID)
		bucket, ok := buckets[key]
		if !ok {
			bucket = &breakdownBucket{key: key, name: UncategorizedName, total: decimal.Zero}
			if !key.IsUncategorized() {
				if tx.CategoryName != nil {
					bucket.name = *tx.CategoryName
				}
				bucket.color = tx.CategoryColor
			}
			buckets[key] = bucket
		}
		bucket.total = bucket.total.Add(tx.Amount)
	}

	if !totalExpense.IsPositive() {
		return []entity.CategoryBreakdownItem{}
	}

	sorted := make([]*breakdownBucket, 0, len(buckets))
	for _, b := range buckets {
		sorted = append(sorted, b)
	}
	sort.Slice(sorted, func(i, j int) bool {
		if c := sorted[i].total.Cmp(sorted[j].total); c != 0 {
			return c > 0
		}
		if sorted[i].name != sorted[j].name {
			return sorted[i].name < sorted[j].name
		}
		return sorted[i].key.ID().String() < sorted[j].key.ID().String()
	})

	items := make([]entity.CategoryBreakdownItem, len(sorted))
	for i, b := range sorted {
		items[i] = entity.CategoryBreakdownItem{
			CategoryID:        b.key.ID(),
			CategoryName:      b.name,
			ColorHex:          b.color,
			TotalAmount:       b.total,
			PercentageOfTotal: valueobject.ShareOfTotal(b.total, totalExpense),
		}
	}
	return items
}
