package dashboard

import (
	"sort"

	"github.com/budgetease/backend/internal/domain/entity"
)

// RecentTransactionsLimit caps the recent activity list on the dashboard.
const RecentTransactionsLimit = 5

// buildRecentTransactions returns the newest entries by date, then creation time.
func buildRecentTransactions(txs []PeriodTransaction) []entity.RecentTransactionItem {
	sorted := make([]PeriodTransaction, len(txs))
	copy(sorted, txs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.After(sorted[j].Date)
		}
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	if len(sorted) > RecentTransactionsLimit {
		sorted = sorted[:RecentTransactionsLimit]
	}

	items := make([]entity.RecentTransactionItem, len(sorted))
	for i, tx := range sorted {
		items[i] = entity.RecentTransactionItem{
			ID:           tx.ID,
			Date:         tx.Date,
			Amount:       tx.Amount,
			Type:         tx.Type,
			CategoryName: tx.CategoryName,
			Description:  tx.Description,
		}
	}
	return items
}
