package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/budgetease/backend/internal/application/usecase/dashboard"
	"github.com/budgetease/backend/internal/domain/entity"
)

// dashboardRepository implements the dashboard.DashboardRepository interface.
type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new dashboard repository instance.
func NewDashboardRepository(db *gorm.DB) dashboard.DashboardRepository {
	return &dashboardRepository{
		db: db,
	}
}

// GetPeriodTransactions returns transactions for a half-open period with category data joined in.
func (r *dashboardRepository) GetPeriodTransactions(
	ctx context.Context,
	userID uuid.UUID,
	startDate, endDate time.Time,
) ([]dashboard.PeriodTransaction, error) {
	var results []struct {
		ID            uuid.UUID       `gorm:"column:id"`
		Amount        decimal.Decimal `gorm:"column:amount"`
		Date          time.Time       `gorm:"column:date"`
		Type          string          `gorm:"column:type"`
		CategoryID    *uuid.UUID      `gorm:"column:category_id"`
		CategoryName  *string         `gorm:"column:category_name"`
		CategoryColor *string         `gorm:"column:category_color"`
		Description   *string         `gorm:"column:description"`
		CreatedAt     time.Time       `gorm:"column:created_at"`
	}

	err := r.db.WithContext(ctx).
		Table("transactions t").
		Select(`
			t.id,
			t.amount,
			t.date,
			t.type,
			t.category_id,
			c.name as category_name,
			c.color as category_color,
			t.description,
			t.created_at
		`).
		Joins("LEFT JOIN categories c ON t.category_id = c.id").
		Where("t.user_id = ?", userID).
		Where("t.date >= ?", startDate.UTC()).
		Where("t.date < ?", endDate.UTC()).
		Order("t.date DESC, t.created_at DESC").
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get period transactions: %w", err)
	}

	transactions := make([]dashboard.PeriodTransaction, len(results))
	for i, res := range results {
		transactions[i] = dashboard.PeriodTransaction{
			ID:            res.ID,
			Amount:        res.Amount,
			Date:          res.Date.UTC(),
			Type:          entity.TransactionType(res.Type),
			CategoryID:    res.CategoryID,
			CategoryName:  res.CategoryName,
			CategoryColor: res.CategoryColor,
			Description:   res.Description,
			CreatedAt:     res.CreatedAt,
		}
	}

	return transactions, nil
}
