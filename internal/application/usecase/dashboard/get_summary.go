// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/budgetease/backend/internal/domain/entity"
	domainerror "github.com/budgetease/backend/internal/domain/error"
	"github.com/budgetease/backend/internal/domain/valueobject"
)

// GetSummaryInput represents the input for computing a dashboard summary.
type GetSummaryInput struct {
	UserID uuid.UUID
	Month  valueobject.Month
}

// GetSummaryUseCase computes the month-over-month dashboard summary.
type GetSummaryUseCase struct {
	dashboardRepo DashboardRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(dashboardRepo DashboardRepository) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		dashboardRepo: dashboardRepo,
	}
}

// Execute loads the reference month and the month before it and aggregates them.
// Store errors are returned wrapped; nothing is cached between calls.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*entity.DashboardSummary, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	slog.Debug("Computing dashboard summary",
		"user_id", input.UserID,
		"month", input.Month.String(),
	)

	current, previous, err := uc.loadPeriods(ctx, input.UserID, input.Month)
	if err != nil {
		return nil, err
	}

	currentIncome, currentExpense := sumByType(current)
	previousIncome, previousExpense := sumByType(previous)

	summary := &entity.DashboardSummary{
		ReferenceMonth:     input.Month,
		CurrentIncome:      currentIncome,
		CurrentExpense:     currentExpense,
		PreviousIncome:     previousIncome,
		PreviousExpense:    previousExpense,
		CategoryBreakdown:  buildCategoryBreakdown(current),
		RecentTransactions: buildRecentTransactions(current),
	}
	summary.IncomeChangePercent = valueobject.ChangePercent(previousIncome, currentIncome)
	summary.ExpenseChangePercent = valueobject.ChangePercent(previousExpense, currentExpense)
	summary.NetChangePercent = valueobject.ChangePercent(summary.PreviousNet(), summary.CurrentNet())

	return summary, nil
}

// loadPeriods fetches both months concurrently. The first failure cancels the other fetch.
func (uc *GetSummaryUseCase) loadPeriods(
	ctx context.Context,
	userID uuid.UUID,
	month valueobject.Month,
) (current, previous []PeriodTransaction, err error) {
	prevMonth := month.Previous()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		txs, err := uc.dashboardRepo.GetPeriodTransactions(gctx, userID, month.Start(), month.End())
		if err != nil {
			return fmt.Errorf("failed to get transactions for %s: %w", month, err)
		}
		current = withinMonth(txs, month)
		return nil
	})
	g.Go(func() error {
		txs, err := uc.dashboardRepo.GetPeriodTransactions(gctx, userID, prevMonth.Start(), prevMonth.End())
		if err != nil {
			return fmt.Errorf("failed to get transactions for %s: %w", prevMonth, err)
		}
		previous = withinMonth(txs, prevMonth)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return current, previous, nil
}

// withinMonth drops rows dated outside month so a store that widens the range
// cannot leak them into the totals.
func withinMonth(txs []PeriodTransaction, month valueobject.Month) []PeriodTransaction {
	kept := make([]PeriodTransaction, 0, len(txs))
	for _, tx := range txs {
		if month.Contains(tx.Date) {
			kept = append(kept, tx)
		}
	}
	return kept
}

// validateInput validates the input parameters.
func (uc *GetSummaryUseCase) validateInput(input GetSummaryInput) error {
	if input.UserID == uuid.Nil {
		return domainerror.NewDashboardError(
			domainerror.ErrCodeMissingUserID,
			"user id is required",
			domainerror.ErrMissingUserID,
		)
	}

	if input.Month.IsZero() {
		return domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidMonth,
			"month is required",
			domainerror.ErrInvalidMonth,
		)
	}

	return nil
}

func sumByType(txs []PeriodTransaction) (income, expense decimal.Decimal) {
	income, expense = decimal.Zero, decimal.Zero
	for _, tx := range txs {
		switch tx.Type {
		case entity.TransactionTypeIncome:
			income = income.Add(tx.Amount)
		case entity.TransactionTypeExpense:
			expense = expense.Add(tx.Amount)
		}
	}
	return income, expense
}
