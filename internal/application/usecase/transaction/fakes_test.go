package transaction

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/budgetease/backend/internal/domain/entity"
	domainerror "github.com/budgetease/backend/internal/domain/error"
)

type fakeClock struct{ now time.Time }

func (c fakeClock) Now() time.Time { return c.now }

type fakeTransactionRepo struct {
	mu         sync.Mutex
	byID       map[uuid.UUID]*entity.Transaction
	categories map[uuid.UUID]*entity.Category
	err        error
	lastFilter entity.TransactionFilter
	lastLimit  int
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{
		byID:       make(map[uuid.UUID]*entity.Transaction),
		categories: make(map[uuid.UUID]*entity.Category),
	}
}

func (r *fakeTransactionRepo) withCategory(tx *entity.Transaction) *entity.TransactionWithCategory {
	row := &entity.TransactionWithCategory{Transaction: tx}
	if tx.CategoryID != nil {
		row.Category = r.categories[*tx.CategoryID]
	}
	return row
}

func (r *fakeTransactionRepo) sorted(userID uuid.UUID, keep func(*entity.Transaction) bool) []*entity.TransactionWithCategory {
	var rows []*entity.TransactionWithCategory
	for _, tx := range r.byID {
		if tx.UserID == userID && keep(tx) {
			copied := *tx
			rows = append(rows, r.withCategory(&copied))
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i].Transaction, rows[j].Transaction
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
	return rows
}

func (r *fakeTransactionRepo) Create(_ context.Context, tx *entity.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	copied := *tx
	r.byID[tx.ID] = &copied
	return nil
}

func (r *fakeTransactionRepo) FindByIDAndUser(_ context.Context, id, userID uuid.UUID) (*entity.TransactionWithCategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	tx, ok := r.byID[id]
	if !ok || tx.UserID != userID {
		return nil, domainerror.ErrTransactionNotFound
	}
	copied := *tx
	return r.withCategory(&copied), nil
}

func (r *fakeTransactionRepo) FindRecent(_ context.Context, userID uuid.UUID, limit int) ([]*entity.TransactionWithCategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastLimit = limit
	if r.err != nil {
		return nil, r.err
	}
	rows := r.sorted(userID, func(*entity.Transaction) bool { return true })
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (r *fakeTransactionRepo) FindByDateRange(_ context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.TransactionWithCategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	return r.sorted(userID, func(tx *entity.Transaction) bool {
		return !tx.Date.Before(start) && tx.Date.Before(end)
	}), nil
}

func (r *fakeTransactionRepo) Search(_ context.Context, userID uuid.UUID, filter entity.TransactionFilter) ([]*entity.TransactionWithCategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastFilter = filter
	if r.err != nil {
		return nil, r.err
	}
	return r.sorted(userID, func(tx *entity.Transaction) bool {
		if filter.From != nil && tx.Date.Before(*filter.From) {
			return false
		}
		if filter.To != nil && !tx.Date.Before(filter.To.AddDate(0, 0, 1)) {
			return false
		}
		if filter.Type != nil && tx.Type != *filter.Type {
			return false
		}
		if filter.CategoryID != nil && (tx.CategoryID == nil || *tx.CategoryID != *filter.CategoryID) {
			return false
		}
		return true
	}), nil
}

func (r *fakeTransactionRepo) Update(_ context.Context, tx *entity.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	copied := *tx
	r.byID[tx.ID] = &copied
	return nil
}

func (r *fakeTransactionRepo) DeleteByIDAndUser(_ context.Context, id, userID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return false, r.err
	}
	tx, ok := r.byID[id]
	if !ok || tx.UserID != userID {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

func (r *fakeTransactionRepo) CountByCategory(_ context.Context, categoryID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, tx := range r.byID {
		if tx.CategoryID != nil && *tx.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

// fakeCategoryRepo only supports lookups; the transaction use cases never write categories.
type fakeCategoryRepo struct {
	byID map[uuid.UUID]*entity.Category
	err  error
}

func (r *fakeCategoryRepo) Create(context.Context, *entity.Category) error { return errors.New("not supported") }

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	if r.err != nil {
		return nil, r.err
	}
	c, ok := r.byID[id]
	if !ok {
		return nil, domainerror.ErrCategoryNotFound
	}
	return c, nil
}

func (r *fakeCategoryRepo) FindAvailableForUser(context.Context, uuid.UUID) ([]*entity.Category, error) {
	return nil, errors.New("not supported")
}

func (r *fakeCategoryRepo) ExistsByNameForUser(context.Context, uuid.UUID, string, *uuid.UUID) (bool, error) {
	return false, errors.New("not supported")
}

func (r *fakeCategoryRepo) Update(context.Context, *entity.Category) error { return errors.New("not supported") }

func (r *fakeCategoryRepo) Delete(context.Context, uuid.UUID) error { return errors.New("not supported") }

func (r *fakeCategoryRepo) SeedGlobals(context.Context, []*entity.Category) error {
	return errors.New("not supported")
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []entity.LedgerEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event entity.LedgerEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

// fixture bundles the fakes around one user and a fixed clock.
type fixture struct {
	userID       uuid.UUID
	otherUserID  uuid.UUID
	now          time.Time
	clock        fakeClock
	transactions *fakeTransactionRepo
	categories   *fakeCategoryRepo
	publisher    *recordingPublisher
	global       *entity.Category
	own          *entity.Category
	foreign      *entity.Category
}

func newFixture() *fixture {
	now := time.Date(2025, time.December, 15, 10, 30, 0, 0, time.UTC)
	userID, otherUserID := uuid.New(), uuid.New()

	global := entity.DefaultCategories()[0]
	own := entity.NewCategory(userID, "Groceries", nil, now)
	foreign := entity.NewCategory(otherUserID, "Secret", nil, now)

	f := &fixture{
		userID:       userID,
		otherUserID:  otherUserID,
		now:          now,
		clock:        fakeClock{now: now},
		transactions: newFakeTransactionRepo(),
		categories: &fakeCategoryRepo{byID: map[uuid.UUID]*entity.Category{
			global.ID:  global,
			own.ID:     own,
			foreign.ID: foreign,
		}},
		publisher: &recordingPublisher{},
		global:    global,
		own:       own,
		foreign:   foreign,
	}
	for id, c := range f.categories.byID {
		f.transactions.categories[id] = c
	}
	return f
}

func (f *fixture) seed(userID uuid.UUID, amount string, date time.Time, typ entity.TransactionType, categoryID *uuid.UUID) *entity.Transaction {
	tx := entity.NewTransaction(userID, mustDecimal(amount), date, typ, categoryID, nil, date.Add(9*time.Hour))
	f.transactions.byID[tx.ID] = tx
	return tx
}
