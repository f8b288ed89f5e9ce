// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category groups transactions for reporting.
// A nil UserID marks a global category shared by every user.
type Category struct {
	ID              uuid.UUID
	UserID          *uuid.UUID
	Name            string
	Color           *string
	IsDefaultGlobal bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewCategory creates a new user-owned Category entity.
func NewCategory(userID uuid.UUID, name string, color *string, now time.Time) *Category {
	owner := userID
	return &Category{
		ID:        uuid.New(),
		UserID:    &owner,
		Name:      name,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsGlobal reports whether the category is shared by all users.
func (c *Category) IsGlobal() bool {
	return c.UserID == nil
}

// IsOwnedBy reports whether the category belongs to userID.
func (c *Category) IsOwnedBy(userID uuid.UUID) bool {
	return c.UserID != nil && *c.UserID == userID
}

// IsAvailableTo reports whether userID may attach transactions to the category.
func (c *Category) IsAvailableTo(userID uuid.UUID) bool {
	return c.IsGlobal() || c.IsDefaultGlobal || c.IsOwnedBy(userID)
}

// Default global category ids. They are stable so seeding is idempotent.
var (
	DefaultCategoryFoodID      = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	DefaultCategoryBillsID     = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	DefaultCategoryTransportID = uuid.MustParse("33333333-3333-3333-3333-333333333333")
)

// DefaultCategories returns the global categories every installation starts with.
func DefaultCategories() []*Category {
	color := func(s string) *string { return &s }
	return []*Category{
		{ID: DefaultCategoryFoodID, Name: "Food", Color: color("#F97316"), IsDefaultGlobal: true},
		{ID: DefaultCategoryBillsID, Name: "Bills", Color: color("#3B82F6"), IsDefaultGlobal: true},
		{ID: DefaultCategoryTransportID, Name: "Transport", Color: color("#10B981"), IsDefaultGlobal: true},
	}
}
