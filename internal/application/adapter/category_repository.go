// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budgetease/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID or returns ErrCategoryNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindAvailableForUser returns global categories followed by the user's own, each group by name.
	FindAvailableForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error)

	// ExistsByNameForUser checks case-insensitively for a user category named name,
	// ignoring excludeID when set.
	ExistsByNameForUser(ctx context.Context, userID uuid.UUID, name string, excludeID *uuid.UUID) (bool, error)

	// Update updates an existing category in the database.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// SeedGlobals inserts the given global categories, skipping ids that already exist.
	SeedGlobals(ctx context.Context, categories []*entity.Category) error
}
