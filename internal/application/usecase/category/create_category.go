package category

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/budgetease/backend/internal/application/adapter"
	"github.com/budgetease/backend/internal/domain/entity"
	domainerror "github.com/budgetease/backend/internal/domain/error"
)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	UserID uuid.UUID
	Name   string
	Color  *string // Optional
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	clock        adapter.Clock
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository, clock adapter.Clock) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
		clock:        clock,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	name, err := normalizeName(input.Name)
	if err != nil {
		return nil, err
	}

	exists, err := uc.categoryRepo.ExistsByNameForUser(ctx, input.UserID, name, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check category name existence: %w", err)
	}
	if exists {
		return nil, nameExists()
	}

	category := entity.NewCategory(input.UserID, name, normalizeColor(input.Color), uc.clock.Now())

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		// The unique index catches a concurrent insert of the same name.
		if errors.Is(err, domainerror.ErrCategoryNameExists) {
			return nil, nameExists()
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	slog.Debug("Category created", "category_id", category.ID, "user_id", input.UserID)

	return &CreateCategoryOutput{
		Category: category,
	}, nil
}
