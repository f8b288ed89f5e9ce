package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetease/backend/internal/application/adapter"
	"github.com/budgetease/backend/internal/domain/entity"
	domainerror "github.com/budgetease/backend/internal/domain/error"
)

// RenameCategoryInput represents the input for renaming a category.
type RenameCategoryInput struct {
	CategoryID uuid.UUID
	UserID     uuid.UUID
	Name       string
}

// RenameCategoryOutput represents the output of a rename.
type RenameCategoryOutput struct {
	Category *entity.Category
}

// RenameCategoryUseCase renames one of the user's own categories.
type RenameCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	clock        adapter.Clock
}

// NewRenameCategoryUseCase creates a new RenameCategoryUseCase instance.
func NewRenameCategoryUseCase(categoryRepo adapter.CategoryRepository, clock adapter.Clock) *RenameCategoryUseCase {
	return &RenameCategoryUseCase{
		categoryRepo: categoryRepo,
		clock:        clock,
	}
}

// Execute performs the rename.
func (uc *RenameCategoryUseCase) Execute(ctx context.Context, input RenameCategoryInput) (*RenameCategoryOutput, error) {
	name, err := normalizeName(input.Name)
	if err != nil {
		return nil, err
	}

	category, err := findModifiable(ctx, uc.categoryRepo, input.CategoryID, input.UserID)
	if err != nil {
		return nil, err
	}

	if category.Name == name {
		return &RenameCategoryOutput{Category: category}, nil
	}

	exists, err := uc.categoryRepo.ExistsByNameForUser(ctx, input.UserID, name, &category.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check category name existence: %w", err)
	}
	if exists {
		return nil, nameExists()
	}

	category.Name = name
	category.UpdatedAt = uc.clock.Now()

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		if errors.Is(err, domainerror.ErrCategoryNameExists) {
			return nil, nameExists()
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return &RenameCategoryOutput{
		Category: category,
	}, nil
}

// findModifiable loads a category the user owns. Foreign categories read as not found
// so their existence is not disclosed.
func findModifiable(
	ctx context.Context,
	categoryRepo adapter.CategoryRepository,
	categoryID, userID uuid.UUID,
) (*entity.Category, error) {
	category, err := categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, categoryNotFound()
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	if category.IsGlobal() || category.IsDefaultGlobal {
		return nil, globalReadOnly()
	}
	if !category.IsOwnedBy(userID) {
		return nil, categoryNotFound()
	}
	return category, nil
}
