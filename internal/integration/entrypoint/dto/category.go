package dto

import (
	"time"

	"github.com/budgetease/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name  string  `json:"name" binding:"required"`
	Color *string `json:"color,omitempty"`
}

// RenameCategoryRequest represents the request body for renaming a category.
type RenameCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// CategoryResponse represents a category in API responses.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     *string   `json:"color"`
	IsGlobal  bool      `json:"is_global"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Data []CategoryResponse `json:"data"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:        category.ID.String(),
		Name:      category.Name,
		Color:     category.Color,
		IsGlobal:  category.IsGlobal() || category.IsDefaultGlobal,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

// ToCategoryListResponse converts a slice of Category entities to a CategoryListResponse DTO.
func ToCategoryListResponse(categories []*entity.Category) CategoryListResponse {
	data := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		data[i] = ToCategoryResponse(category)
	}
	return CategoryListResponse{Data: data}
}
