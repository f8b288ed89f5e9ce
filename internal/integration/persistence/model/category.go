package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/budgetease/backend/internal/domain/entity"
)

// CategoryModel represents the categories table in the database.
// UserID is NULL for global categories.
type CategoryModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID          *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_categories_user_name,priority:1"`
	Name            string     `gorm:"type:varchar(64);not null;uniqueIndex:idx_categories_user_name,priority:2"`
	Color           *string    `gorm:"type:varchar(16)"`
	IsDefaultGlobal bool       `gorm:"not null;default:false"`
	CreatedAt       time.Time  `gorm:"not null"`
	UpdatedAt       time.Time  `gorm:"not null"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	return &entity.Category{
		ID:              m.ID,
		UserID:          m.UserID,
		Name:            m.Name,
		Color:           m.Color,
		IsDefaultGlobal: m.IsDefaultGlobal,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	return &CategoryModel{
		ID:              category.ID,
		UserID:          category.UserID,
		Name:            category.Name,
		Color:           category.Color,
		IsDefaultGlobal: category.IsDefaultGlobal,
		CreatedAt:       category.CreatedAt,
		UpdatedAt:       category.UpdatedAt,
	}
}
