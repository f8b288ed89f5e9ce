// Package category contains category-related use cases.
package category

import (
	"fmt"
	"strings"
	"unicode/utf8"

	domainerror "github.com/budgetease/backend/internal/domain/error"
)

const (
	// MaxCategoryNameLength is the maximum allowed length for category names.
	MaxCategoryNameLength = 64
	// MaxColorLength is the maximum allowed length for stored colors, including '#'.
	MaxColorLength = 16
)

// normalizeName trims the name and enforces the length rules.
func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameRequired,
			"category name is required",
			domainerror.ErrCategoryNameRequired,
		)
	}
	if utf8.RuneCountInString(name) > MaxCategoryNameLength {
		return "", domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameTooLong,
			fmt.Sprintf("category name must not exceed %d characters", MaxCategoryNameLength),
			domainerror.ErrCategoryNameTooLong,
		)
	}
	return name, nil
}

// normalizeColor maps blank colors to nil, adds a leading '#' and truncates.
func normalizeColor(color *string) *string {
	if color == nil {
		return nil
	}
	value := strings.TrimSpace(*color)
	if value == "" {
		return nil
	}
	if !strings.HasPrefix(value, "#") {
		value = "#" + value
	}
	if utf8.RuneCountInString(value) > MaxColorLength {
		value = string([]rune(value)[:MaxColorLength])
	}
	return &value
}

func nameExists() error {
	return domainerror.NewCategoryError(
		domainerror.ErrCodeCategoryNameExists,
		"a category with this name already exists",
		domainerror.ErrCategoryNameExists,
	)
}

func categoryNotFound() error {
	return domainerror.NewCategoryError(
		domainerror.ErrCodeCategoryNotFound,
		"category not found",
		domainerror.ErrCategoryNotFound,
	)
}

func globalReadOnly() error {
	return domainerror.NewCategoryError(
		domainerror.ErrCodeGlobalCategoryReadOnly,
		"global categories cannot be modified",
		domainerror.ErrGlobalCategoryReadOnly,
	)
}
