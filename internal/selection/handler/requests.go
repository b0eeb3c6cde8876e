package handler

import (
	"strings"

	id "supplierhub/pkg/domain"
	dErrors "supplierhub/pkg/domain-errors"
)

// SelectCategoryRequest is the HTTP request body for
// PUT /onboarding/{supplierID}/selection/category.
type SelectCategoryRequest struct {
	CategoryID string `json:"category_id"`

	parsedCategoryID id.CategoryID
}

// Validate validates and parses the request.
func (r *SelectCategoryRequest) Validate() error {
	r.CategoryID = strings.TrimSpace(r.CategoryID)
	if r.CategoryID == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "category_id is required")
	}
	categoryID, err := id.ParseCategoryID(r.CategoryID)
	if err != nil {
		return err
	}
	r.parsedCategoryID = categoryID
	return nil
}

// ParsedCategoryID returns the validated category ID.
func (r *SelectCategoryRequest) ParsedCategoryID() id.CategoryID {
	return r.parsedCategoryID
}

// ToggleSubcategoryRequest is the HTTP request body for
// PUT /onboarding/{supplierID}/selection/subcategory.
type ToggleSubcategoryRequest struct {
	Label string `json:"label"`
}

// Validate validates the request.
func (r *ToggleSubcategoryRequest) Validate() error {
	r.Label = strings.TrimSpace(r.Label)
	if r.Label == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "label is required")
	}
	if len(r.Label) > 64 {
		return dErrors.New(dErrors.CodeInvalidInput, "label must be at most 64 characters")
	}
	return nil
}
