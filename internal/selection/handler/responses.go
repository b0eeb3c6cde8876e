package handler

import "supplierhub/internal/selection"

// ConfirmResponse is the HTTP response body for a confirmed selection.
type ConfirmResponse struct {
	CategoryID    string   `json:"category_id"`
	CategoryName  string   `json:"category_name"`
	Subcategories []string `json:"subcategories"`
}

// FromSnapshot maps a confirmed snapshot to its response body.
func FromSnapshot(snapshot *selection.Snapshot) ConfirmResponse {
	return ConfirmResponse{
		CategoryID:    snapshot.CategoryID,
		CategoryName:  snapshot.CategoryName,
		Subcategories: snapshot.Subcategories,
	}
}
