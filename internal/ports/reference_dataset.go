package ports

import "context"

// ReferenceItem is one free-form reference entry (a crop, a scheme, a law).
type ReferenceItem map[string]interface{}

// TechniqueCategory groups technique items under a category name.
type TechniqueCategory struct {
	Name  string
	Items []ReferenceItem
}

// ReferenceDataset is a read-only source of farming reference content.
// Categories are returned in their canonical order.
type ReferenceDataset interface {
	TechniqueCategories(ctx context.Context) ([]TechniqueCategory, error)
	Schemes(ctx context.Context) ([]ReferenceItem, error)
	Laws(ctx context.Context) ([]ReferenceItem, error)
}
