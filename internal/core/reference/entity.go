package reference

import "kisankalyan.app/internal/ports"

// CategoryAll selects every technique category.
const CategoryAll = "all"

// TechniqueCatalog maps a category name to its items.
type TechniqueCatalog map[string][]ports.ReferenceItem

// SearchResults holds the items of each collection that matched a query.
type SearchResults struct {
	Techniques []ports.ReferenceItem `json:"techniques"`
	Schemes    []ports.ReferenceItem `json:"schemes"`
	Laws       []ports.ReferenceItem `json:"laws"`
}
