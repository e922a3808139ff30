package reference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"kisankalyan.app/internal/ports"
	"kisankalyan.app/pkg/errors"
	"kisankalyan.app/pkg/validation"
)

type UseCase struct {
	dataset ports.ReferenceDataset
	logger  ports.Logger
}

type UseCaseDependencies struct {
	Dataset ports.ReferenceDataset
	Logger  ports.Logger
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Dataset == nil {
		return nil, errors.NewValidationError("reference dataset is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{
		dataset: deps.Dataset,
		logger:  deps.Logger,
	}, nil
}

// GetTechniques returns every category for "all" (or an empty category),
// otherwise only the named one. An unknown category is a NotFoundError.
func (uc *UseCase) GetTechniques(ctx context.Context, category string) (TechniqueCatalog, error) {
	categories, err := uc.dataset.TechniqueCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("load technique categories: %w", err)
	}

	category = strings.TrimSpace(category)
	if category == "" || category == CategoryAll {
		catalog := make(TechniqueCatalog, len(categories))
		for _, c := range categories {
			catalog[c.Name] = c.Items
		}
		return catalog, nil
	}

	for _, c := range categories {
		if c.Name == category {
			return TechniqueCatalog{c.Name: c.Items}, nil
		}
	}

	uc.logger.Debug("Technique category not found", ports.F("category", category))
	return nil, errors.NewNotFoundError(fmt.Sprintf("Category '%s' not found", category))
}

func (uc *UseCase) GetSchemes(ctx context.Context) ([]ports.ReferenceItem, error) {
	schemes, err := uc.dataset.Schemes(ctx)
	if err != nil {
		return nil, fmt.Errorf("load schemes: %w", err)
	}
	return schemes, nil
}

func (uc *UseCase) GetLaws(ctx context.Context) ([]ports.ReferenceItem, error) {
	laws, err := uc.dataset.Laws(ctx)
	if err != nil {
		return nil, fmt.Errorf("load laws: %w", err)
	}
	return laws, nil
}

// Search matches the lower-cased query against the lower-cased JSON encoding
// of every item, keys included.
func (uc *UseCase) Search(ctx context.Context, query string) (*SearchResults, error) {
	if !validation.IsNotEmpty(query) {
		return nil, errors.NewValidationError("search query is required")
	}
	needle := strings.ToLower(query)

	categories, err := uc.dataset.TechniqueCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("load technique categories: %w", err)
	}
	schemes, err := uc.dataset.Schemes(ctx)
	if err != nil {
		return nil, fmt.Errorf("load schemes: %w", err)
	}
	laws, err := uc.dataset.Laws(ctx)
	if err != nil {
		return nil, fmt.Errorf("load laws: %w", err)
	}

	results := &SearchResults{
		Techniques: []ports.ReferenceItem{},
		Schemes:    []ports.ReferenceItem{},
		Laws:       []ports.ReferenceItem{},
	}
	for _, c := range categories {
		results.Techniques = appendMatches(results.Techniques, c.Items, needle)
	}
	results.Schemes = appendMatches(results.Schemes, schemes, needle)
	results.Laws = appendMatches(results.Laws, laws, needle)

	uc.logger.Debug("Reference search completed",
		ports.F("query", query),
		ports.F("techniques", len(results.Techniques)),
		ports.F("schemes", len(results.Schemes)),
		ports.F("laws", len(results.Laws)))
	return results, nil
}

func appendMatches(dst, items []ports.ReferenceItem, needle string) []ports.ReferenceItem {
	for _, item := range items {
		if strings.Contains(strings.ToLower(encodeItem(item)), needle) {
			dst = append(dst, item)
		}
	}
	return dst
}

func encodeItem(item ports.ReferenceItem) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(item); err != nil {
		return ""
	}
	return buf.String()
}
