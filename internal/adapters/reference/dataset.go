// Package reference serves the static farming reference corpus embedded in
// the binary.
package reference

import (
	"context"
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
	"kisankalyan.app/internal/ports"
	"kisankalyan.app/pkg/errors"
)

//go:embed data/farming_reference.yaml
var embeddedCorpus []byte

// categoryOrder is the order technique categories are listed in.
var categoryOrder = []string{"crops", "techniques", "soil_management"}

type corpus struct {
	Techniques map[string][]ports.ReferenceItem `yaml:"techniques"`
	Schemes    []ports.ReferenceItem            `yaml:"schemes"`
	Laws       []ports.ReferenceItem            `yaml:"laws"`
}

// YAMLDatasetAdapter implements ReferenceDataset over a YAML document.
type YAMLDatasetAdapter struct {
	categories []ports.TechniqueCategory
	schemes    []ports.ReferenceItem
	laws       []ports.ReferenceItem
}

// NewEmbeddedDataset loads the corpus compiled into the binary.
func NewEmbeddedDataset() (*YAMLDatasetAdapter, error) {
	return NewYAMLDataset(embeddedCorpus)
}

// NewYAMLDataset parses a corpus document. Categories missing from the
// canonical order are appended alphabetically after it.
func NewYAMLDataset(data []byte) (*YAMLDatasetAdapter, error) {
	var doc corpus
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.NewConfigurationError("failed to parse reference corpus", err)
	}
	if len(doc.Techniques) == 0 {
		return nil, errors.NewConfigurationError("reference corpus has no technique categories", nil)
	}

	for _, items := range doc.Techniques {
		if err := checkItems(items); err != nil {
			return nil, err
		}
	}
	if err := checkItems(doc.Schemes); err != nil {
		return nil, err
	}
	if err := checkItems(doc.Laws); err != nil {
		return nil, err
	}

	return &YAMLDatasetAdapter{
		categories: orderCategories(doc.Techniques),
		schemes:    nonNil(doc.Schemes),
		laws:       nonNil(doc.Laws),
	}, nil
}

func checkItems(items []ports.ReferenceItem) error {
	for i, item := range items {
		if _, ok := item["name"].(string); !ok {
			return errors.NewConfigurationError(fmt.Sprintf("reference item %d has no name", i), nil)
		}
	}
	return nil
}

func orderCategories(techniques map[string][]ports.ReferenceItem) []ports.TechniqueCategory {
	categories := make([]ports.TechniqueCategory, 0, len(techniques))
	seen := make(map[string]bool, len(techniques))
	for _, name := range categoryOrder {
		items, ok := techniques[name]
		if !ok {
			continue
		}
		categories = append(categories, ports.TechniqueCategory{Name: name, Items: nonNil(items)})
		seen[name] = true
	}

	var extra []string
	for name := range techniques {
		if !seen[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		categories = append(categories, ports.TechniqueCategory{Name: name, Items: nonNil(techniques[name])})
	}
	return categories
}

func nonNil(items []ports.ReferenceItem) []ports.ReferenceItem {
	if items == nil {
		return []ports.ReferenceItem{}
	}
	return items
}

// TechniqueCategories returns every technique category in canonical order.
func (d *YAMLDatasetAdapter) TechniqueCategories(ctx context.Context) ([]ports.TechniqueCategory, error) {
	out := make([]ports.TechniqueCategory, len(d.categories))
	copy(out, d.categories)
	return out, nil
}

func (d *YAMLDatasetAdapter) Schemes(ctx context.Context) ([]ports.ReferenceItem, error) {
	return cloneItems(d.schemes), nil
}

func (d *YAMLDatasetAdapter) Laws(ctx context.Context) ([]ports.ReferenceItem, error) {
	return cloneItems(d.laws), nil
}

func cloneItems(items []ports.ReferenceItem) []ports.ReferenceItem {
	out := make([]ports.ReferenceItem, len(items))
	copy(out, items)
	return out
}
