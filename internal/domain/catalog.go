package domain

import (
	_ "embed"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Catalog holds the enumerated categories and region names. Order matters:
// categories are ingested in list order and the state tagger prefers earlier
// states.
type Catalog struct {
	Categories []string `yaml:"categories"`
	States     []string `yaml:"states"`
}

// LoadCatalog parses the embedded catalog.
func LoadCatalog() (*Catalog, error) {
	return ParseCatalog(catalogYAML)
}

func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(c.Categories) == 0 {
		return nil, fmt.Errorf("catalog has no categories")
	}
	if len(c.States) == 0 {
		return nil, fmt.Errorf("catalog has no states")
	}
	return &c, nil
}

// MustLoadCatalog panics if the embedded catalog is broken.
func MustLoadCatalog() *Catalog {
	c, err := LoadCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) HasCategory(category string) bool {
	return slices.Contains(c.Categories, category)
}
