// pkg/catalog/catalog.go
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// LoadCatalog reads a catalog file. Entries must have unique, non-empty ids
// within their list.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return &c, nil
}

// LoadOrDefault loads path, or returns the built-in catalog when path is empty.
func LoadOrDefault(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadCatalog(path)
}

// Validate checks that video and document ids are present and unique.
func (c *Catalog) Validate() error {
	seen := map[string]bool{}
	for _, v := range c.Videos {
		if v.ID == "" || seen[v.ID] {
			return fmt.Errorf("video id %q is empty or duplicated", v.ID)
		}
		seen[v.ID] = true
	}
	seen = map[string]bool{}
	for _, d := range c.Documents {
		if d.ID == "" || seen[d.ID] {
			return fmt.Errorf("document id %q is empty or duplicated", d.ID)
		}
		seen[d.ID] = true
	}
	return nil
}

// SaveCatalog validates c and writes it to path as indented JSON, creating
// the directory when needed.
func SaveCatalog(c *Catalog, path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write catalog file: %w", err)
	}
	return nil
}
