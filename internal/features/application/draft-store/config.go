package draftstore

import "fmt"

// StorageKey is the single key holding every draft as one JSON object.
const StorageKey = "college_application_drafts"

// IDPrefix starts every generated draft id.
const IDPrefix = "draft_"

type Config struct {
	// Key overrides StorageKey, mainly for tests sharing a backend.
	Key string `mapstructure:"key"`
	// DefaultDraftID is used when neither the caller nor the draft names an id.
	// It ranks below the draft's own id so a resumed draft keeps its id.
	DefaultDraftID string `mapstructure:"default_draft_id"`
}

func DefaultConfig() *Config {
	return &Config{Key: StorageKey}
}

func (c *Config) Validate() error {
	if c.Key == "" {
		return fmt.Errorf("key is required")
	}
	return nil
}
