package applicationform

import "fmt"

type Config struct {
	// UserID owns every submitted application.
	UserID string `mapstructure:"user_id"`
}

func DefaultConfig() *Config {
	return &Config{UserID: "user1"}
}

func (c *Config) Validate() error {
	if c.UserID == "" {
		return fmt.Errorf("user_id is required")
	}
	return nil
}
