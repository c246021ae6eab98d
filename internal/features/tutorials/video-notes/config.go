package videonotes

import "fmt"

// KeyPrefix is followed by the video id in the storage key of its notes.
const KeyPrefix = "video_notes_"

// CompletionThreshold is the watched fraction past which a video counts as completed.
const CompletionThreshold = 0.9

type Config struct {
	KeyPrefix string `mapstructure:"key_prefix"`
}

func DefaultConfig() *Config {
	return &Config{KeyPrefix: KeyPrefix}
}

func (c *Config) Validate() error {
	if c.KeyPrefix == "" {
		return fmt.Errorf("key prefix is required")
	}
	return nil
}
