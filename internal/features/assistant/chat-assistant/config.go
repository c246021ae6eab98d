package chatassistant

import (
	"fmt"
	"time"
)

// Greeting opens every conversation and is restored by Clear.
const Greeting = "Hello! I'm here to help you with your college application. What questions do you have?"

// GreetingID is the message id of the greeting.
const GreetingID = "1"

type Config struct {
	// TypingDelay simulates the assistant composing a reply.
	TypingDelay time.Duration `mapstructure:"typing_delay"`
}

func DefaultConfig() *Config {
	return &Config{}
}

func (c *Config) Validate() error {
	if c.TypingDelay < 0 {
		return fmt.Errorf("typing delay must not be negative")
	}
	return nil
}
