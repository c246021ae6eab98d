package chatassistant

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"college-portal/internal/common/errors"
	"college-portal/internal/common/logger"
	"college-portal/internal/models"
)

// Conversation is one chat thread. It always starts with the greeting.
type Conversation struct {
	config    *Config
	responder Responder
	logger    logger.Logger
	clock     func() time.Time
	newID     func() string

	mu       sync.RWMutex
	messages []models.ChatMessage
	typing   bool
}

func NewConversation(deps ChatDependencies, config *Config) (*Conversation, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, errors.NewInvalidRequestError(err.Error())
	}
	c := &Conversation{
		config:    config,
		responder: deps.Responder,
		logger:    deps.Logger,
		clock:     deps.Clock,
		newID:     deps.NewID,
	}
	if c.responder == nil {
		c.responder = ScriptedResponder{}
	}
	if c.logger == nil {
		c.logger = logger.NewNoOpLogger()
	}
	c.logger = c.logger.WithFields(map[string]interface{}{"component": "chat-assistant"})
	if c.clock == nil {
		c.clock = time.Now
	}
	if c.newID == nil {
		c.newID = uuid.NewString
	}
	c.messages = []models.ChatMessage{c.greeting()}
	return c, nil
}

// Send appends the user's message, waits out the typing delay and appends
// the reply. Blank messages are rejected. The user's message stays in the
// thread even if no reply is produced.
func (c *Conversation) Send(ctx context.Context, text string) (models.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return models.ChatMessage{}, errors.NewInvalidRequestError("message must not be blank")
	}

	c.mu.Lock()
	c.messages = append(c.messages, models.ChatMessage{
		ID:        c.newID(),
		Content:   text,
		IsUser:    true,
		Timestamp: c.clock(),
	})
	c.typing = true
	c.mu.Unlock()

	reply, err := c.compose(ctx, text)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.typing = false
	if err != nil {
		c.logger.Warn("assistant reply failed", map[string]interface{}{"error": err.Error()})
		return models.ChatMessage{}, errors.NewChatFailedError(err)
	}
	msg := models.ChatMessage{
		ID:        c.newID(),
		Content:   reply,
		IsUser:    false,
		Timestamp: c.clock(),
	}
	c.messages = append(c.messages, msg)
	return msg, nil
}

func (c *Conversation) compose(ctx context.Context, text string) (string, error) {
	if d := c.config.TypingDelay; d > 0 {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
		}
	}
	return c.responder.Respond(ctx, text)
}

// Clear drops everything but a fresh greeting.
func (c *Conversation) Clear() {
	c.mu.Lock()
	c.messages = []models.ChatMessage{c.greeting()}
	c.mu.Unlock()
}

func (c *Conversation) Messages() []models.ChatMessage {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.ChatMessage(nil), c.messages...)
}

// Typing reports whether a reply is being composed.
func (c *Conversation) Typing() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.typing
}

func (c *Conversation) greeting() models.ChatMessage {
	return models.ChatMessage{
		ID:        GreetingID,
		Content:   Greeting,
		IsUser:    false,
		Timestamp: c.clock(),
	}
}
