package chatassistant

import (
	"context"
	"time"

	"college-portal/internal/common/logger"
)

// Responder produces the assistant's reply to a user message.
type Responder interface {
	Respond(ctx context.Context, text string) (string, error)
}

type ChatDependencies struct {
	// Responder defaults to ScriptedResponder.
	Responder Responder
	Logger    logger.Logger
	// Clock defaults to time.Now.
	Clock func() time.Time
	// NewID defaults to uuid.NewString.
	NewID func() string
}
