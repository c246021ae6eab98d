package videonotes

import (
	"time"

	"college-portal/internal/common/logger"
	"college-portal/internal/common/storage"
)

type NoteDependencies struct {
	Storage storage.Storage
	Logger  logger.Logger
	// Clock defaults to time.Now.
	Clock func() time.Time
	// NewID defaults to uuid.NewString.
	NewID func() string
}
