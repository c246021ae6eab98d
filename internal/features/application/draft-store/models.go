package draftstore

import (
	"time"

	"college-portal/internal/common/logger"
	"college-portal/internal/common/storage"
)

type StoreDependencies struct {
	Storage storage.Storage
	Logger  logger.Logger
	// Clock defaults to time.Now.
	Clock func() time.Time
}
