package draftstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"college-portal/internal/common/errors"
	"college-portal/internal/common/logger"
	"college-portal/internal/common/metrics"
	"college-portal/internal/common/storage"
	formvalidation "college-portal/internal/features/application/form-validation"
	"college-portal/internal/models"
)

// Store persists drafts under one storage key. Every write rewrites the
// whole mapping.
type Store struct {
	config  *Config
	storage storage.Storage
	logger  logger.Logger
	now     func() time.Time

	// mu serializes read-modify-write cycles within this process. Other
	// processes sharing the backend can still interleave.
	mu sync.Mutex

	saving atomic.Bool

	errMu   sync.Mutex
	lastErr error

	idMu   sync.Mutex
	lastMs int64
}

func NewStore(deps StoreDependencies, config *Config) (*Store, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration for draft-store: %w", err)
	}
	if deps.Storage == nil {
		return nil, fmt.Errorf("draft-store requires a storage backend")
	}

	log := deps.Logger
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}

	return &Store{
		config:  config,
		storage: deps.Storage,
		logger:  log.WithFields(map[string]interface{}{"component": "draft-store", "key": config.Key}),
		now:     clock,
	}, nil
}

// Saving reports whether a SaveDraft call is in flight.
func (s *Store) Saving() bool {
	return s.saving.Load()
}

// LastError is the most recent SaveDraft or DeleteDraft failure. Each
// SaveDraft and DeleteDraft clears it on entry.
func (s *Store) LastError() error {
	s.errMu.Lock()
	defer s.errMu.Unlock()
	return s.lastErr
}

func (s *Store) setLastError(err error) {
	s.errMu.Lock()
	s.lastErr = err
	s.errMu.Unlock()
}

// SaveDraft writes draft and returns its id. The id is id if given, else
// draft.ID, else the configured default, else a fresh "draft_<unix-ms>". The
// stored copy has status draft, a fresh updatedAt and a recomputed completion
// percentage. A read, decode or write failure aborts the save.
func (s *Store) SaveDraft(ctx context.Context, draft models.Application, id string) (string, error) {
	s.saving.Store(true)
	defer s.saving.Store(false)
	s.setLastError(nil)

	start := time.Now()
	defer func() { metrics.DraftSaveDuration.Observe(time.Since(start).Seconds()) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	drafts, err := s.readAll(ctx)
	if err != nil {
		return "", s.fail("save", err)
	}

	resolved := s.resolveID(id, draft.ID, drafts)
	now := s.now().UTC()

	stored := draft.Clone()
	stored.ID = resolved
	stored.Status = models.StatusDraft
	stored.UpdatedAt = now
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
	}
	stored.SubmittedAt = nil
	stored.CompletionPercentage = formvalidation.CalculateProgress(stored)

	raw, err := json.Marshal(stored)
	if err != nil {
		return "", s.fail("save", errors.NewStorageWriteFailedError(s.config.Key, err))
	}
	drafts[resolved] = raw

	if err := s.writeAll(ctx, drafts); err != nil {
		return "", s.fail("save", err)
	}

	metrics.DraftsSaved.Inc()
	s.logger.Info("draft saved", map[string]interface{}{
		"draftId":              resolved,
		"completionPercentage": stored.CompletionPercentage,
		"drafts":               len(drafts),
	})
	return resolved, nil
}

// LoadDraft returns the draft stored under id. Unreadable storage counts as
// not found.
func (s *Store) LoadDraft(ctx context.Context, id string) (models.Application, bool) {
	s.mu.Lock()
	drafts, err := s.readAll(ctx)
	s.mu.Unlock()
	if err != nil {
		s.logger.Warn("treating unreadable drafts as empty", map[string]interface{}{"error": err})
		return models.Application{}, false
	}

	raw, ok := drafts[id]
	if !ok {
		return models.Application{}, false
	}
	var app models.Application
	if err := json.Unmarshal(raw, &app); err != nil {
		s.logger.Warn("skipping undecodable draft", map[string]interface{}{"draftId": id, "error": err})
		return models.Application{}, false
	}
	return app, true
}

// LoadAllDrafts returns every stored draft sorted by id. Unreadable storage
// yields an empty slice; an undecodable entry is skipped.
func (s *Store) LoadAllDrafts(ctx context.Context) []models.Application {
	s.mu.Lock()
	drafts, err := s.readAll(ctx)
	s.mu.Unlock()
	if err != nil {
		s.logger.Warn("treating unreadable drafts as empty", map[string]interface{}{"error": err})
		return []models.Application{}
	}

	ids := make([]string, 0, len(drafts))
	for id := range drafts {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]models.Application, 0, len(ids))
	for _, id := range ids {
		var app models.Application
		if err := json.Unmarshal(drafts[id], &app); err != nil {
			s.logger.Warn("skipping undecodable draft", map[string]interface{}{"draftId": id, "error": err})
			continue
		}
		out = append(out, app)
	}
	return out
}

// DeleteDraft removes id. A missing id is not an error. Failures are not
// returned; they are recorded in LastError, which is cleared at the start of
// each delete.
func (s *Store) DeleteDraft(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setLastError(nil)

	drafts, err := s.readAll(ctx)
	if err != nil {
		_ = s.fail("delete", err)
		return
	}
	if _, ok := drafts[id]; !ok {
		return
	}
	delete(drafts, id)

	if err := s.writeAll(ctx, drafts); err != nil {
		_ = s.fail("delete", err)
		return
	}

	s.logger.Info("draft deleted", map[string]interface{}{"draftId": id})
}

// ==========================
// Internal helpers
// ==========================

func (s *Store) readAll(ctx context.Context) (map[string]json.RawMessage, error) {
	blob, found, err := s.storage.GetItem(ctx, s.config.Key)
	if err != nil {
		return nil, errors.NewStorageReadFailedError(s.config.Key, err)
	}
	drafts := make(map[string]json.RawMessage)
	if !found || blob == "" {
		return drafts, nil
	}
	if err := json.Unmarshal([]byte(blob), &drafts); err != nil {
		return nil, errors.NewStorageReadFailedError(s.config.Key, err)
	}
	return drafts, nil
}

func (s *Store) writeAll(ctx context.Context, drafts map[string]json.RawMessage) error {
	blob, err := json.Marshal(drafts)
	if err != nil {
		return errors.NewStorageWriteFailedError(s.config.Key, err)
	}
	if err := s.storage.SetItem(ctx, s.config.Key, string(blob)); err != nil {
		return errors.NewStorageWriteFailedError(s.config.Key, err)
	}
	return nil
}

func (s *Store) fail(op string, err error) error {
	stdErr := errors.AsStandardError(err)
	metrics.DraftOperationsFailed.WithLabelValues(op, string(stdErr.Code)).Inc()
	s.logger.Error("draft "+op+" failed", map[string]interface{}{
		"errorCode": string(stdErr.Code),
		"error":     err,
	})
	s.setLastError(err)
	return err
}

func (s *Store) resolveID(explicit, existing string, drafts map[string]json.RawMessage) string {
	switch {
	case explicit != "":
		return explicit
	case existing != "":
		return existing
	case s.config.DefaultDraftID != "":
		return s.config.DefaultDraftID
	}
	return s.generateID(drafts)
}

// generateID returns draft_<unix-ms>, bumped past the last id this store
// handed out and past any id already in drafts.
func (s *Store) generateID(drafts map[string]json.RawMessage) string {
	s.idMu.Lock()
	defer s.idMu.Unlock()

	ms := s.now().UnixMilli()
	if ms <= s.lastMs {
		ms = s.lastMs + 1
	}
	for {
		id := fmt.Sprintf("%s%d", IDPrefix, ms)
		if _, taken := drafts[id]; !taken {
			s.lastMs = ms
			return id
		}
		ms++
	}
}
