package videonotes

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"college-portal/internal/common/errors"
	"college-portal/internal/common/logger"
	"college-portal/internal/common/metrics"
	"college-portal/internal/models"
)

// NoteStore keeps the timestamped notes of each video under its own key.
type NoteStore struct {
	deps   NoteDependencies
	config *Config
	logger logger.Logger

	mu sync.Mutex
}

func NewNoteStore(deps NoteDependencies, config *Config) (*NoteStore, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, errors.NewInvalidRequestError(err.Error())
	}
	if deps.Storage == nil {
		return nil, errors.NewInvalidRequestError("note store requires a storage backend")
	}
	if deps.Logger == nil {
		deps.Logger = logger.NewNoOpLogger()
	}
	if deps.Clock == nil {
		deps.Clock = time.Now
	}
	if deps.NewID == nil {
		deps.NewID = uuid.NewString
	}
	return &NoteStore{
		deps:   deps,
		config: config,
		logger: deps.Logger.WithFields(map[string]interface{}{"component": "video-notes"}),
	}, nil
}

func (s *NoteStore) key(videoID string) string {
	return s.config.KeyPrefix + videoID
}

// List returns the notes of a video ordered by timestamp. Unreadable notes
// are logged and yield an empty list.
func (s *NoteStore) List(ctx context.Context, videoID string) []models.VideoNote {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx, videoID)
}

// Add records content at timestamp seconds into the video.
func (s *NoteStore) Add(ctx context.Context, videoID string, timestamp float64, content string) (models.VideoNote, error) {
	content = strings.TrimSpace(content)
	if err := checkNote(videoID, content); err != nil {
		return models.VideoNote{}, err
	}
	if timestamp < 0 {
		return models.VideoNote{}, errors.NewInvalidNoteError("timestamp must not be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	note := models.VideoNote{
		ID:        s.deps.NewID(),
		VideoID:   videoID,
		Timestamp: timestamp,
		Content:   content,
		CreatedAt: s.deps.Clock().UTC(),
	}
	notes := append(s.load(ctx, videoID), note)
	sort.SliceStable(notes, func(i, j int) bool { return notes[i].Timestamp < notes[j].Timestamp })

	if err := s.save(ctx, videoID, notes, "add"); err != nil {
		return models.VideoNote{}, err
	}
	return note, nil
}

// Update replaces the content of a note, keeping its timestamp.
func (s *NoteStore) Update(ctx context.Context, videoID, noteID, content string) (models.VideoNote, error) {
	content = strings.TrimSpace(content)
	if err := checkNote(videoID, content); err != nil {
		return models.VideoNote{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	notes := s.load(ctx, videoID)
	i := indexOf(notes, noteID)
	if i < 0 {
		return models.VideoNote{}, errors.NewNoteNotFoundError(videoID, noteID)
	}
	notes[i].Content = content

	if err := s.save(ctx, videoID, notes, "update"); err != nil {
		return models.VideoNote{}, err
	}
	return notes[i], nil
}

func (s *NoteStore) Delete(ctx context.Context, videoID, noteID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes := s.load(ctx, videoID)
	i := indexOf(notes, noteID)
	if i < 0 {
		return errors.NewNoteNotFoundError(videoID, noteID)
	}
	notes = append(notes[:i], notes[i+1:]...)
	return s.save(ctx, videoID, notes, "delete")
}

// VideoIDs lists the videos that have notes stored.
func (s *NoteStore) VideoIDs(ctx context.Context) ([]string, error) {
	keys, err := s.deps.Storage.Keys(ctx, s.config.KeyPrefix)
	if err != nil {
		return nil, errors.NewStorageReadFailedError(s.config.KeyPrefix+"*", err)
	}
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, s.config.KeyPrefix))
	}
	return ids, nil
}

// ==========================
// Persistence
// ==========================

func (s *NoteStore) load(ctx context.Context, videoID string) []models.VideoNote {
	notes := []models.VideoNote{}
	raw, found, err := s.deps.Storage.GetItem(ctx, s.key(videoID))
	if err != nil {
		s.logger.Error("failed to load notes", map[string]interface{}{
			"videoId": videoID,
			"error":   err.Error(),
		})
		return notes
	}
	if !found || raw == "" {
		return notes
	}
	if err := json.Unmarshal([]byte(raw), &notes); err != nil {
		s.logger.Error("failed to decode notes", map[string]interface{}{
			"videoId": videoID,
			"error":   err.Error(),
		})
		return []models.VideoNote{}
	}
	return notes
}

func (s *NoteStore) save(ctx context.Context, videoID string, notes []models.VideoNote, op string) error {
	body, err := json.Marshal(notes)
	if err == nil {
		err = s.deps.Storage.SetItem(ctx, s.key(videoID), string(body))
	}
	if err != nil {
		s.logger.Error("failed to save notes", map[string]interface{}{
			"videoId":   videoID,
			"operation": op,
			"error":     err.Error(),
		})
		return errors.NewStorageWriteFailedError(s.key(videoID), err)
	}
	metrics.VideoNotesChanged.WithLabelValues(op).Inc()
	return nil
}

func checkNote(videoID, content string) error {
	if videoID == "" {
		return errors.NewInvalidRequestError("video id is required")
	}
	if content == "" {
		return errors.NewInvalidNoteError("note content must not be blank")
	}
	return nil
}

func indexOf(notes []models.VideoNote, id string) int {
	for i, n := range notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}
