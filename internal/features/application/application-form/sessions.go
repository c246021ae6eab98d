package applicationform

import (
	"sync"

	"college-portal/internal/common/errors"
	"college-portal/internal/models"
)

// Sessions keeps the open forms of a running server by form id.
type Sessions struct {
	deps   FormDependencies
	config *Config

	mu    sync.RWMutex
	forms map[string]*Form
}

func NewSessions(deps FormDependencies, config *Config) *Sessions {
	return &Sessions{deps: deps, config: config, forms: make(map[string]*Form)}
}

// Open starts a form, optionally seeded from initial, and registers it.
func (s *Sessions) Open(initial *models.Application) (*Form, error) {
	f, err := NewForm(s.deps, s.config, initial)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.forms[f.ID()] = f
	s.mu.Unlock()
	return f, nil
}

func (s *Sessions) Get(id string) (*Form, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.forms[id]
	if !ok {
		return nil, errors.NewFormNotFoundError(id)
	}
	return f, nil
}

func (s *Sessions) Close(id string) {
	s.mu.Lock()
	delete(s.forms, id)
	s.mu.Unlock()
}

func (s *Sessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.forms)
}
