package chatassistant

import "sync"

// Sessions keeps conversations by session id, creating them on first use.
type Sessions struct {
	deps   ChatDependencies
	config *Config

	mu    sync.Mutex
	convs map[string]*Conversation
}

func NewSessions(deps ChatDependencies, config *Config) (*Sessions, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Sessions{deps: deps, config: config, convs: make(map[string]*Conversation)}, nil
}

func (s *Sessions) Conversation(id string) *Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.convs[id]; ok {
		return c
	}
	// config was validated in NewSessions.
	c, _ := NewConversation(s.deps, s.config)
	s.convs[id] = c
	return c
}

// Clear resets a conversation to the greeting. Unknown ids are a no-op.
func (s *Sessions) Clear(id string) {
	s.mu.Lock()
	c, ok := s.convs[id]
	s.mu.Unlock()
	if ok {
		c.Clear()
	}
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.convs)
}
