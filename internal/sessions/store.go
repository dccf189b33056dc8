package sessions

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// InMemoryStore keeps sessions in a mutex-guarded map. It hands out copies
// so callers cannot mutate stored state behind the lock.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewInMemoryStore creates an empty session store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		sessions: make(map[string]*Session),
	}
}

// Save stores a session, replacing any existing session with the same ID.
func (s *InMemoryStore) Save(ctx context.Context, session *Session) error {
	if session == nil {
		return fmt.Errorf("session is nil")
	}
	if session.ID == "" {
		return fmt.Errorf("session ID is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *session
	s.sessions[session.ID] = &copied
	return nil
}

// Get retrieves a session by ID.
func (s *InMemoryStore) Get(ctx context.Context, id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session not found: %s", id)
	}

	copied := *session
	return &copied, nil
}

// List returns sessions matching the filter.
func (s *InMemoryStore) List(ctx context.Context, filter Filter) ([]*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*Session
	for _, session := range s.sessions {
		if filter.Status != "" && session.Status != filter.Status {
			continue
		}
		copied := *session
		result = append(result, &copied)
	}

	// Map iteration order is random; pagination needs a stable order.
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	if filter.Offset > 0 {
		if filter.Offset >= len(result) {
			return []*Session{}, nil
		}
		result = result[filter.Offset:]
	}

	if filter.Limit > 0 && filter.Limit < len(result) {
		result = result[:filter.Limit]
	}

	return result, nil
}

// Delete removes a session. Deleting a missing session is not an error.
func (s *InMemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}

// UpdateStatus updates a session's status and error message.
func (s *InMemoryStore) UpdateStatus(ctx context.Context, id string, status Status, errorMsg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return fmt.Errorf("session not found: %s", id)
	}

	session.Status = status
	session.Error = errorMsg
	return nil
}

var _ Store = (*InMemoryStore)(nil)
