package repositories

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/CodedGrimoire/ChartGenie/internal/models"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionStore is the narrow keyed interface behind which all session
// state lives, so the in-memory store can be swapped for a durable one
// without touching generation logic. Concurrent writes to the same id are
// last-write-wins; the usage model is one user per session.
type SessionStore interface {
	Get(ctx context.Context, id string) (*models.ConversationSession, error)
	Put(ctx context.Context, session *models.ConversationSession) error
	Delete(ctx context.Context, id string) error
	// Sweep evicts sessions idle longer than maxIdle and reports how many
	// were removed.
	Sweep(ctx context.Context, maxIdle time.Duration) (int, error)
}

// MemorySessionStore keeps sessions in a process-local map.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.ConversationSession
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]*models.ConversationSession),
	}
}

func (s *MemorySessionStore) Get(ctx context.Context, id string) (*models.ConversationSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	// Copies cross the store boundary so callers never share memory with
	// concurrent requests.
	return session.Clone(), nil
}

func (s *MemorySessionStore) Put(ctx context.Context, session *models.ConversationSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = session.Clone()
	return nil
}

func (s *MemorySessionStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}

func (s *MemorySessionStore) Sweep(ctx context.Context, maxIdle time.Duration) (int, error) {
	cutoff := time.Now().Add(-maxIdle)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, session := range s.sessions {
		if session.UpdatedAt.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed, nil
}
