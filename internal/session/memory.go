package session

import (
	"context"
	"sync"
	"time"

	"github.com/lebohangkhonkhe/Savezar-taxi/internal/fleet"
)

// MemoryStore holds sessions in process memory. Expired entries are
// reaped lazily on Get and swept opportunistically on Put.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Session)}
}

func (m *MemoryStore) Put(ctx context.Context, s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for id, existing := range m.sessions {
		if existing.Expired(now) {
			delete(m.sessions, id)
		}
	}

	m.sessions[s.ID] = s
	return nil
}

func (m *MemoryStore) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok {
		return nil, fleet.ErrNotFound
	}
	if s.Expired(time.Now()) {
		m.mu.Lock()
		delete(m.sessions, id)
		m.mu.Unlock()
		return nil, fleet.ErrNotFound
	}
	return &s, nil
}

func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}
