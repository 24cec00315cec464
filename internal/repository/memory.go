package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/Dan9191/finplan-service/internal/models"
)

type memItem struct {
	data    []byte
	expires time.Time
}

func (it memItem) expired(now time.Time) bool {
	return !it.expires.IsZero() && now.After(it.expires)
}

// MemoryStore keeps sessions in process memory. Values are stored encoded so
// callers never share state with the store.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]memItem
	now   func() time.Time
}

// NewMemoryStore initializes an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: map[string]memItem{}, now: time.Now}
}

// Get returns the session with the given id
func (m *MemoryStore) Get(ctx context.Context, id string) (*models.Session, error) {
	m.mu.RLock()
	it, ok := m.items[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	if it.expired(m.now()) {
		m.mu.Lock()
		// a Save may have replaced the entry since the read lock was released
		if cur, ok := m.items[id]; ok && cur.expired(m.now()) {
			delete(m.items, id)
		}
		m.mu.Unlock()
		return nil, ErrNotFound
	}

	s := &models.Session{}
	if err := json.Unmarshal(it.data, s); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return s, nil
}

// Save creates or replaces a session
func (m *MemoryStore) Save(ctx context.Context, s *models.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	m.mu.Lock()
	m.items[s.ID] = memItem{data: data, expires: s.ExpiresAt}
	m.mu.Unlock()
	return nil
}

// Delete removes a session; deleting a missing session is not an error
func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	delete(m.items, id)
	m.mu.Unlock()
	return nil
}

// DeleteExpired drops every session whose expiry is before now
func (m *MemoryStore) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, it := range m.items {
		if it.expired(now) {
			delete(m.items, id)
			n++
		}
	}
	return n, nil
}

// Len reports how many sessions are held, expired or not
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
