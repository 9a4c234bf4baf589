package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"capm-lab/internal/model"
)

// DefaultTTL is how long an idle session survives without a write.
const DefaultTTL = 1 * time.Hour

// cleanupInterval is how often the sweep goroutine runs. Expiry is
// also checked lazily on Get, so the sweep only bounds memory growth.
const cleanupInterval = 5 * time.Minute

type memoryEntry struct {
	session   Session
	expiresAt time.Time
}

// MemoryStore keeps sessions in a mutex-guarded map with idle-TTL
// eviction. Expiry counts from the last write, not the last read.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]*memoryEntry
	ttl     time.Duration

	stop     chan struct{}
	stopOnce sync.Once
}

// NewMemoryStore creates a store whose sessions expire after ttl of
// write inactivity. A non-positive ttl falls back to DefaultTTL.
// Callers must Stop the store to release the sweep goroutine.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	s := &MemoryStore{
		entries: make(map[string]*memoryEntry),
		ttl:     ttl,
		stop:    make(chan struct{}),
	}
	go s.cleanup()
	return s
}

// Create opens a session seeded with params.
func (s *MemoryStore) Create(params model.Params, preset string) (Session, error) {
	now := time.Now().UTC()
	sess := Session{
		ID:        uuid.NewString(),
		Params:    params,
		Preset:    preset,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[sess.ID] = &memoryEntry{session: sess, expiresAt: now.Add(s.ttl)}
	return sess, nil
}

// Get returns a live session.
func (s *MemoryStore) Get(id string) (Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, exists := s.entries[id]
	if !exists || time.Now().UTC().After(entry.expiresAt) {
		return Session{}, ErrNotFound
	}
	return entry.session, nil
}

// Update overlays a partial parameter change. The preset marker is
// cleared because the values no longer match any preset.
func (s *MemoryStore) Update(id string, patch ParamsPatch) (Session, error) {
	return s.mutate(id, func(sess *Session) {
		sess.Params = patch.Apply(sess.Params)
		sess.Preset = ""
	})
}

// Apply overwrites all three parameters at once.
func (s *MemoryStore) Apply(id string, params model.Params, preset string) (Session, error) {
	return s.mutate(id, func(sess *Session) {
		sess.Params = params
		sess.Preset = preset
	})
}

// Delete removes a session.
func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, exists := s.entries[id]
	if !exists || time.Now().UTC().After(entry.expiresAt) {
		return ErrNotFound
	}
	delete(s.entries, id)
	return nil
}

// Len reports how many live sessions the store holds.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := time.Now().UTC()
	n := 0
	for _, entry := range s.entries {
		if !now.After(entry.expiresAt) {
			n++
		}
	}
	return n
}

// Stop halts the sweep goroutine. Safe to call more than once.
func (s *MemoryStore) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *MemoryStore) mutate(id string, fn func(*Session)) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	entry, exists := s.entries[id]
	if !exists || now.After(entry.expiresAt) {
		return Session{}, ErrNotFound
	}

	fn(&entry.session)
	entry.session.UpdatedAt = now
	entry.expiresAt = now.Add(s.ttl)
	return entry.session, nil
}

// cleanup periodically removes expired entries.
func (s *MemoryStore) cleanup() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			now := time.Now().UTC()
			for id, entry := range s.entries {
				if now.After(entry.expiresAt) {
					delete(s.entries, id)
				}
			}
			s.mu.Unlock()
		}
	}
}
