package repository

import (
	"sync"
	"time"

	"github.com/DamiHettich/damis-reserve-app/internal/slots/selection"
)

type selectionEntry struct {
	sel      selection.Selection
	lastSeen time.Time
}

// SelectionStore keeps per-session selections in memory. Entries are
// created empty on first touch, replaced wholesale on every toggle, and
// evicted after the TTL so abandoned sessions do not accumulate. Nothing
// is ever persisted.
type SelectionStore struct {
	mu      sync.RWMutex
	entries map[string]*selectionEntry
	ttl     time.Duration
	stopCh  chan struct{}
}

func NewSelectionStore(ttl time.Duration) *SelectionStore {
	store := &SelectionStore{
		entries: make(map[string]*selectionEntry),
		ttl:     ttl,
		stopCh:  make(chan struct{}),
	}

	go store.cleanup()

	return store
}

func (s *SelectionStore) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.evictExpired()
		case <-s.stopCh:
			return
		}
	}
}

func (s *SelectionStore) evictExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, entry := range s.entries {
		if time.Since(entry.lastSeen) > s.ttl {
			delete(s.entries, id)
		}
	}
}

func (s *SelectionStore) Stop() {
	close(s.stopCh)
}

// Get returns the session's current selection, empty when the session is
// new or was evicted.
func (s *SelectionStore) Get(sessionID string) selection.Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[sessionID]
	if !ok || time.Since(entry.lastSeen) > s.ttl {
		return selection.New()
	}
	return entry.sel
}

// Put replaces the session's selection and refreshes its TTL.
func (s *SelectionStore) Put(sessionID string, sel selection.Selection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[sessionID] = &selectionEntry{sel: sel, lastSeen: time.Now()}
}

// Clear discards the session's selection entirely.
func (s *SelectionStore) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, sessionID)
}
