package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"gpa-tracker/app/catalog"
)

// Store keeps every live session in memory. Nothing survives a restart.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	catalog  *catalog.Catalog
	ttl      time.Duration
	now      func() time.Time
}

// NewStore creates an empty store whose sessions are seeded from c and expire
// after ttl without use. A zero ttl disables expiry.
func NewStore(c *catalog.Catalog, ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		catalog:  c,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Acquire returns the session for id, creating a fresh one when id is empty or
// unknown. The boolean reports whether a new session was created.
func (s *Store) Acquire(id string) (*Session, bool) {
	now := s.now()

	if id != "" {
		s.mu.RLock()
		sess, ok := s.sessions[id]
		s.mu.RUnlock()
		if ok {
			sess.touch(now)
			return sess, false
		}
	}

	sess := newSession(uuid.NewString(), s.catalog, now)
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess, true
}

// Get returns an existing session without creating one.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep drops sessions idle for longer than the TTL and returns how many went.
func (s *Store) Sweep() int {
	if s.ttl <= 0 {
		return 0
	}
	cutoff := s.now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, sess := range s.sessions {
		if sess.lastSeenBefore(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// TTL returns how long an idle session lives.
func (s *Store) TTL() time.Duration {
	return s.ttl
}
