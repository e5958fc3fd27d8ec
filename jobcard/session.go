package jobcard

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Sessions maps session IDs to their records. Each session owns exactly one
// Record; nothing is shared between sessions. The mutex only guards the map,
// callers serialize access to an individual record through the per-session
// lock returned by Get.
type Sessions struct {
	mu      sync.RWMutex
	records map[string]*Session
}

// Session pairs a record with its lock. HTTP handlers hold the lock for the
// duration of one mutation or render.
type Session struct {
	ID     string
	Mu     sync.Mutex
	Record *Record
}

func NewSessions() *Sessions {
	return &Sessions{records: make(map[string]*Session)}
}

// Create opens a new session around an empty record.
func (s *Sessions) Create(now time.Time) *Session {
	sess := &Session{ID: uuid.NewString(), Record: NewRecord(now)}
	s.mu.Lock()
	s.records[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// Get returns the session for id.
func (s *Sessions) Get(id string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.records[id]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown session %q", id)
	}
	return sess, nil
}

// Drop discards a session and its record.
func (s *Sessions) Drop(id string) {
	s.mu.Lock()
	delete(s.records, id)
	s.mu.Unlock()
}
