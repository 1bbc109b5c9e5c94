package sessionstore

import (
	"context"
	"sync"
	"time"

	"github.com/yanqian/omx-assistant/internal/domain/conversation"
)

type sessionRecord struct {
	session   conversation.Session
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory until their TTL passes.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]sessionRecord
	now      func() time.Time
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]sessionRecord),
		now:      time.Now,
	}
}

// Get implements conversation.SessionStore.
func (s *MemoryStore) Get(_ context.Context, id string) (conversation.Session, bool, error) {
	s.mu.RLock()
	record, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return conversation.Session{}, false, nil
	}
	if s.expired(record.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return conversation.Session{}, false, nil
	}
	return cloneSession(record.session), true, nil
}

// Save stores the session and restarts its TTL. Expired sessions are pruned on the way.
func (s *MemoryStore) Save(_ context.Context, session conversation.Session, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, record := range s.sessions {
		if s.expired(record.expiresAt) {
			delete(s.sessions, id)
		}
	}
	exp := time.Time{}
	if ttl > 0 {
		exp = s.now().Add(ttl)
	}
	s.sessions[session.ID] = sessionRecord{session: cloneSession(session), expiresAt: exp}
	return nil
}

// Delete implements conversation.SessionStore.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) expired(ts time.Time) bool {
	if ts.IsZero() {
		return false
	}
	return ts.Before(s.now())
}

func cloneSession(session conversation.Session) conversation.Session {
	session.Turns = append([]conversation.Turn{}, session.Turns...)
	return session
}

var _ conversation.SessionStore = (*MemoryStore)(nil)
