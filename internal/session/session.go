package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"VolumeWatch/internal/model"
)

// Session binds a login token to a user until it expires.
type Session struct {
	Token     string
	User      model.User
	ExpiresAt time.Time
}

// Manager keeps login sessions in memory. Sessions do not survive a
// restart; users simply log in again.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]Session
	ttl      time.Duration
}

// NewManager creates a Manager with the given session lifetime.
func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		sessions: make(map[string]Session),
		ttl:      ttl,
	}
}

// Create issues a new session token for the user.
func (m *Manager) Create(user model.User) Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := Session{
		Token:     uuid.NewString(),
		User:      user,
		ExpiresAt: time.Now().Add(m.ttl),
	}
	m.sessions[s.Token] = s
	return s
}

// Lookup resolves a token to its user. Expired sessions are dropped on access.
func (m *Manager) Lookup(token string) (model.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[token]
	if !ok {
		return model.User{}, false
	}
	if time.Now().After(s.ExpiresAt) {
		delete(m.sessions, token)
		return model.User{}, false
	}
	return s.User, true
}

// Destroy invalidates a token (logout).
func (m *Manager) Destroy(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
}

// Purge removes expired sessions and returns the count removed.
func (m *Manager) Purge() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	removed := 0
	for token, s := range m.sessions {
		if now.After(s.ExpiresAt) {
			delete(m.sessions, token)
			removed++
		}
	}
	return removed
}
