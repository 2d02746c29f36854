package session

import (
	"sync"
)

// Identity is the account on whose behalf authenticated calls are made.
type Identity struct {
	Email    string
	Password string
}

// IsZero reports whether no account is configured.
func (i Identity) IsZero() bool {
	return i.Email == ""
}

// Session holds the current identity. It is safe for concurrent use;
// readers always observe a complete email/password pair.
type Session struct {
	identity Identity
	mu       sync.RWMutex
}

func New(email, password string) *Session {
	return &Session{identity: Identity{Email: email, Password: password}}
}

// Identity returns a snapshot of the current identity.
func (s *Session) Identity() Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity
}

// Set switches the session to another account.
func (s *Session) Set(email, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = Identity{Email: email, Password: password}
}

// SetPassword keeps the email and replaces the password.
func (s *Session) SetPassword(password string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity.Password = password
}
