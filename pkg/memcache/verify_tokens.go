package memcache

import (
	"sync"
	"time"
)

// VerifyTokenStore holds single-use email verification tokens.
type VerifyTokenStore interface {
	Set(token string, accountID string, ttl time.Duration)

	// Consume returns the accountID for token if not expired,
	// and removes the token (single-use). Returns "" if missing/expired.
	Consume(token string) string

	Peek(token string) (string, bool)
}

type entry struct {
	accountID string
	expiresAt time.Time
}

type VerifyTokens struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewVerifyTokens() *VerifyTokens {
	return &VerifyTokens{
		data: make(map[string]entry),
	}
}

func (s *VerifyTokens) Set(token string, accountID string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[token] = entry{
		accountID: accountID,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *VerifyTokens) Consume(token string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[token]
	if !ok {
		return ""
	}
	if time.Now().After(e.expiresAt) {
		delete(s.data, token)
		return ""
	}
	delete(s.data, token)
	return e.accountID
}

func (s *VerifyTokens) Peek(token string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[token]
	if !ok || time.Now().After(e.expiresAt) {
		return "", false
	}
	return e.accountID, true
}
