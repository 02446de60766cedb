package sessions

import (
	"sync"

	"github.com/LemoonCan/milky-way-client/pkg/users"
)

// Session holds the authenticated user and token for one client instance.
// It is constructed explicitly and injected into stores and the API client,
// never kept as package state.
type Session struct {
	mu sync.Mutex

	user  users.User
	token string
}

func NewSession() *Session {
	return &Session{}
}

func (s *Session) SetUser(user users.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
}

func (s *Session) User() users.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *Session) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Authenticated reports whether a token has been set.
func (s *Session) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != ""
}
