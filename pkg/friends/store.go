package friends

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// Store holds the friend list and pending applications.
type Store struct {
	mu sync.Mutex

	service Service
	log     zerolog.Logger

	friends      []Friend
	applications []Application
	inflight     map[string]bool
	lastErr      string
}

func NewStore(service Service, log zerolog.Logger) *Store {
	return &Store{
		service:  service,
		log:      log,
		inflight: make(map[string]bool),
	}
}

func (s *Store) Friends() []Friend {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Friend(nil), s.friends...)
}

func (s *Store) Applications() []Application {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Application(nil), s.applications...)
}

func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.friends = nil
	s.applications = nil
	s.lastErr = ""
}

// FetchFriends replaces the friend list from the server.
func (s *Store) FetchFriends(ctx context.Context) bool {
	s.mu.Lock()
	if s.inflight["fetch"] {
		s.mu.Unlock()
		return false
	}
	s.inflight["fetch"] = true
	s.mu.Unlock()

	friends, err := s.service.GetFriends(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, "fetch")

	if err != nil {
		return s.fail("fetch friends", err)
	}

	s.friends = friends
	s.lastErr = ""
	return true
}

// Apply sends a friend request.
func (s *Store) Apply(ctx context.Context, userID, greeting string) bool {
	if err := s.service.ApplyFriend(ctx, userID, greeting); err != nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.fail("apply friend", err)
	}

	s.mu.Lock()
	s.lastErr = ""
	s.mu.Unlock()
	return true
}

// Accept accepts a pending application and moves it into the friend list.
func (s *Store) Accept(ctx context.Context, applicationID string) bool {
	if err := s.service.AcceptFriend(ctx, applicationID); err != nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.fail("accept friend", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	applications := s.applications[:0]
	for _, application := range s.applications {
		if application.ID != applicationID {
			applications = append(applications, application)
			continue
		}
		s.addFriendLocked(Friend{User: application.From, AddedAt: application.ReceivedAt})
	}
	s.applications = applications
	s.lastErr = ""
	return true
}

// Remove deletes a friend on the server and locally.
func (s *Store) Remove(ctx context.Context, userID string) bool {
	if err := s.service.DeleteFriend(ctx, userID); err != nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.fail("delete friend", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	friends := s.friends[:0]
	for _, friend := range s.friends {
		if friend.User.ID != userID {
			friends = append(friends, friend)
		}
	}
	s.friends = friends
	s.lastErr = ""
	return true
}

// AddFriendLocally prepends the friend, a no-op when already present.
func (s *Store) AddFriendLocally(friend Friend) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addFriendLocked(friend)
}

// AddApplicationLocally prepends the application, a no-op when already present.
func (s *Store) AddApplicationLocally(application Application) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.applications {
		if existing.ID == application.ID {
			return
		}
	}
	s.applications = append([]Application{application}, s.applications...)
}

func (s *Store) addFriendLocked(friend Friend) {
	for _, existing := range s.friends {
		if existing.User.ID == friend.User.ID {
			return
		}
	}
	s.friends = append([]Friend{friend}, s.friends...)
}

func (s *Store) fail(op string, err error) bool {
	s.lastErr = err.Error()
	s.log.Error().Err(err).Str("op", op).Msg("friend operation failed")
	return false
}
