package friends

import (
	"context"
	"time"

	"github.com/LemoonCan/milky-way-client/pkg/users"
)

// Friend is an accepted contact.
type Friend struct {
	User    users.User `json:"user"`
	AddedAt time.Time  `json:"addedAt,omitempty"`
}

// Application is a pending friend request from another user.
type Application struct {
	ID         string     `json:"id"`
	From       users.User `json:"from"`
	Greeting   string     `json:"greeting,omitempty"`
	ReceivedAt time.Time  `json:"receivedAt,omitempty"`
}

// Service is the HTTP layer consumed by the store.
type Service interface {
	GetFriends(ctx context.Context) ([]Friend, error)
	ApplyFriend(ctx context.Context, userID, greeting string) error
	AcceptFriend(ctx context.Context, applicationID string) error
	DeleteFriend(ctx context.Context, userID string) error
}
