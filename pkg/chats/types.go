package chats

import (
	"context"
	"time"

	"github.com/LemoonCan/milky-way-client/pkg/users"
)

type ChatKind string

const (
	ChatKindPrivate ChatKind = "private"
	ChatKindGroup   ChatKind = "group"
)

// Message in a chat. Pending messages carry a client-generated id until the
// server acknowledges them.
type Message struct {
	ID      string     `json:"id"`
	Sender  users.User `json:"sender"`
	Content string     `json:"content"`
	SentAt  time.Time  `json:"sentAt"`
	Pending bool       `json:"-"`
}

// Chat is one direct-message thread as shown in the chat list.
type Chat struct {
	ID          string    `json:"id"`
	Kind        ChatKind  `json:"kind"`
	Name        string    `json:"name"`
	Avatar      string    `json:"avatar,omitempty"`
	LastMessage string    `json:"lastMessage,omitempty"`
	LastAt      time.Time `json:"lastAt,omitempty"`
	Unread      int       `json:"unread"`
	Messages    []Message `json:"messages,omitempty"`
}

// clone detaches the message slice so the copy shares no memory with the
// original.
func (c Chat) clone() Chat {
	c.Messages = append([]Message(nil), c.Messages...)
	return c
}

// Service is the HTTP layer consumed by the store.
type Service interface {
	GetChats(ctx context.Context) ([]Chat, error)
	SendMessage(ctx context.Context, chatID, content string) (string, error)
}
