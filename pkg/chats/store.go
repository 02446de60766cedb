package chats

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/LemoonCan/milky-way-client/pkg/sessions"
)

// Store holds the chat list, following the same optimistic pattern as the
// feed store: guarded network operations, local patches for push events,
// failures swallowed into Err.
type Store struct {
	mu sync.Mutex

	service Service
	session *sessions.Session
	log     zerolog.Logger

	chats    []Chat
	inflight map[string]bool
	lastErr  string
}

func NewStore(service Service, session *sessions.Session, log zerolog.Logger) *Store {
	return &Store{
		service:  service,
		session:  session,
		log:      log,
		inflight: make(map[string]bool),
	}
}

// Chats returns the chat list. The returned chats share no memory with the
// store, later edits cannot reach them.
func (s *Store) Chats() []Chat {
	s.mu.Lock()
	defer s.mu.Unlock()

	chats := make([]Chat, len(s.chats))
	for i, c := range s.chats {
		chats[i] = c.clone()
	}
	return chats
}

func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chats = nil
	s.lastErr = ""
}

// FetchChats replaces the list with the server's chat list. Dropped while a
// fetch is already running.
func (s *Store) FetchChats(ctx context.Context) bool {
	s.mu.Lock()
	if s.inflight["fetch"] {
		s.mu.Unlock()
		return false
	}
	s.inflight["fetch"] = true
	s.mu.Unlock()

	chats, err := s.service.GetChats(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, "fetch")

	if err != nil {
		return s.fail("fetch chats", err)
	}

	s.chats = chats
	s.lastErr = ""
	return true
}

// Send appends the message optimistically under a client-generated id, then
// swaps in the server id on success and removes it on failure.
func (s *Store) Send(ctx context.Context, chatID, content string) bool {
	pending := Message{
		ID:      "pending-" + uuid.New().String(),
		Sender:  s.session.User(),
		Content: content,
		SentAt:  time.Now(),
		Pending: true,
	}

	s.mu.Lock()
	chat := s.findLocked(chatID)
	if chat == nil {
		s.lastErr = "unknown chat " + chatID
		s.mu.Unlock()
		return false
	}
	chat.Messages = append(chat.Messages, pending)
	chat.LastMessage = content
	chat.LastAt = pending.SentAt
	s.mu.Unlock()

	id, err := s.service.SendMessage(ctx, chatID, content)

	s.mu.Lock()
	defer s.mu.Unlock()

	chat = s.findLocked(chatID)
	if chat == nil {
		return err == nil
	}

	if err != nil {
		messages := chat.Messages[:0]
		for _, m := range chat.Messages {
			if m.ID != pending.ID {
				messages = append(messages, m)
			}
		}
		chat.Messages = messages
		return s.fail("send message", err)
	}

	for i := range chat.Messages {
		if chat.Messages[i].ID == pending.ID {
			chat.Messages[i].ID = id
			chat.Messages[i].Pending = false
			break
		}
	}
	s.lastErr = ""
	return true
}

// MarkRead zeros the unread counter of a chat.
func (s *Store) MarkRead(chatID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if chat := s.findLocked(chatID); chat != nil {
		chat.Unread = 0
	}
}

// AddChatLocally prepends the chat, a no-op when the id is already present.
func (s *Store) AddChatLocally(chat Chat) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findLocked(chat.ID) != nil {
		return
	}
	s.chats = append([]Chat{chat}, s.chats...)
}

// RemoveChatLocally filters the chat out of the list, a no-op when absent.
func (s *Store) RemoveChatLocally(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	chats := s.chats[:0]
	for _, chat := range s.chats {
		if chat.ID != id {
			chats = append(chats, chat)
		}
	}
	s.chats = chats
}

// AddMessageLocally appends a received message and bumps the unread counter.
func (s *Store) AddMessageLocally(chatID string, message Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	chat := s.findLocked(chatID)
	if chat == nil {
		return
	}

	chat.Messages = append(chat.Messages, message)
	chat.LastMessage = message.Content
	chat.LastAt = message.SentAt
	chat.Unread++
}

func (s *Store) fail(op string, err error) bool {
	s.lastErr = err.Error()
	s.log.Error().Err(err).Str("op", op).Msg("chat operation failed")
	return false
}

func (s *Store) findLocked(id string) *Chat {
	for i := range s.chats {
		if s.chats[i].ID == id {
			return &s.chats[i]
		}
	}
	return nil
}
