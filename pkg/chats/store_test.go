package chats_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/LemoonCan/milky-way-client/pkg/chats"
	"github.com/LemoonCan/milky-way-client/pkg/sessions"
	"github.com/LemoonCan/milky-way-client/pkg/users"
)

type fakeService struct {
	chats   []chats.Chat
	sendID  string
	sendErr error
	sent    int
}

func (f *fakeService) GetChats(context.Context) ([]chats.Chat, error) {
	return f.chats, nil
}

func (f *fakeService) SendMessage(context.Context, string, string) (string, error) {
	f.sent++
	return f.sendID, f.sendErr
}

func newTestStore(service *fakeService) *chats.Store {
	session := sessions.NewSession()
	session.SetUser(users.User{ID: "me"})
	return chats.NewStore(service, session, zerolog.Nop())
}

func TestStore_FetchChats(t *testing.T) {
	store := newTestStore(&fakeService{chats: []chats.Chat{{ID: "c1"}, {ID: "c2"}}})

	if !store.FetchChats(context.Background()) {
		t.Fatal("expected fetch to succeed")
	}

	if list := store.Chats(); len(list) != 2 {
		t.Fatalf("expected 2 chats actual %d", len(list))
	}
}

func TestStore_Send(t *testing.T) {
	service := &fakeService{sendID: "msg-9"}
	store := newTestStore(service)
	store.AddChatLocally(chats.Chat{ID: "c1"})

	if !store.Send(context.Background(), "c1", "你好") {
		t.Fatal("expected send to succeed")
	}

	chat := store.Chats()[0]
	if len(chat.Messages) != 1 {
		t.Fatalf("expected 1 message actual %d", len(chat.Messages))
	}

	message := chat.Messages[0]
	if message.ID != "msg-9" || message.Pending || message.Sender.ID != "me" {
		t.Fatalf("expected reconciled message, actual %+v", message)
	}

	if chat.LastMessage != "你好" {
		t.Fatalf("unexpected last message %q", chat.LastMessage)
	}
}

func TestStore_SendFailureRollsBack(t *testing.T) {
	service := &fakeService{sendErr: fmt.Errorf("boom")}
	store := newTestStore(service)
	store.AddChatLocally(chats.Chat{ID: "c1"})

	if store.Send(context.Background(), "c1", "你好") {
		t.Fatal("expected send to fail")
	}

	if messages := store.Chats()[0].Messages; len(messages) != 0 {
		t.Fatalf("expected pending message removed, actual %v", messages)
	}

	if store.Err() != "boom" {
		t.Fatalf("expected error to surface, actual %q", store.Err())
	}
}

func TestStore_AddChatLocallyDedups(t *testing.T) {
	store := newTestStore(&fakeService{})

	store.AddChatLocally(chats.Chat{ID: "c1", Name: "first"})
	store.AddChatLocally(chats.Chat{ID: "c1", Name: "duplicate"})

	list := store.Chats()
	if len(list) != 1 || list[0].Name != "first" {
		t.Fatalf("unexpected list %v", list)
	}
}

func TestStore_AddMessageLocally(t *testing.T) {
	store := newTestStore(&fakeService{})
	store.AddChatLocally(chats.Chat{ID: "c1"})

	store.AddMessageLocally("c1", chats.Message{ID: "msg-1", Content: "在吗"})
	store.AddMessageLocally("c1", chats.Message{ID: "msg-2", Content: "在吗？"})

	chat := store.Chats()[0]
	if chat.Unread != 2 || chat.LastMessage != "在吗？" {
		t.Fatalf("unexpected chat %+v", chat)
	}

	store.MarkRead("c1")
	if store.Chats()[0].Unread != 0 {
		t.Fatal("expected unread cleared")
	}
}

func TestStore_ChatsDetachedFromLocalEdits(t *testing.T) {
	store := newTestStore(&fakeService{sendErr: fmt.Errorf("offline")})
	store.AddChatLocally(chats.Chat{ID: "c1"})
	store.AddMessageLocally("c1", chats.Message{ID: "msg-1", Content: "在吗"})
	store.AddMessageLocally("c1", chats.Message{ID: "msg-2", Content: "晚上见"})

	snapshot := store.Chats()

	// the rollback after a failed send filters chat.Messages in place
	store.Send(context.Background(), "c1", "路上了")
	store.AddMessageLocally("c1", chats.Message{ID: "msg-3", Content: "好"})

	messages := snapshot[0].Messages
	if len(messages) != 2 || messages[0].ID != "msg-1" || messages[1].ID != "msg-2" {
		t.Fatalf("unexpected messages %v", messages)
	}
}
