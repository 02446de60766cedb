package friends_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/LemoonCan/milky-way-client/pkg/friends"
	"github.com/LemoonCan/milky-way-client/pkg/users"
)

type fakeService struct {
	friends   []friends.Friend
	acceptErr error
	accepted  []string
	removed   []string
}

func (f *fakeService) GetFriends(context.Context) ([]friends.Friend, error) {
	return f.friends, nil
}

func (f *fakeService) ApplyFriend(context.Context, string, string) error {
	return nil
}

func (f *fakeService) AcceptFriend(_ context.Context, applicationID string) error {
	if f.acceptErr != nil {
		return f.acceptErr
	}
	f.accepted = append(f.accepted, applicationID)
	return nil
}

func (f *fakeService) DeleteFriend(_ context.Context, userID string) error {
	f.removed = append(f.removed, userID)
	return nil
}

func TestStore_Accept(t *testing.T) {
	service := &fakeService{}
	store := friends.NewStore(service, zerolog.Nop())

	store.AddApplicationLocally(friends.Application{ID: "a1", From: users.User{ID: "u1", Name: "阿泽"}})

	if !store.Accept(context.Background(), "a1") {
		t.Fatal("expected accept to succeed")
	}

	if len(store.Applications()) != 0 {
		t.Fatal("expected application consumed")
	}

	list := store.Friends()
	if len(list) != 1 || list[0].User.ID != "u1" {
		t.Fatalf("expected friend added, actual %v", list)
	}
}

func TestStore_AcceptFailureKeepsApplication(t *testing.T) {
	service := &fakeService{acceptErr: fmt.Errorf("boom")}
	store := friends.NewStore(service, zerolog.Nop())

	store.AddApplicationLocally(friends.Application{ID: "a1"})

	if store.Accept(context.Background(), "a1") {
		t.Fatal("expected accept to fail")
	}

	if len(store.Applications()) != 1 {
		t.Fatal("expected application kept")
	}
}

func TestStore_Remove(t *testing.T) {
	store := friends.NewStore(&fakeService{}, zerolog.Nop())

	store.AddFriendLocally(friends.Friend{User: users.User{ID: "u1"}})
	store.AddFriendLocally(friends.Friend{User: users.User{ID: "u2"}})

	if !store.Remove(context.Background(), "u1") {
		t.Fatal("expected remove to succeed")
	}

	list := store.Friends()
	if len(list) != 1 || list[0].User.ID != "u2" {
		t.Fatalf("unexpected list %v", list)
	}
}

func TestStore_AddFriendLocallyDedups(t *testing.T) {
	store := friends.NewStore(&fakeService{}, zerolog.Nop())

	store.AddFriendLocally(friends.Friend{User: users.User{ID: "u1"}})
	store.AddFriendLocally(friends.Friend{User: users.User{ID: "u1"}})

	if len(store.Friends()) != 1 {
		t.Fatal("expected duplicate insert to be a no-op")
	}
}
