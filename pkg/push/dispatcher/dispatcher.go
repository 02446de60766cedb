// Package dispatcher fans server-pushed events out to the notification
// aggregator and the domain stores.
package dispatcher

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/LemoonCan/milky-way-client/pkg/chats"
	"github.com/LemoonCan/milky-way-client/pkg/friends"
	"github.com/LemoonCan/milky-way-client/pkg/moments"
	"github.com/LemoonCan/milky-way-client/pkg/notifications"
	"github.com/LemoonCan/milky-way-client/pkg/push"
	"github.com/LemoonCan/milky-way-client/pkg/users"
)

// MomentStore is the slice of the feed store the dispatcher mutates.
type MomentStore interface {
	AddEntryLocally(m moments.Moment)
	RemoveEntryLocally(id string)
	AddLikeLocally(id string, user users.User)
	RemoveLikeLocally(id, userID string)
	AddCommentLocally(id string, comment moments.Comment)
	RemoveCommentLocally(id string, commentID int64)
}

// ChatStore is the slice of the chat store the dispatcher mutates.
type ChatStore interface {
	AddChatLocally(chat chats.Chat)
	RemoveChatLocally(id string)
}

// FriendStore is the slice of the friend store the dispatcher mutates.
type FriendStore interface {
	AddFriendLocally(friend friends.Friend)
	AddApplicationLocally(application friends.Application)
}

// Recorder buffers every dispatched event.
type Recorder interface {
	Record(event push.Event) *notifications.Notification
}

// Dispatcher is the single entry point for transport-delivered events.
// Every event is recorded, then validated, then applied as exactly one
// local mutation on the store it concerns. Malformed payloads are logged
// and dropped, never partially applied. There is no retry, reordering or
// dedup, events apply in arrival order.
type Dispatcher struct {
	recorder Recorder
	moments  MomentStore
	chats    ChatStore
	friends  FriendStore
	log      zerolog.Logger

	mu     sync.Mutex
	active map[string]struct{}
}

func New(recorder Recorder, momentStore MomentStore, chatStore ChatStore, friendStore FriendStore, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		recorder: recorder,
		moments:  momentStore,
		chats:    chatStore,
		friends:  friendStore,
		log:      log,
		active:   make(map[string]struct{}),
	}
}

// SetActive marks a logical page as visible. The tokens are advisory for
// UI code, dispatch never consults them.
func (d *Dispatcher) SetActive(page string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.active[page] = struct{}{}
}

// SetInactive removes a page token.
func (d *Dispatcher) SetInactive(page string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.active, page)
}

// IsActive reports whether a page token is set.
func (d *Dispatcher) IsActive(page string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.active[page]
	return ok
}

// Dispatch records the event and applies its local mutation.
func (d *Dispatcher) Dispatch(event push.Event) {
	d.recorder.Record(event)

	switch event.Type {
	case push.EventTypeFriendApply:
		var application friends.Application
		if err := event.Bind("application", &application); err != nil || application.ID == "" {
			d.drop(event, err)
			return
		}
		d.friends.AddApplicationLocally(application)

	case push.EventTypeNewFriend:
		var friend friends.Friend
		if err := event.Bind("friend", &friend); err != nil || friend.User.ID == "" {
			d.drop(event, err)
			return
		}
		d.friends.AddFriendLocally(friend)

	case push.EventTypeChatCreate:
		var chat chats.Chat
		if err := event.Bind("chat", &chat); err != nil || chat.ID == "" {
			d.drop(event, err)
			return
		}
		d.chats.AddChatLocally(chat)

	case push.EventTypeChatDelete:
		chatID, err := event.GetString("chatId")
		if err != nil {
			d.drop(event, err)
			return
		}
		d.chats.RemoveChatLocally(chatID)

	case push.EventTypeMomentCreate:
		var moment moments.Moment
		if err := event.Bind("moment", &moment); err != nil || moment.ID == "" {
			d.drop(event, err)
			return
		}
		d.moments.AddEntryLocally(moment)

	case push.EventTypeMomentDelete:
		momentID, err := event.GetString("momentId")
		if err != nil {
			d.drop(event, err)
			return
		}
		d.moments.RemoveEntryLocally(momentID)

	case push.EventTypeLike:
		momentID, err := event.GetString("momentId")
		if err != nil {
			d.drop(event, err)
			return
		}
		var user users.User
		if err := event.Bind("user", &user); err != nil || user.ID == "" {
			d.drop(event, err)
			return
		}
		d.moments.AddLikeLocally(momentID, user)

	case push.EventTypeUnlike:
		momentID, err := event.GetString("momentId")
		if err != nil {
			d.drop(event, err)
			return
		}
		var user users.User
		if err := event.Bind("user", &user); err != nil || user.ID == "" {
			d.drop(event, err)
			return
		}
		d.moments.RemoveLikeLocally(momentID, user.ID)

	case push.EventTypeComment:
		momentID, err := event.GetString("momentId")
		if err != nil {
			d.drop(event, err)
			return
		}
		var comment moments.Comment
		if err := event.Bind("comment", &comment); err != nil || comment.ID == 0 {
			d.drop(event, err)
			return
		}
		d.moments.AddCommentLocally(momentID, comment)

	case push.EventTypeCommentDelete:
		momentID, err := event.GetString("momentId")
		if err != nil {
			d.drop(event, err)
			return
		}
		commentID, err := event.GetInt64("commentId")
		if err != nil {
			d.drop(event, err)
			return
		}
		d.moments.RemoveCommentLocally(momentID, commentID)

	default:
		d.log.Warn().Str("type", string(event.Type)).Msg("unknown push event type")
	}
}

func (d *Dispatcher) drop(event push.Event, err error) {
	d.log.Warn().Err(err).Str("type", string(event.Type)).Msg("dropping malformed push event")
}
