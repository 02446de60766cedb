// Package push contains the server-pushed event envelope and its payloads.
package push

import (
	"encoding/json"
	"fmt"

	"github.com/LemoonCan/milky-way-client/pkg/chats"
	"github.com/LemoonCan/milky-way-client/pkg/friends"
	"github.com/LemoonCan/milky-way-client/pkg/moments"
	"github.com/LemoonCan/milky-way-client/pkg/users"
)

type EventType string

const (
	EventTypeFriendApply   EventType = "FRIEND_APPLY"
	EventTypeNewFriend     EventType = "NEW_FRIEND"
	EventTypeChatCreate    EventType = "CHAT_CREATE"
	EventTypeChatDelete    EventType = "CHAT_DELETE"
	EventTypeMomentCreate  EventType = "MOMENT_CREATE"
	EventTypeMomentDelete  EventType = "MOMENT_DELETE"
	EventTypeLike          EventType = "LIKE"
	EventTypeUnlike        EventType = "UNLIKE"
	EventTypeComment       EventType = "COMMENT"
	EventTypeCommentDelete EventType = "COMMENT_DELETE"
)

// Event is the tagged envelope delivered by the push transport.
type Event struct {
	Type    EventType              `json:"type"`
	Payload map[string]interface{} `json:"payload"`
}

// GetString returns a string payload field.
func (e Event) GetString(key string) (string, error) {
	val, ok := e.Payload[key]
	if !ok {
		return "", fmt.Errorf("payload field %q missing", key)
	}

	str, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("payload field %q is not a string", key)
	}

	return str, nil
}

// GetInt64 returns a numeric payload field. JSON numbers arrive as float64.
func (e Event) GetInt64(key string) (int64, error) {
	val, ok := e.Payload[key]
	if !ok {
		return 0, fmt.Errorf("payload field %q missing", key)
	}

	switch num := val.(type) {
	case float64:
		return int64(num), nil
	case int64:
		return num, nil
	case int:
		return int64(num), nil
	default:
		return 0, fmt.Errorf("payload field %q is not a number", key)
	}
}

// Bind decodes a structured payload field into v.
func (e Event) Bind(key string, v interface{}) error {
	val, ok := e.Payload[key]
	if !ok {
		return fmt.Errorf("payload field %q missing", key)
	}

	data, err := json.Marshal(val)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, v)
}

func NewFriendApplyEvent(application friends.Application) Event {
	return Event{
		Type:    EventTypeFriendApply,
		Payload: map[string]interface{}{"application": toMap(application)},
	}
}

func NewFriendEvent(friend friends.Friend) Event {
	return Event{
		Type:    EventTypeNewFriend,
		Payload: map[string]interface{}{"friend": toMap(friend)},
	}
}

func NewChatCreateEvent(chat chats.Chat) Event {
	return Event{
		Type:    EventTypeChatCreate,
		Payload: map[string]interface{}{"chat": toMap(chat)},
	}
}

func NewChatDeleteEvent(chatID string) Event {
	return Event{
		Type:    EventTypeChatDelete,
		Payload: map[string]interface{}{"chatId": chatID},
	}
}

func NewMomentCreateEvent(moment moments.Moment) Event {
	return Event{
		Type:    EventTypeMomentCreate,
		Payload: map[string]interface{}{"moment": toMap(moment)},
	}
}

func NewMomentDeleteEvent(momentID string) Event {
	return Event{
		Type:    EventTypeMomentDelete,
		Payload: map[string]interface{}{"momentId": momentID},
	}
}

func NewLikeEvent(momentID string, user users.User) Event {
	return Event{
		Type:    EventTypeLike,
		Payload: map[string]interface{}{"momentId": momentID, "user": toMap(user)},
	}
}

func NewUnlikeEvent(momentID string, user users.User) Event {
	return Event{
		Type:    EventTypeUnlike,
		Payload: map[string]interface{}{"momentId": momentID, "user": toMap(user)},
	}
}

func NewCommentEvent(momentID string, comment moments.Comment) Event {
	return Event{
		Type:    EventTypeComment,
		Payload: map[string]interface{}{"momentId": momentID, "comment": toMap(comment)},
	}
}

func NewCommentDeleteEvent(momentID string, commentID int64) Event {
	return Event{
		Type:    EventTypeCommentDelete,
		Payload: map[string]interface{}{"momentId": momentID, "commentId": commentID},
	}
}

// toMap round-trips a domain value through JSON so constructed events carry
// the same shapes the transport delivers.
func toMap(v interface{}) map[string]interface{} {
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}

	out := make(map[string]interface{})
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}

	return out
}
