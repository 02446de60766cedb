package notifications

import (
	"time"

	"github.com/LemoonCan/milky-way-client/pkg/push"
)

// Notification is one recorded push event with its display fields. The id
// is generated at receipt time, so a redelivered event produces a second
// record.
type Notification struct {
	ID         string         `json:"id"`
	Type       push.EventType `json:"type"`
	Title      string         `json:"title"`
	Message    string         `json:"message"`
	Avatar     string         `json:"avatar,omitempty"`
	ReceivedAt time.Time      `json:"receivedAt"`
	Read       bool           `json:"read"`
}

// Stats summarizes the aggregator contents. LikeCount and CommentCount
// count unread events only.
type Stats struct {
	Total        int `json:"total"`
	Unread       int `json:"unread"`
	LikeCount    int `json:"likeCount"`
	CommentCount int `json:"commentCount"`
}
