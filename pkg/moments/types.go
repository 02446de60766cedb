package moments

import (
	"context"
	"io"
	"time"

	"github.com/LemoonCan/milky-way-client/pkg/users"
)

// Scope identifies which subset of the feed a store holds.
type Scope string

const (
	ScopeFriends Scope = "friends"
	ScopeMine    Scope = "mine"
)

// ScopeUser returns the scope for a specific user's feed.
func ScopeUser(id string) Scope {
	return Scope("user:" + id)
}

// ContentType tags what a moment consists of.
type ContentType string

const (
	ContentTypeText      ContentType = "TEXT"
	ContentTypeImage     ContentType = "IMAGE"
	ContentTypeTextImage ContentType = "TEXT_IMAGE"
)

// Comment on a moment. ParentID may reference a comment that was never
// loaded locally.
type Comment struct {
	ID          int64       `json:"id"`
	ParentID    *int64      `json:"parentCommentId,omitempty"`
	Author      users.User  `json:"author"`
	Content     string      `json:"content"`
	CreatedAt   time.Time   `json:"createdAt"`
	ReplyToUser *users.User `json:"replyToUser,omitempty"`
}

// Moment is a single feed entry.
type Moment struct {
	ID          string       `json:"id"`
	Author      users.User   `json:"author"`
	Text        string       `json:"text,omitempty"`
	MediaRefs   []string     `json:"mediaRefs,omitempty"`
	ContentType ContentType  `json:"contentType,omitempty"`
	CreatedAt   time.Time    `json:"createdAt,omitempty"`
	Likers      []users.User `json:"likers,omitempty"`
	Comments    []Comment    `json:"comments,omitempty"`
}

// clone detaches the nested slices so the copy shares no memory with the
// original.
func (m Moment) clone() Moment {
	m.MediaRefs = append([]string(nil), m.MediaRefs...)
	m.Likers = append([]users.User(nil), m.Likers...)
	m.Comments = append([]Comment(nil), m.Comments...)
	return m
}

// Cursor is the pagination marker for a feed scope.
type Cursor struct {
	LastID  string
	HasNext bool
}

// FeedPage is one page of feed entries as returned by the server.
type FeedPage struct {
	Items   []Moment `json:"items"`
	HasNext bool     `json:"hasNext"`
	LastID  string   `json:"lastId,omitempty"`
}

// Service is the HTTP layer consumed by the store.
type Service interface {
	GetFeed(ctx context.Context, scope Scope, cursor string, pageSize int) (*FeedPage, error)
	CreateMoment(ctx context.Context, text string, mediaURLs []string, contentType ContentType) (string, error)
	DeleteMoment(ctx context.Context, id string) error
	LikeMoment(ctx context.Context, id string) error
	UnlikeMoment(ctx context.Context, id string) error
	CommentMoment(ctx context.Context, id, content string, parentID *int64) (int64, error)
}

// Uploader stores media files and returns their access URL.
type Uploader interface {
	UploadMedia(ctx context.Context, name string, r io.Reader, permission string) (string, error)
}

// Upload is one media file attached to a new moment.
type Upload struct {
	Name       string
	Content    io.Reader
	Permission string
}
