package moments

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/LemoonCan/milky-way-client/pkg/sessions"
	"github.com/LemoonCan/milky-way-client/pkg/users"
)

const DefaultPageSize = 20

// Store accumulates the feed entries for one scope and applies optimistic
// local edits for the operations the user performs on them.
//
// Network calls run outside the lock, each guarded by an in-flight flag
// keyed by operation and entry id. A guarded operation invoked while
// already running is dropped. All failures are swallowed into Err, no
// operation propagates an error past the store.
type Store struct {
	mu sync.Mutex

	service  Service
	uploader Uploader
	session  *sessions.Session
	log      zerolog.Logger

	pageSize int

	scope    Scope
	items    []Moment
	cursor   Cursor
	inflight map[string]bool
	lastErr  string
}

func NewStore(service Service, uploader Uploader, session *sessions.Session, log zerolog.Logger) *Store {
	return &Store{
		service:  service,
		uploader: uploader,
		session:  session,
		log:      log,
		pageSize: DefaultPageSize,
		cursor:   Cursor{HasNext: true},
		inflight: make(map[string]bool),
	}
}

func (s *Store) SetPageSize(size int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if size > 0 {
		s.pageSize = size
	}
}

// Items returns the accumulated feed entries, newest first. The returned
// moments share no memory with the store, later edits cannot reach them.
func (s *Store) Items() []Moment {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]Moment, len(s.items))
	for i, m := range s.items {
		items[i] = m.clone()
	}
	return items
}

func (s *Store) Scope() Scope {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scope
}

func (s *Store) Cursor() Cursor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

// Err returns the message of the last failed operation, empty after a success.
func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Loading reports whether the given operation is in flight for the entry.
// The id is empty for operations that are not entry-scoped.
func (s *Store) Loading(op, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inflight[opKey(op, id)]
}

// Reset drops all local state, keeping the store usable for a fresh scope.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scope = ""
	s.items = nil
	s.cursor = Cursor{HasNext: true}
	s.lastErr = ""
}

// FetchFirstPage replaces the list with the first page of the given scope.
// Switching scope clears the current list before the request is issued.
// A call while a first-page fetch for the same scope is in flight is dropped.
func (s *Store) FetchFirstPage(ctx context.Context, scope Scope) bool {
	key := opKey("fetch", string(scope))

	s.mu.Lock()
	if s.inflight[key] {
		s.mu.Unlock()
		return false
	}
	s.inflight[key] = true
	if scope != s.scope {
		s.scope = scope
		s.items = nil
		s.cursor = Cursor{HasNext: true}
	}
	size := s.pageSize
	s.mu.Unlock()

	page, err := s.service.GetFeed(ctx, scope, "", size)

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, key)

	if err != nil {
		return s.fail("fetch feed", err)
	}

	s.items = append([]Moment(nil), page.Items...)
	s.cursor = advance(Cursor{HasNext: true}, page)
	s.lastErr = ""
	return true
}

// LoadNextPage appends the next page to the list and advances the cursor
// to the last item of that page. It is a no-op when the cursor is
// exhausted or a page load is already running.
func (s *Store) LoadNextPage(ctx context.Context) bool {
	s.mu.Lock()
	if !s.cursor.HasNext || s.inflight["more"] {
		s.mu.Unlock()
		return false
	}
	s.inflight["more"] = true
	scope := s.scope
	cursor := s.cursor
	size := s.pageSize
	s.mu.Unlock()

	page, err := s.service.GetFeed(ctx, scope, cursor.LastID, size)

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, "more")

	if err != nil {
		return s.fail("load next page", err)
	}

	s.items = append(s.items, page.Items...)
	s.cursor = advance(s.cursor, page)
	s.lastErr = ""
	return true
}

// Refresh re-fetches the first page of the current scope.
func (s *Store) Refresh(ctx context.Context) bool {
	return s.FetchFirstPage(ctx, s.Scope())
}

// Create uploads the attached media, derives the content type from what is
// present and publishes the moment. The new entry is not inserted locally:
// the caller refreshes, which avoids a duplicate insert when the matching
// MOMENT_CREATE push arrives.
func (s *Store) Create(ctx context.Context, text string, uploads []Upload) bool {
	s.mu.Lock()
	if s.inflight["create"] {
		s.mu.Unlock()
		return false
	}
	s.inflight["create"] = true
	s.mu.Unlock()

	done := func(ok bool) bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.inflight, "create")
		return ok
	}

	mediaURLs := make([]string, 0, len(uploads))
	for _, upload := range uploads {
		url, err := s.uploader.UploadMedia(ctx, upload.Name, upload.Content, upload.Permission)
		if err != nil {
			s.mu.Lock()
			s.fail("upload media", err)
			s.mu.Unlock()
			return done(false)
		}
		mediaURLs = append(mediaURLs, url)
	}

	contentType := contentTypeFor(text, mediaURLs)
	if contentType == "" {
		s.mu.Lock()
		s.lastErr = "nothing to publish"
		s.mu.Unlock()
		return done(false)
	}

	_, err := s.service.CreateMoment(ctx, text, mediaURLs, contentType)
	if err != nil {
		s.mu.Lock()
		s.fail("create moment", err)
		s.mu.Unlock()
		return done(false)
	}

	s.mu.Lock()
	s.lastErr = ""
	s.mu.Unlock()
	return done(true)
}

// Delete removes the entry on the server and, on success, from the local
// list without a re-fetch.
func (s *Store) Delete(ctx context.Context, id string) bool {
	key := opKey("delete", id)

	s.mu.Lock()
	if s.inflight[key] {
		s.mu.Unlock()
		return false
	}
	s.inflight[key] = true
	s.mu.Unlock()

	err := s.service.DeleteMoment(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, key)

	if err != nil {
		return s.fail("delete moment", err)
	}

	s.removeEntryLocked(id)
	s.lastErr = ""
	return true
}

// ToggleLike likes the entry when the current user is not among its likers
// and unlikes it otherwise. On success the likers are edited locally, the
// server state is never re-fetched. A second call while the first is in
// flight is dropped.
func (s *Store) ToggleLike(ctx context.Context, id string) bool {
	user := s.session.User()

	s.mu.Lock()
	m := s.findLocked(id)
	if m == nil {
		s.lastErr = "unknown moment " + id
		s.mu.Unlock()
		return false
	}
	liked := hasLiker(m, user.ID)

	op := "like"
	if liked {
		op = "unlike"
	}
	key := opKey(op, id)
	if s.inflight[key] {
		s.mu.Unlock()
		return false
	}
	s.inflight[key] = true
	s.mu.Unlock()

	var err error
	if liked {
		err = s.service.UnlikeMoment(ctx, id)
	} else {
		err = s.service.LikeMoment(ctx, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, key)

	if err != nil {
		return s.fail(op+" moment", err)
	}

	if liked {
		s.removeLikeLocked(id, user.ID)
	} else {
		s.addLikeLocked(id, user)
	}
	s.lastErr = ""
	return true
}

// AddComment submits the comment and appends a locally synthesized copy
// using the server-returned id, the current user and the client clock.
// When parentID is set, ReplyToUser is resolved against the locally loaded
// comments and left unset if the parent is not among them.
func (s *Store) AddComment(ctx context.Context, id, content string, parentID *int64) bool {
	key := opKey("comment", id)

	s.mu.Lock()
	if s.inflight[key] {
		s.mu.Unlock()
		return false
	}
	s.inflight[key] = true
	s.mu.Unlock()

	commentID, err := s.service.CommentMoment(ctx, id, content, parentID)

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, key)

	if err != nil {
		return s.fail("comment moment", err)
	}

	comment := Comment{
		ID:        commentID,
		ParentID:  parentID,
		Author:    s.session.User(),
		Content:   content,
		CreatedAt: time.Now(),
	}

	if parentID != nil {
		if parent := s.findCommentLocked(id, *parentID); parent != nil {
			author := parent.Author
			comment.ReplyToUser = &author
		}
	}

	s.addCommentLocked(id, comment)
	s.lastErr = ""
	return true
}

// AddEntryLocally prepends the entry. It is a no-op when the id is already
// present.
func (s *Store) AddEntryLocally(m Moment) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findLocked(m.ID) != nil {
		return
	}
	s.items = append([]Moment{m}, s.items...)
}

// RemoveEntryLocally filters the entry out of the list, a no-op when absent.
func (s *Store) RemoveEntryLocally(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeEntryLocked(id)
}

func (s *Store) AddLikeLocally(id string, user users.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addLikeLocked(id, user)
}

func (s *Store) RemoveLikeLocally(id, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLikeLocked(id, userID)
}

func (s *Store) AddCommentLocally(id string, comment Comment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addCommentLocked(id, comment)
}

func (s *Store) RemoveCommentLocally(id string, commentID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.findLocked(id)
	if m == nil {
		return
	}

	comments := m.Comments[:0]
	for _, c := range m.Comments {
		if c.ID != commentID {
			comments = append(comments, c)
		}
	}
	m.Comments = comments
}

func (s *Store) fail(op string, err error) bool {
	s.lastErr = err.Error()
	s.log.Error().Err(err).Str("op", op).Msg("moment operation failed")
	return false
}

func (s *Store) findLocked(id string) *Moment {
	for i := range s.items {
		if s.items[i].ID == id {
			return &s.items[i]
		}
	}
	return nil
}

func (s *Store) findCommentLocked(id string, commentID int64) *Comment {
	m := s.findLocked(id)
	if m == nil {
		return nil
	}

	for i := range m.Comments {
		if m.Comments[i].ID == commentID {
			return &m.Comments[i]
		}
	}
	return nil
}

func (s *Store) removeEntryLocked(id string) {
	items := s.items[:0]
	for _, m := range s.items {
		if m.ID != id {
			items = append(items, m)
		}
	}
	s.items = items
}

func (s *Store) addLikeLocked(id string, user users.User) {
	m := s.findLocked(id)
	if m == nil {
		return
	}

	if hasLiker(m, user.ID) {
		return
	}
	m.Likers = append(m.Likers, user)
}

func (s *Store) removeLikeLocked(id, userID string) {
	m := s.findLocked(id)
	if m == nil {
		return
	}

	likers := m.Likers[:0]
	for _, liker := range m.Likers {
		if liker.ID != userID {
			likers = append(likers, liker)
		}
	}
	m.Likers = likers
}

func (s *Store) addCommentLocked(id string, comment Comment) {
	m := s.findLocked(id)
	if m == nil {
		return
	}
	m.Comments = append(m.Comments, comment)
}

func hasLiker(m *Moment, userID string) bool {
	for _, liker := range m.Likers {
		if liker.ID == userID {
			return true
		}
	}
	return false
}

func advance(prev Cursor, page *FeedPage) Cursor {
	lastID := page.LastID
	if lastID == "" && len(page.Items) > 0 {
		lastID = page.Items[len(page.Items)-1].ID
	}
	if lastID == "" {
		lastID = prev.LastID
	}
	return Cursor{LastID: lastID, HasNext: page.HasNext}
}

func contentTypeFor(text string, mediaURLs []string) ContentType {
	switch {
	case text != "" && len(mediaURLs) > 0:
		return ContentTypeTextImage
	case text != "":
		return ContentTypeText
	case len(mediaURLs) > 0:
		return ContentTypeImage
	default:
		return ""
	}
}

func opKey(op, id string) string {
	if id == "" {
		return op
	}
	return op + "_" + id
}
