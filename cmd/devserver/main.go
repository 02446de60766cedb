// Command devserver runs an in-memory milky-way API with a push websocket,
// enough to exercise the client without the real backend.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/segmentio/ksuid"

	"github.com/LemoonCan/milky-way-client/pkg/chats"
	"github.com/LemoonCan/milky-way-client/pkg/friends"
	"github.com/LemoonCan/milky-way-client/pkg/moments"
	"github.com/LemoonCan/milky-way-client/pkg/push"
	"github.com/LemoonCan/milky-way-client/pkg/users"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type server struct {
	mu sync.Mutex

	moments   []moments.Moment
	chats     []chats.Chat
	friends   []friends.Friend
	commentID int64

	pushInterval time.Duration
}

func main() {
	addr := flag.String("addr", ":8089", "listen address")
	interval := flag.Duration("push-interval", 10*time.Second, "interval between sample push events")
	flag.Parse()

	s := &server{pushInterval: *interval}
	s.seed()

	r := mux.NewRouter()

	r.HandleFunc("/moments", s.getFeed).Methods("GET")
	r.HandleFunc("/moments", s.createMoment).Methods("POST")
	r.HandleFunc("/moments/{id}", s.deleteMoment).Methods("DELETE")
	r.HandleFunc("/moments/{id}/likes", s.likeMoment).Methods("POST")
	r.HandleFunc("/moments/{id}/likes", s.unlikeMoment).Methods("DELETE")
	r.HandleFunc("/moments/{id}/comments", s.commentMoment).Methods("POST")
	r.HandleFunc("/chats", s.getChats).Methods("GET")
	r.HandleFunc("/chats/{id}/messages", s.sendMessage).Methods("POST")
	r.HandleFunc("/friends", s.getFriends).Methods("GET")
	r.HandleFunc("/friends/applications", s.applyFriend).Methods("POST")
	r.HandleFunc("/friends/applications/{id}/accept", s.acceptFriend).Methods("POST")
	r.HandleFunc("/friends/{id}", s.deleteFriend).Methods("DELETE")
	r.HandleFunc("/media", s.uploadMedia).Methods("POST")
	r.HandleFunc("/ws", s.pushSocket)

	headersOk := handlers.AllowedHeaders([]string{"Authorization", "Content-Type"})
	originsOk := handlers.AllowedOrigins([]string{"*"})
	methodsOk := handlers.AllowedMethods([]string{"GET", "HEAD", "POST", "PUT", "DELETE", "OPTIONS"})

	log.Printf("devserver listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, handlers.CORS(originsOk, headersOk, methodsOk)(r)))
}

func (s *server) seed() {
	author := users.User{ID: "u1", Name: "小乐", Avatar: "https://cdn.test/u1.png"}
	other := users.User{ID: "u2", Name: "阿泽", Avatar: "https://cdn.test/u2.png"}

	for i := 50; i > 0; i-- {
		moment := moments.Moment{
			ID:          fmt.Sprintf("m%d", i),
			Author:      author,
			Text:        fmt.Sprintf("第 %d 条动态", i),
			ContentType: moments.ContentTypeText,
			CreatedAt:   time.Now().Add(-time.Duration(51-i) * time.Hour),
		}
		if i%3 == 0 {
			moment.Likers = []users.User{other}
		}
		s.moments = append(s.moments, moment)
	}

	s.chats = []chats.Chat{
		{ID: "c1", Kind: chats.ChatKindPrivate, Name: "小乐", Avatar: author.Avatar},
		{ID: "c2", Kind: chats.ChatKindGroup, Name: "同学群"},
	}

	s.friends = []friends.Friend{
		{User: author, AddedAt: time.Now().AddDate(0, -1, 0)},
		{User: other, AddedAt: time.Now().AddDate(0, 0, -3)},
	}

	s.commentID = 100
}

func ok(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")

	body := map[string]interface{}{"success": true}
	if data != nil {
		body["data"] = data
	}

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("failed to encode response: %s", err)
	}
}

func reject(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")

	err := json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "msg": msg})
	if err != nil {
		log.Printf("failed to encode response: %s", err)
	}
}

func (s *server) getFeed(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pageSize, err := strconv.Atoi(r.URL.Query().Get("pageSize"))
	if err != nil || pageSize <= 0 {
		pageSize = moments.DefaultPageSize
	}

	start := 0
	if lastID := r.URL.Query().Get("lastId"); lastID != "" {
		for i, m := range s.moments {
			if m.ID == lastID {
				start = i + 1
				break
			}
		}
	}

	end := start + pageSize
	if end > len(s.moments) {
		end = len(s.moments)
	}

	page := moments.FeedPage{
		Items:   s.moments[start:end],
		HasNext: end < len(s.moments),
	}
	if len(page.Items) > 0 {
		page.LastID = page.Items[len(page.Items)-1].ID
	}

	ok(w, page)
}

func (s *server) createMoment(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Text        string              `json:"text"`
		MediaURLs   []string            `json:"mediaUrls"`
		ContentType moments.ContentType `json:"contentType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		reject(w, "invalid body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	moment := moments.Moment{
		ID:          "m" + ksuid.New().String(),
		Author:      users.User{ID: "me", Name: "我"},
		Text:        body.Text,
		MediaRefs:   body.MediaURLs,
		ContentType: body.ContentType,
		CreatedAt:   time.Now(),
	}
	s.moments = append([]moments.Moment{moment}, s.moments...)

	ok(w, map[string]string{"id": moment.ID})
}

func (s *server) deleteMoment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.moments[:0]
	for _, m := range s.moments {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	s.moments = kept

	ok(w, nil)
}

func (s *server) likeMoment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.moments {
		if s.moments[i].ID == id {
			s.moments[i].Likers = append(s.moments[i].Likers, users.User{ID: "me", Name: "我"})
			ok(w, nil)
			return
		}
	}

	reject(w, "moment not found")
}

func (s *server) unlikeMoment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.moments {
		if s.moments[i].ID != id {
			continue
		}

		likers := s.moments[i].Likers[:0]
		for _, liker := range s.moments[i].Likers {
			if liker.ID != "me" {
				likers = append(likers, liker)
			}
		}
		s.moments[i].Likers = likers

		ok(w, nil)
		return
	}

	reject(w, "moment not found")
}

func (s *server) commentMoment(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Content  string `json:"content"`
		ParentID *int64 `json:"parentCommentId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		reject(w, "invalid body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.commentID++
	ok(w, map[string]int64{"id": s.commentID})
}

func (s *server) getChats(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok(w, s.chats)
}

func (s *server) sendMessage(w http.ResponseWriter, r *http.Request) {
	ok(w, map[string]string{"id": "msg-" + ksuid.New().String()})
}

func (s *server) getFriends(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok(w, s.friends)
}

func (s *server) applyFriend(w http.ResponseWriter, r *http.Request) {
	ok(w, nil)
}

func (s *server) acceptFriend(w http.ResponseWriter, r *http.Request) {
	ok(w, nil)
}

func (s *server) deleteFriend(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.friends[:0]
	for _, friend := range s.friends {
		if friend.User.ID != id {
			kept = append(kept, friend)
		}
	}
	s.friends = kept

	ok(w, nil)
}

func (s *server) uploadMedia(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		reject(w, "invalid upload")
		return
	}

	_, header, err := r.FormFile("file")
	if err != nil {
		reject(w, "missing file")
		return
	}

	ok(w, map[string]string{"accessUrl": "https://cdn.test/" + header.Filename})
}

// pushSocket upgrades the connection and emits a sample event per interval.
func (s *server) pushSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("failed to upgrade: %s", err)
		return
	}
	defer conn.Close()

	ticker := time.NewTicker(s.pushInterval)
	defer ticker.Stop()

	i := 0
	for range ticker.C {
		if err := conn.WriteJSON(s.sampleEvent(i)); err != nil {
			return
		}
		i++
	}
}

func (s *server) sampleEvent(i int) push.Event {
	liker := users.User{ID: "u2", Name: "阿泽", Avatar: "https://cdn.test/u2.png"}

	s.mu.Lock()
	defer s.mu.Unlock()

	momentID := "m1"
	if len(s.moments) > 0 {
		momentID = s.moments[0].ID
	}

	switch i % 3 {
	case 0:
		return push.NewLikeEvent(momentID, liker)
	case 1:
		s.commentID++
		return push.NewCommentEvent(momentID, moments.Comment{
			ID:        s.commentID,
			Author:    liker,
			Content:   "哈哈",
			CreatedAt: time.Now(),
		})
	default:
		return push.NewMomentCreateEvent(moments.Moment{
			ID:          "m" + ksuid.New().String(),
			Author:      liker,
			Text:        "新的一天",
			ContentType: moments.ContentTypeText,
			CreatedAt:   time.Now(),
		})
	}
}
