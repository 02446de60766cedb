package ws_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/LemoonCan/milky-way-client/pkg/push"
	"github.com/LemoonCan/milky-way-client/pkg/users"
	"github.com/LemoonCan/milky-way-client/pkg/ws"
)

var upgrader = websocket.Upgrader{}

func TestClient_Run(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer token-1" {
			t.Fatalf("unexpected auth header %q", r.Header.Get("Authorization"))
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Fatal(err)
		}
		defer conn.Close()

		event := push.NewLikeEvent("m1", users.User{ID: "u1"})
		if err := conn.WriteJSON(event); err != nil {
			t.Fatal(err)
		}

		// not an event envelope, the reader must skip it
		if err := conn.WriteMessage(websocket.TextMessage, []byte("not json")); err != nil {
			t.Fatal(err)
		}

		if err := conn.WriteJSON(push.NewMomentDeleteEvent("m1")); err != nil {
			t.Fatal(err)
		}
	}))
	defer server.Close()

	received := make(chan push.Event, 2)
	handler := func(event push.Event) {
		received <- event
	}

	url := "ws" + strings.TrimPrefix(server.URL, "http")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := ws.Dial(ctx, url, "token-1", handler, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	defer client.Close()

	go func() {
		_ = client.Run(ctx)
	}()

	first := <-received
	if first.Type != push.EventTypeLike {
		t.Fatalf("expected LIKE actual %s", first.Type)
	}

	second := <-received
	if second.Type != push.EventTypeMomentDelete {
		t.Fatalf("expected MOMENT_DELETE actual %s", second.Type)
	}
}

func TestClient_RunReleasesContextWatcher(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Fatal(err)
		}
		conn.Close()
	}))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	before := runtime.NumGoroutine()

	client, err := ws.Dial(ctx, url, "", func(push.Event) {}, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	defer client.Close()

	if err := client.Run(ctx); err == nil {
		t.Fatal("expected run to fail on the closed connection")
	}

	// the context is still live, the watcher must exit with Run
	deadline := time.Now().Add(2 * time.Second)
	for runtime.NumGoroutine() > before && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	if n := runtime.NumGoroutine(); n > before {
		t.Fatalf("expected %d goroutines actual %d", before, n)
	}
}
