// Package ws consumes the push websocket and forwards decoded events.
package ws

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/LemoonCan/milky-way-client/pkg/push"
)

// Handler receives every decoded push event, normally the dispatcher.
type Handler func(event push.Event)

// Client reads push.Event frames off one websocket connection. It does not
// reconnect, the owner dials a fresh client when the connection drops.
type Client struct {
	conn    *websocket.Conn
	handler Handler
	log     zerolog.Logger
}

// Dial connects to the push endpoint, authenticating with the bearer token
// when one is given.
func Dial(ctx context.Context, url, token string, handler Handler, log zerolog.Logger) (*Client, error) {
	header := http.Header{}
	if token != "" {
		header.Set("Authorization", "Bearer "+token)
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, header)
	if err != nil {
		return nil, errors.Wrap(err, "failed to dial push endpoint")
	}

	return &Client{
		conn:    conn,
		handler: handler,
		log:     log,
	}, nil
}

// Run reads frames until the connection or the context ends. Frames that
// do not decode into an event are logged and skipped.
func (c *Client) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			_ = c.conn.Close()
		case <-done:
		}
	}()

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return errors.Wrap(err, "push connection closed")
		}

		event := push.Event{}
		if err := json.Unmarshal(data, &event); err != nil {
			c.log.Warn().Err(err).Msg("skipping undecodable push frame")
			continue
		}

		c.handler(event)
	}
}

func (c *Client) Close() error {
	return c.conn.Close()
}
