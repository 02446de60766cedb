// Package api is the HTTP service layer of the client. All store network
// operations go through Client.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/LemoonCan/milky-way-client/pkg/chats"
	"github.com/LemoonCan/milky-way-client/pkg/friends"
	"github.com/LemoonCan/milky-way-client/pkg/moments"
	"github.com/LemoonCan/milky-way-client/pkg/sessions"
)

const (
	defaultTimeout        = 60 * time.Second
	defaultConnectTimeout = 5 * time.Second
	defaultTLSTimeout     = 5 * time.Second
)

func newHTTPClient(timeout time.Duration) *http.Client {
	dialer := &net.Dialer{
		Timeout: defaultConnectTimeout,
	}
	transport := &http.Transport{
		DialContext:         dialer.DialContext,
		TLSHandshakeTimeout: defaultTLSTimeout,
	}
	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}

// Client talks to the milky-way HTTP API. It implements the Service
// interfaces of the moments, chats and friends stores plus the media
// Uploader.
type Client struct {
	httpClient *http.Client
	baseURL    string
	session    *sessions.Session
}

func NewClient(baseURL string, session *sessions.Session) *Client {
	return NewClientWithTimeout(baseURL, session, defaultTimeout)
}

// NewClientWithTimeout caps every request at the given timeout, keeping the
// default dial and TLS handshake limits. A non-positive timeout falls back
// to the default.
func NewClientWithTimeout(baseURL string, session *sessions.Session, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		httpClient: newHTTPClient(timeout),
		baseURL:    baseURL,
		session:    session,
	}
}

// envelope is the uniform response wrapper: a well-formed response with
// success=false is a server rejection, not a transport failure.
type envelope struct {
	Success bool            `json:"success"`
	Msg     string          `json:"msg,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// GetFeed fetches one page of feed entries for a scope.
func (c *Client) GetFeed(ctx context.Context, scope moments.Scope, cursor string, pageSize int) (*moments.FeedPage, error) {
	query := url.Values{}
	query.Set("scope", string(scope))
	query.Set("pageSize", strconv.Itoa(pageSize))
	if cursor != "" {
		query.Set("lastId", cursor)
	}

	page := &moments.FeedPage{}
	if err := c.get(ctx, "/moments", query, page); err != nil {
		return nil, err
	}

	return page, nil
}

func (c *Client) CreateMoment(ctx context.Context, text string, mediaURLs []string, contentType moments.ContentType) (string, error) {
	body := map[string]interface{}{
		"text":        text,
		"mediaUrls":   mediaURLs,
		"contentType": contentType,
	}

	var resp struct {
		ID string `json:"id"`
	}
	if err := c.post(ctx, "/moments", body, &resp); err != nil {
		return "", err
	}

	return resp.ID, nil
}

func (c *Client) DeleteMoment(ctx context.Context, id string) error {
	return c.delete(ctx, "/moments/"+url.PathEscape(id))
}

func (c *Client) LikeMoment(ctx context.Context, id string) error {
	return c.post(ctx, "/moments/"+url.PathEscape(id)+"/likes", nil, nil)
}

func (c *Client) UnlikeMoment(ctx context.Context, id string) error {
	return c.delete(ctx, "/moments/"+url.PathEscape(id)+"/likes")
}

func (c *Client) CommentMoment(ctx context.Context, id, content string, parentID *int64) (int64, error) {
	body := map[string]interface{}{
		"content": content,
	}
	if parentID != nil {
		body["parentCommentId"] = *parentID
	}

	var resp struct {
		ID int64 `json:"id"`
	}
	if err := c.post(ctx, "/moments/"+url.PathEscape(id)+"/comments", body, &resp); err != nil {
		return 0, err
	}

	return resp.ID, nil
}

func (c *Client) GetChats(ctx context.Context) ([]chats.Chat, error) {
	list := make([]chats.Chat, 0)
	if err := c.get(ctx, "/chats", nil, &list); err != nil {
		return nil, err
	}

	return list, nil
}

func (c *Client) SendMessage(ctx context.Context, chatID, content string) (string, error) {
	var resp struct {
		ID string `json:"id"`
	}
	err := c.post(ctx, "/chats/"+url.PathEscape(chatID)+"/messages", map[string]interface{}{"content": content}, &resp)
	if err != nil {
		return "", err
	}

	return resp.ID, nil
}

func (c *Client) GetFriends(ctx context.Context) ([]friends.Friend, error) {
	list := make([]friends.Friend, 0)
	if err := c.get(ctx, "/friends", nil, &list); err != nil {
		return nil, err
	}

	return list, nil
}

func (c *Client) ApplyFriend(ctx context.Context, userID, greeting string) error {
	body := map[string]interface{}{"userId": userID, "greeting": greeting}
	return c.post(ctx, "/friends/applications", body, nil)
}

func (c *Client) AcceptFriend(ctx context.Context, applicationID string) error {
	return c.post(ctx, "/friends/applications/"+url.PathEscape(applicationID)+"/accept", nil, nil)
}

func (c *Client) DeleteFriend(ctx context.Context, userID string) error {
	return c.delete(ctx, "/friends/"+url.PathEscape(userID))
}

// UploadMedia uploads one file and returns its access URL.
func (c *Client) UploadMedia(ctx context.Context, name string, r io.Reader, permission string) (string, error) {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	part, err := writer.CreateFormFile("file", name)
	if err != nil {
		return "", errors.Wrap(err, "failed to build multipart body")
	}

	if _, err := io.Copy(part, r); err != nil {
		return "", errors.Wrap(err, "failed to read upload")
	}

	if err := writer.WriteField("permission", permission); err != nil {
		return "", errors.Wrap(err, "failed to build multipart body")
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to build multipart body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/media", buf)
	if err != nil {
		return "", errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var resp struct {
		AccessURL string `json:"accessUrl"`
	}
	if err := c.do(req, &resp); err != nil {
		return "", err
	}

	return resp.AccessURL, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}

	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to encode request body")
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}

	return c.do(req, nil)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	env := &envelope{}
	if err := json.NewDecoder(resp.Body).Decode(env); err != nil {
		return errors.Wrap(err, "failed to decode response")
	}

	if !env.Success {
		return &RejectionError{Msg: env.Msg}
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}

	return errors.Wrap(json.Unmarshal(env.Data, out), "failed to decode response data")
}
