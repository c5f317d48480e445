// Package api implements the HTTP client for the TabSense backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/tabsense/internal/common"
)

// User is the account payload returned by auth endpoints.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

// Tab is a saved transcription as returned by the backend.
type Tab struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Artist    string    `json:"artist"`
	Tuning    string    `json:"tuning"`
	BPM       string    `json:"bpm"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResult carries a session token together with the account it identifies.
type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// SaveTabRequest is the payload for creating a tab in the library.
type SaveTabRequest struct {
	Title   string `json:"title"`
	Artist  string `json:"artist"`
	Tuning  string `json:"tuning"`
	BPM     string `json:"bpm"`
	Content string `json:"content"`
}

// Error is a non-2xx response from the backend. Msg is the human-readable
// message from the response body and is shown to the user as-is.
type Error struct {
	StatusCode int
	Msg        string
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return fmt.Sprintf("server returned status %d", e.StatusCode)
}

// Client talks to the TabSense backend over HTTP/JSON. The session token, if
// set, is attached to every request. Client is not safe for concurrent use.
type Client struct {
	baseURL string
	token   string
	hc      *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient substitutes the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

// NewClient returns a Client for the backend at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken attaches a session token to subsequent requests. An empty token
// clears it.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Token returns the currently attached session token.
func (c *Client) Token() string {
	return c.token
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set(common.AuthTokenHeaderName, c.token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &Error{StatusCode: resp.StatusCode}
		var payload struct {
			Msg string `json:"msg"`
		}
		if err := json.Unmarshal(data, &payload); err == nil {
			apiErr.Msg = payload.Msg
		}
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return err
		}
	}
	return nil
}

// Register creates a new account and returns a session for it.
func (c *Client) Register(ctx context.Context, username, password string) (*AuthResult, error) {
	var res AuthResult
	body := map[string]string{"username": username, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", body, &res); err != nil {
		return nil, err
	}
	c.token = res.Token
	return &res, nil
}

// Login authenticates an existing account and returns a session for it.
func (c *Client) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	var res AuthResult
	body := map[string]string{"username": username, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &res); err != nil {
		return nil, err
	}
	c.token = res.Token
	return &res, nil
}

// Me returns the account behind the attached session token. It is the cheap
// way to find out whether a stored token is still valid.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var u User
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// ListTabs returns the caller's library, newest first.
func (c *Client) ListTabs(ctx context.Context) ([]Tab, error) {
	var tabs []Tab
	if err := c.do(ctx, http.MethodGet, "/api/tabs", nil, &tabs); err != nil {
		return nil, err
	}
	return tabs, nil
}

// SaveTab stores a transcription in the caller's library.
func (c *Client) SaveTab(ctx context.Context, req *SaveTabRequest) (*Tab, error) {
	var tab Tab
	if err := c.do(ctx, http.MethodPost, "/api/tabs", req, &tab); err != nil {
		return nil, err
	}
	return &tab, nil
}

// DeleteTab removes a tab from the caller's library.
func (c *Client) DeleteTab(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/tabs/"+id, nil, nil)
}
