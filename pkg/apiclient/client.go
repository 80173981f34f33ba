package apiclient

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

// Client is the typed HTTP wrapper the panel talks through. Every call
// is attempted exactly once: no retries, no request timeout, no
// cancellation once issued.
type Client struct {
	baseURL string
	http    *http.Client
	session *Session
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// WithSession attaches the session whose token authenticates requests.
func (c *Client) WithSession(s *Session) *Client {
	c.session = s
	return c
}

func (c *Client) Session() *Session {
	return c.session
}

func (c *Client) url(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

// do executes one request and maps the three failure classes onto
// FetchError. On success it returns the envelope's data payload.
func (c *Client) do(req *http.Request) (json.RawMessage, error) {
	if c.session != nil && c.session.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.session.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = unknownError
		}
		return nil, &FetchError{Kind: ErrTransport, Message: msg}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Kind: ErrTransport, Message: err.Error()}
	}

	var env envelope
	decodeErr := json.Unmarshal(body, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := unknownError
		if decodeErr == nil {
			msg = env.message()
		} else if text := strings.TrimSpace(string(body)); text != "" {
			// Raw text fallback when the error body isn't JSON
			msg = text
		}
		return nil, &FetchError{Kind: ErrHTTP, Status: resp.StatusCode, Message: msg}
	}

	if decodeErr != nil {
		return nil, &FetchError{Kind: ErrAPI, Status: resp.StatusCode, Message: unknownError}
	}
	if !env.Success {
		return nil, &FetchError{Kind: ErrAPI, Status: resp.StatusCode, Message: env.message()}
	}

	return env.Data, nil
}

func (c *Client) getJSON(path string) (json.RawMessage, error) {
	req, err := http.NewRequest(http.MethodGet, c.url(path), nil)
	if err != nil {
		return nil, &FetchError{Kind: ErrTransport, Message: err.Error()}
	}
	return c.do(req)
}

func (c *Client) sendJSON(method, path string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, &FetchError{Kind: ErrTransport, Message: err.Error()}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, c.url(path), reader)
	if err != nil {
		return nil, &FetchError{Kind: ErrTransport, Message: err.Error()}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req)
}

// LoginData is the payload of a successful login.
type LoginData struct {
	Token string      `json:"token"`
	User  SessionUser `json:"user"`
}

// Login authenticates and, when a session is attached, fills it. The
// caller decides when to Save.
func (c *Client) Login(email, password string) (*LoginData, error) {
	data, err := c.sendJSON(http.MethodPost, "login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	var ld LoginData
	if err := json.Unmarshal(data, &ld); err != nil {
		return nil, &FetchError{Kind: ErrAPI, Message: unknownError}
	}

	if c.session != nil {
		c.session.User = &ld.User
		c.session.Token = ld.Token
	}
	return &ld, nil
}

// Logout invalidates the server session and clears the local one.
func (c *Client) Logout() error {
	_, err := c.sendJSON(http.MethodPost, "logout", nil)
	if err != nil {
		return err
	}
	if c.session != nil {
		return c.session.Clear()
	}
	return nil
}

// ChangePassword rotates the authenticated user's password.
func (c *Client) ChangePassword(oldPassword, newPassword string) error {
	_, err := c.sendJSON(http.MethodPost, "change-password", map[string]string{
		"old_password": oldPassword,
		"new_password": newPassword,
	})
	return err
}
