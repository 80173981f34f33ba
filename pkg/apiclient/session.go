package apiclient

import (
	"encoding/json"
	"os"
)

// SessionUser is the serialized staff account held for the session's
// lifetime. Passwords never appear here.
type SessionUser struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Session owns the user + bearer token pair with an explicit
// load/save/clear lifecycle, instead of ambient browser storage. One
// session object lives at the application root and is handed to the
// Client.
type Session struct {
	Path  string       `json:"-"`
	User  *SessionUser `json:"user,omitempty"`
	Token string       `json:"token,omitempty"`
}

func NewSession(path string) *Session {
	return &Session{Path: path}
}

func (s *Session) Authenticated() bool {
	return s.Token != "" && s.User != nil
}

// Load reads the persisted session. A missing file is a clean logged
// out state, not an error.
func (s *Session) Load() error {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			s.User = nil
			s.Token = ""
			return nil
		}
		return err
	}
	return json.Unmarshal(data, s)
}

func (s *Session) Save() error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path, data, 0o600)
}

// Clear forgets the session in memory and on disk.
func (s *Session) Clear() error {
	s.User = nil
	s.Token = ""
	err := os.Remove(s.Path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
