package apiclient

import (
	"encoding/json"
)

// ErrorKind tags the three failure classes the panel distinguishes:
// the request never completed, the server answered outside 2xx, or the
// server answered 2xx with success:false.
type ErrorKind string

const (
	ErrTransport ErrorKind = "transport"
	ErrHTTP      ErrorKind = "http"
	ErrAPI       ErrorKind = "api"
)

// unknownError is the fallback display string when nothing usable can
// be extracted from the failure.
const unknownError = "unknown error"

// FetchError is the typed result of any failed API call. Message is
// always display-ready.
type FetchError struct {
	Kind    ErrorKind
	Status  int // HTTP status, 0 for transport failures
	Message string
}

func (e *FetchError) Error() string {
	return e.Message
}

// envelope is the `{success, data?, message?|error?}` shape every
// endpoint returns.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Err     string          `json:"error"`
}

// unmarshalData decodes an envelope payload, folding malformed bodies
// into the generic API error.
func unmarshalData(data json.RawMessage, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return &FetchError{Kind: ErrAPI, Message: unknownError}
	}
	return nil
}

func (env *envelope) message() string {
	if env.Message != "" {
		return env.Message
	}
	if env.Err != "" {
		return env.Err
	}
	return unknownError
}
