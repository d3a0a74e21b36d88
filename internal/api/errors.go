package api

import (
	"encoding/json"
	"fmt"
)

// APIError is a non-2xx backend response. Detail carries the backend's
// user-facing message verbatim.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("backend returned status %d", e.Status)
}

// ErrBadResponse indicates a 2xx response whose body did not match the
// endpoint's schema. The client fails closed on these rather than
// reading fields optimistically.
type ErrBadResponse struct {
	Endpoint string
	Body     json.RawMessage
	Err      error
}

func (e *ErrBadResponse) Error() string {
	return fmt.Sprintf("unexpected response from %s: %v", e.Endpoint, e.Err)
}

func (e *ErrBadResponse) Unwrap() error { return e.Err }

// parseDetail extracts the {detail} message from an error body.
// Non-string detail values are stringified; an unparseable body yields
// the raw text.
func parseDetail(body []byte) string {
	var wrapper struct {
		Detail any `json:"detail"`
	}
	if err := json.Unmarshal(body, &wrapper); err != nil || wrapper.Detail == nil {
		return string(body)
	}
	if s, ok := wrapper.Detail.(string); ok {
		return s
	}
	b, err := json.Marshal(wrapper.Detail)
	if err != nil {
		return fmt.Sprintf("%v", wrapper.Detail)
	}
	return string(b)
}
