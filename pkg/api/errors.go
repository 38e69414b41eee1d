package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// TransportError covers everything between the caller and a usable response:
// connection failures, timeouts, and 5xx statuses. The wrapped error, when
// present, is the underlying net/http failure.
type TransportError struct {
	Op     string
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: server returned status %d", e.Op, e.Status)
}

func (e *TransportError) Unwrap() error { return e.Err }

// NotFoundError reports a 404 for a specific record.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// ValidationError reports a 4xx rejection with the server-supplied reason.
type ValidationError struct {
	Resource string
	Status   int
	Reason   string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s rejected: %s", e.Resource, e.Reason)
	}
	return fmt.Sprintf("%s rejected with status %d", e.Resource, e.Status)
}

// apiMessage is the error body shape the server uses for rejections.
type apiMessage struct {
	Message string `json:"message"`
}

// statusError maps a non-2xx response to the error taxonomy. The response
// body is consumed but not closed.
func statusError(op, resource, id string, resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return &NotFoundError{Resource: resource, ID: id}
	case resp.StatusCode >= 500:
		return &TransportError{Op: op, Status: resp.StatusCode}
	default:
		var msg apiMessage
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
		if err := json.Unmarshal(body, &msg); err != nil || msg.Message == "" {
			msg.Message = http.StatusText(resp.StatusCode)
		}
		return &ValidationError{Resource: resource, Status: resp.StatusCode, Reason: msg.Message}
	}
}
