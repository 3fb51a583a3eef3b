package api

import (
	"encoding/json"
	"fmt"
)

// Error is a failed gateway response normalized into one value: the gateway
// error code and message when the body was decodable, the HTTP status, and
// the raw body for diagnostics. It implements retry.StatusCoder, which is how
// the retry executor distinguishes client faults (400/401/403, never retried)
// from transient server failures.
type Error struct {
	// Code is the machine-readable gateway error code, e.g. "invoice_not_found".
	Code string `json:"code"`
	// Message is the human-readable description supplied by the gateway.
	Message string `json:"message"`
	// Status is the HTTP status of the response.
	Status int `json:"-"`
	// Raw is the unparsed response body.
	Raw []byte `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("paybyte: %s (%s, status %d)", e.Message, e.Code, e.Status)
	}
	return fmt.Sprintf("paybyte: unexpected status %d", e.Status)
}

// StatusCode returns the HTTP status of the failed response.
func (e *Error) StatusCode() int { return e.Status }

// newError builds an Error from a non-2xx response body. Undecodable bodies
// still produce an Error carrying the status and raw bytes.
func newError(status int, body []byte) *Error {
	apiErr := &Error{Status: status, Raw: body}
	// Best effort; the gateway error envelope is {"code","message"}.
	_ = json.Unmarshal(body, apiErr)
	return apiErr
}
