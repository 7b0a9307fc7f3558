// ABOUTME: Error taxonomy for upstream Intervals.icu failures
// ABOUTME: Exactly one kind per failure; carries status and body when rejected
package icu

import (
	"fmt"
	"net/http"
)

// ErrorKind classifies an upstream failure.
type ErrorKind int

const (
	// KindUnavailable covers network failures, timeouts, and cancellation.
	KindUnavailable ErrorKind = iota
	// KindRejected is a non-2xx response from Intervals.icu.
	KindRejected
	// KindMalformed is a 2xx response whose body is not the JSON shape
	// the endpoint returns.
	KindMalformed
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnavailable:
		return "unavailable"
	case KindRejected:
		return "rejected"
	case KindMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Error is the single error type the client returns. Status and Body
// are only set for KindRejected.
type Error struct {
	Kind   ErrorKind
	Status int
	Body   string
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindRejected:
		return statusMessage(e.Status, e.Body)
	case KindMalformed:
		if e.Err != nil {
			return fmt.Sprintf("invalid JSON in response: %v", e.Err)
		}
		return "invalid JSON in response"
	default:
		return fmt.Sprintf("request error: %v", e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// statusMessage returns a user-friendly line for an upstream status,
// mirroring the hints Intervals.icu users actually need.
func statusMessage(status int, body string) string {
	switch status {
	case http.StatusUnauthorized:
		return "401 Unauthorized: Please check your API key."
	case http.StatusForbidden:
		return "403 Forbidden: You may not have permission to access this resource."
	case http.StatusNotFound:
		return "404 Not Found: The requested endpoint or ID doesn't exist."
	case http.StatusUnprocessableEntity:
		return "422 Unprocessable Entity: The server couldn't process the request (invalid parameters or unsupported operation)."
	case http.StatusTooManyRequests:
		return "429 Too Many Requests: Too many requests in a short time period."
	case http.StatusInternalServerError:
		return "500 Internal Server Error: The Intervals.icu server encountered an internal error."
	case http.StatusServiceUnavailable:
		return "503 Service Unavailable: The Intervals.icu server might be down or undergoing maintenance."
	default:
		if body != "" {
			return fmt.Sprintf("%d %s: %s", status, http.StatusText(status), body)
		}
		return fmt.Sprintf("%d %s", status, http.StatusText(status))
	}
}

func unavailable(err error) *Error {
	return &Error{Kind: KindUnavailable, Err: err}
}

func rejected(status int, body string) *Error {
	return &Error{Kind: KindRejected, Status: status, Body: body}
}

func malformed(err error) *Error {
	return &Error{Kind: KindMalformed, Err: err}
}
