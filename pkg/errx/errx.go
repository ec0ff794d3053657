// Package errx defines the typed failures produced by upstream service
// clients. Every outbound call that goes wrong is reported as an *Error
// carrying a Kind, so the orchestrator can absorb it into a well-formed
// user-facing response instead of letting it surface raw.
package errx

import (
	"errors"
	"fmt"
)

// Kind classifies how an upstream call failed.
type Kind string

const (
	// KindTransport covers connection, TLS and timeout failures.
	KindTransport Kind = "transport"
	// KindStatus covers non-2xx responses from an upstream service.
	KindStatus Kind = "status"
	// KindMalformed covers response bodies that cannot be decoded.
	KindMalformed Kind = "malformed"
	// KindValidation covers bad internally produced data rejected before
	// any network call is made.
	KindValidation Kind = "validation"
)

// Error wraps an underlying error with a failure kind and the upstream
// service it originated from.
type Error struct {
	Kind    Kind
	Service string
	Detail  string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s failure: %s", e.Service, e.Kind, e.Detail)
	}
	return fmt.Sprintf("%s: %s failure: %s: %v", e.Service, e.Kind, e.Detail, e.Err)
}

// Unwrap exposes the underlying error for errors.Is / errors.As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// Transport reports a connection, TLS or timeout failure.
func Transport(service string, err error) *Error {
	return &Error{Kind: KindTransport, Service: service, Detail: "request failed", Err: err}
}

// Status reports a non-2xx upstream response.
func Status(service string, code int, body string) *Error {
	return &Error{Kind: KindStatus, Service: service, Detail: fmt.Sprintf("status %d: %s", code, body)}
}

// Malformed reports an undecodable upstream response body.
func Malformed(service string, err error) *Error {
	return &Error{Kind: KindMalformed, Service: service, Detail: "unexpected response shape", Err: err}
}

// Validation reports bad input rejected before any network call.
func Validation(service, detail string) *Error {
	return &Error{Kind: KindValidation, Service: service, Detail: detail}
}

// KindOf extracts the failure kind from an error chain, or "" when the
// error is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
