package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure at the gateway boundary. Every error that
// crosses into UI-facing code is normalized into one of these kinds first.
type ErrorKind string

const (
	// KindTransport covers failures completing the round trip: connection
	// errors, request encoding, response decoding.
	KindTransport ErrorKind = "transport"
	// KindUpstream covers non-2xx responses carrying (or lacking) a
	// structured message.
	KindUpstream ErrorKind = "upstream"
	// KindAuth is the 401 specialization of an upstream failure.
	KindAuth ErrorKind = "auth"
	// KindValidation covers local validation failures detected before any
	// network call.
	KindValidation ErrorKind = "validation"
)

var (
	// ErrNoSession is returned by reads that require an authenticated session.
	ErrNoSession = errors.New("no active session")
)

// APIError is the normalized form of every gateway failure.
type APIError struct {
	Kind    ErrorKind
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *APIError) Unwrap() error { return e.Err }

// AsAPIError unwraps err into an *APIError when possible.
func AsAPIError(err error) (*APIError, bool) {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// IsAuthError reports whether err is the 401 specialization.
func IsAuthError(err error) bool {
	ae, ok := AsAPIError(err)
	return ok && ae.Kind == KindAuth
}
