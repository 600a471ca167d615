package ports

import (
	"context"
	"encoding/json"
	"net/http"
)

// Request describes one call through the gateway. Path is relative to the
// configured API origin; Method defaults to GET; Body, when non-nil, is
// serialized as JSON.
type Request struct {
	Path   string
	Method string
	Header http.Header
	Body   any
}

// Gateway performs a single HTTP round trip against the configured API origin
// and returns the parsed JSON body, or a normalized *domain.APIError.
type Gateway interface {
	Do(ctx context.Context, req Request) (json.RawMessage, error)
}

// TokenSource exposes the current session's bearer token to the gateway.
// Calls made before any login carry no credential.
type TokenSource interface {
	Token() (string, bool)
}
