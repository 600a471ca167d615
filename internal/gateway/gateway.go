// Package gateway is the single chokepoint for outbound HTTP calls. Every
// call injects the current session's bearer token when one exists, and every
// failure is normalized into a *domain.APIError before it reaches a caller.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/careerhub/jobboard-client/internal/core/domain"
	"github.com/careerhub/jobboard-client/internal/core/ports"
	"github.com/careerhub/jobboard-client/internal/metrics"
)

// User-visible messages emitted as notification side effects. Exported so
// tests and callers can assert on them without duplicating the strings.
const (
	MsgSessionExpired = "Your session has expired. Please sign in again."
	MsgGenericFailure = "Something went wrong. Please try again."
)

// Config captures the settings for constructing a Gateway.
type Config struct {
	// BaseURL is the API origin, e.g. "https://api.example.com".
	BaseURL string
	// Timeout bounds the whole round trip. Zero disables the bound.
	Timeout time.Duration
	// Client overrides the underlying HTTP client. Used by tests.
	Client *http.Client
}

// Gateway implements ports.Gateway over net/http.
type Gateway struct {
	baseURL string
	client  *http.Client
	tokens  ports.TokenSource
	notify  ports.Notifier
	log     zerolog.Logger
}

func New(cfg Config, tokens ports.TokenSource, notify ports.Notifier, log zerolog.Logger) *Gateway {
	client := cfg.Client
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &Gateway{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  client,
		tokens:  tokens,
		notify:  notify,
		log:     log,
	}
}

// Do performs one HTTP round trip and returns the parsed JSON body.
//
// Contract:
//   - Method defaults to GET; a non-nil Body is serialized as JSON.
//   - The current bearer token, when present, is attached on every call.
//   - 204 returns an empty JSON object.
//   - Non-2xx returns a KindUpstream error carrying the body's "message"
//     field (generic fallback); a 401 on a credentialed call is KindAuth and
//     emits a session-expired notification.
//   - Transport and decode failures emit a generic notification and return
//     a KindTransport error.
//
// The gateway emits at most one notification per failure; plain upstream
// failures propagate silently for the calling component to surface. It never
// clears the session on 401; that decision stays with the caller.
func (g *Gateway) Do(ctx context.Context, req ports.Request) (json.RawMessage, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return nil, g.transportFailure(method, "encode request body", err)
		}
		body = bytes.NewReader(encoded)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, g.baseURL+"/"+strings.TrimLeft(req.Path, "/"), body)
	if err != nil {
		return nil, g.transportFailure(method, "build request", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	for key, values := range req.Header {
		httpReq.Header[http.CanonicalHeaderKey(key)] = values
	}
	token, hasToken := g.tokens.Token()
	if hasToken {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := g.client.Do(httpReq)
	metrics.RequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RequestsTotal.WithLabelValues(method, "error").Inc()
		return nil, g.transportFailure(method, req.Path, err)
	}
	defer resp.Body.Close()

	metrics.RequestsTotal.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, g.upstreamFailure(method, req.Path, resp, hasToken)
	}

	if resp.StatusCode == http.StatusNoContent {
		return json.RawMessage("{}"), nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, g.transportFailure(method, req.Path, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, g.transportFailure(method, req.Path, errInvalidJSON)
	}
	return raw, nil
}

var errInvalidJSON = errors.New("response body is not valid JSON")

// upstreamFailure normalizes a non-2xx response. The error body is expected
// to be a JSON object with a "message" field; anything else falls back to a
// generic message.
//
// A 401 on a credentialed call means the server invalidated the session and
// emits the session-expired notification; a 401 on an anonymous call (bad
// login credentials) is an ordinary upstream failure surfaced by the caller.
// The gateway never notifies for other upstream failures — the propagation
// policy leaves those to the calling component.
func (g *Gateway) upstreamFailure(method, path string, resp *http.Response, hadToken bool) error {
	message := MsgGenericFailure
	var envelope struct {
		Message string `json:"message"`
	}
	if raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20)); err == nil {
		if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Message != "" {
			message = envelope.Message
		}
	}

	kind := domain.KindUpstream
	if resp.StatusCode == http.StatusUnauthorized {
		metrics.AuthFailuresTotal.Inc()
		if hadToken {
			kind = domain.KindAuth
			g.notify.Error(MsgSessionExpired)
		}
	}

	g.log.Warn().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Str("message", message).
		Msg("upstream error")

	return &domain.APIError{Kind: kind, Status: resp.StatusCode, Message: message}
}

func (g *Gateway) transportFailure(method, path string, err error) error {
	g.notify.Error(MsgGenericFailure)
	g.log.Error().
		Err(err).
		Str("method", method).
		Str("path", path).
		Msg("transport error")
	return &domain.APIError{Kind: domain.KindTransport, Message: MsgGenericFailure, Err: err}
}
