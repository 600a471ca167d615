package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/careerhub/jobboard-client/internal/core/domain"
	"github.com/careerhub/jobboard-client/internal/core/ports"
)

type stubTokens struct {
	token string
}

func (s *stubTokens) Token() (string, bool) {
	return s.token, s.token != ""
}

type recordingNotifier struct {
	errors []string
	infos  []string
	oks    []string
}

func (r *recordingNotifier) Success(msg string) { r.oks = append(r.oks, msg) }
func (r *recordingNotifier) Info(msg string)    { r.infos = append(r.infos, msg) }
func (r *recordingNotifier) Error(msg string)   { r.errors = append(r.errors, msg) }

func newTestGateway(url, token string) (*Gateway, *recordingNotifier) {
	notifier := &recordingNotifier{}
	gw := New(Config{BaseURL: url}, &stubTokens{token: token}, notifier, zerolog.Nop())
	return gw, notifier
}

func TestGateway_DefaultsToGetAndInjectsBearer(t *testing.T) {
	var gotMethod, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	gw, notifier := newTestGateway(srv.URL, "tok")
	raw, err := gw.Do(context.Background(), ports.Request{Path: "/jobs"})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if gotMethod != http.MethodGet {
		t.Fatalf("expected GET default, got %s", gotMethod)
	}
	if gotAuth != "Bearer tok" {
		t.Fatalf("expected bearer credential, got %q", gotAuth)
	}
	if string(raw) != `{"ok":true}` {
		t.Fatalf("unexpected body: %s", raw)
	}
	if len(notifier.errors) != 0 {
		t.Fatalf("success must not notify, got %v", notifier.errors)
	}
}

func TestGateway_NoCredentialBeforeLogin(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	gw, _ := newTestGateway(srv.URL, "")
	if _, err := gw.Do(context.Background(), ports.Request{Path: "/jobs"}); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("anonymous call must carry no credential, got %q", gotAuth)
	}
}

func TestGateway_NoContentReturnsEmptyObject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	gw, _ := newTestGateway(srv.URL, "tok")
	raw, err := gw.Do(context.Background(), ports.Request{Path: "/jobs/1", Method: http.MethodDelete})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if string(raw) != "{}" {
		t.Fatalf("expected empty object for 204, got %s", raw)
	}
}

func TestGateway_UpstreamMessageSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"An account with this email already exists"}`))
	}))
	defer srv.Close()

	gw, notifier := newTestGateway(srv.URL, "")
	_, err := gw.Do(context.Background(), ports.Request{Path: "/auth/register", Method: http.MethodPost, Body: map[string]string{}})
	ae, ok := domain.AsAPIError(err)
	if !ok {
		t.Fatalf("expected APIError, got %v", err)
	}
	if ae.Kind != domain.KindUpstream || ae.Status != http.StatusConflict {
		t.Fatalf("unexpected error: %+v", ae)
	}
	if ae.Message != "An account with this email already exists" {
		t.Fatalf("expected upstream message, got %q", ae.Message)
	}
	// Plain upstream failures propagate; the calling component notifies.
	if len(notifier.errors) != 0 {
		t.Fatalf("gateway must not notify for non-auth upstream errors, got %v", notifier.errors)
	}
}

func TestGateway_MalformedErrorBodyFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	gw, _ := newTestGateway(srv.URL, "")
	_, err := gw.Do(context.Background(), ports.Request{Path: "/jobs"})
	ae, ok := domain.AsAPIError(err)
	if !ok || ae.Message != MsgGenericFailure {
		t.Fatalf("expected generic fallback message, got %v", err)
	}
}

func TestGateway_CredentialedUnauthorizedNotifiesOnce(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"invalid token"}`))
	}))
	defer srv.Close()

	gw, notifier := newTestGateway(srv.URL, "stale-token")
	_, err := gw.Do(context.Background(), ports.Request{Path: "/users/me"})
	if !domain.IsAuthError(err) {
		t.Fatalf("expected auth-kind error, got %v", err)
	}
	if len(notifier.errors) != 1 || notifier.errors[0] != MsgSessionExpired {
		t.Fatalf("expected exactly one session-expired notification, got %v", notifier.errors)
	}
}

func TestGateway_AnonymousUnauthorizedIsUpstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid credentials"}`))
	}))
	defer srv.Close()

	// No session: a 401 means bad credentials, not an expired session.
	gw, notifier := newTestGateway(srv.URL, "")
	_, err := gw.Do(context.Background(), ports.Request{Path: "/auth/login", Method: http.MethodPost, Body: map[string]string{}})
	ae, ok := domain.AsAPIError(err)
	if !ok || ae.Kind != domain.KindUpstream {
		t.Fatalf("expected upstream kind, got %v", err)
	}
	if ae.Message != "Invalid credentials" {
		t.Fatalf("unexpected message %q", ae.Message)
	}
	if len(notifier.errors) != 0 {
		t.Fatalf("no session-expired notification without a session, got %v", notifier.errors)
	}
}

func TestGateway_TransportFailureNotifiesGeneric(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	gw, notifier := newTestGateway(srv.URL, "")
	_, err := gw.Do(context.Background(), ports.Request{Path: "/jobs"})
	ae, ok := domain.AsAPIError(err)
	if !ok || ae.Kind != domain.KindTransport {
		t.Fatalf("expected transport kind, got %v", err)
	}
	if len(notifier.errors) != 1 || notifier.errors[0] != MsgGenericFailure {
		t.Fatalf("expected exactly one generic notification, got %v", notifier.errors)
	}
}
