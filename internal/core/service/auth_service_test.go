package service

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/careerhub/jobboard-client/internal/core/domain"
	"github.com/careerhub/jobboard-client/internal/core/ports"
	"github.com/careerhub/jobboard-client/internal/session"
)

type stubGateway struct {
	calls    []ports.Request
	response json.RawMessage
	err      error
}

func (g *stubGateway) Do(_ context.Context, req ports.Request) (json.RawMessage, error) {
	g.calls = append(g.calls, req)
	if g.err != nil {
		return nil, g.err
	}
	return g.response, nil
}

type recordingNotifier struct {
	oks    []string
	errors []string
}

func (r *recordingNotifier) Success(msg string) { r.oks = append(r.oks, msg) }
func (r *recordingNotifier) Info(string)        {}
func (r *recordingNotifier) Error(msg string)   { r.errors = append(r.errors, msg) }

func newTestService(gw ports.Gateway) (*AuthService, *session.Store, *session.MemoryStorage, *recordingNotifier) {
	storage := session.NewMemoryStorage()
	store := session.NewStore(storage, zerolog.Nop())
	store.Open(context.Background())
	notifier := &recordingNotifier{}
	svc := NewAuthService(gw, store, notifier, zerolog.Nop())
	return svc, store, storage, notifier
}

func validDraft() ports.RegistrationDraft {
	return ports.RegistrationDraft{
		FirstName:       "Ann",
		LastName:        "Lee",
		Email:           "a@b.com",
		Password:        "s3cret-pass",
		ConfirmPassword: "s3cret-pass",
		Role:            domain.RoleEmployee,
	}
}

func TestAuthService_Login_CoercesStringUserID(t *testing.T) {
	gw := &stubGateway{response: json.RawMessage(
		`{"userId":"7","firstName":"Ann","lastName":"Lee","email":"a@b.com","token":"tok","role":"EMPLOYEE"}`,
	)}
	svc, _, storage, notifier := newTestService(gw)

	if !svc.Login(context.Background(), "a@b.com", "s3cret-pass") {
		t.Fatalf("expected login to succeed")
	}

	want := domain.Identity{ID: 7, FirstName: "Ann", LastName: "Lee", Email: "a@b.com", Token: "tok", Role: domain.RoleEmployee}
	got, ok := svc.Current()
	if !ok || got != want {
		t.Fatalf("unexpected identity: %+v", got)
	}
	if !svc.IsAuthenticated() {
		t.Fatalf("expected authenticated state")
	}
	if len(notifier.oks) != 1 || !strings.Contains(notifier.oks[0], "Ann Lee") {
		t.Fatalf("expected welcome notification, got %v", notifier.oks)
	}

	// Round-trip law: the durable mirror deserializes back to the same Identity.
	raw, err := storage.Read(context.Background())
	if err != nil || raw == nil {
		t.Fatalf("expected persisted session, err %v", err)
	}
	var persisted domain.Identity
	if err := json.Unmarshal(raw, &persisted); err != nil {
		t.Fatalf("persisted session does not deserialize: %v", err)
	}
	if persisted != want {
		t.Fatalf("persisted identity mismatch: %+v", persisted)
	}
}

func TestAuthService_Login_NumericUserID(t *testing.T) {
	gw := &stubGateway{response: json.RawMessage(
		`{"userId":42,"firstName":"Bo","lastName":"Ng","email":"bo@b.com","token":"tok2","role":"EMPLOYER"}`,
	)}
	svc, _, _, _ := newTestService(gw)

	if !svc.Login(context.Background(), "bo@b.com", "pw-enough") {
		t.Fatalf("expected login to succeed")
	}
	got, _ := svc.Current()
	if got.ID != 42 {
		t.Fatalf("expected numeric id coerced to 42, got %d", got.ID)
	}
}

func TestAuthService_Login_FailureSurfacesUpstreamMessage(t *testing.T) {
	gw := &stubGateway{err: &domain.APIError{Kind: domain.KindUpstream, Status: http.StatusUnauthorized, Message: "Invalid credentials"}}
	svc, _, storage, notifier := newTestService(gw)

	if svc.Login(context.Background(), "a@b.com", "wrong") {
		t.Fatalf("expected login to fail")
	}
	if svc.IsAuthenticated() {
		t.Fatalf("failed login must leave the store anonymous")
	}
	if len(notifier.errors) != 1 || !strings.Contains(notifier.errors[0], "Invalid credentials") {
		t.Fatalf("expected failure notification with upstream message, got %v", notifier.errors)
	}
	if raw, _ := storage.Read(context.Background()); raw != nil {
		t.Fatalf("failed login must not persist a session")
	}
}

func TestAuthService_Login_TransportFailureFallsBack(t *testing.T) {
	gw := &stubGateway{err: &domain.APIError{Kind: domain.KindTransport, Message: "Something went wrong. Please try again."}}
	svc, _, _, notifier := newTestService(gw)

	if svc.Login(context.Background(), "a@b.com", "pw") {
		t.Fatalf("expected login to fail")
	}
	if len(notifier.errors) != 1 || notifier.errors[0] != msgLoginFallback {
		t.Fatalf("expected login fallback message, got %v", notifier.errors)
	}
}

func TestAuthService_Login_MalformedResponse(t *testing.T) {
	gw := &stubGateway{response: json.RawMessage(`{"userId":"not-a-number"}`)}
	svc, _, _, notifier := newTestService(gw)

	if svc.Login(context.Background(), "a@b.com", "pw") {
		t.Fatalf("expected login to fail on malformed response")
	}
	if svc.IsAuthenticated() {
		t.Fatalf("store must stay anonymous")
	}
	if len(notifier.errors) != 1 {
		t.Fatalf("expected one failure notification, got %v", notifier.errors)
	}
}

func TestAuthService_Logout(t *testing.T) {
	gw := &stubGateway{response: json.RawMessage(
		`{"userId":"7","firstName":"Ann","lastName":"Lee","email":"a@b.com","token":"tok","role":"EMPLOYEE"}`,
	)}
	svc, _, storage, notifier := newTestService(gw)

	svc.Login(context.Background(), "a@b.com", "pw")
	svc.Logout(context.Background())

	if svc.IsAuthenticated() {
		t.Fatalf("expected anonymous after logout")
	}
	if raw, _ := storage.Read(context.Background()); raw != nil {
		t.Fatalf("expected durable session erased on logout")
	}
	if len(notifier.oks) != 2 {
		t.Fatalf("expected welcome + signed-out notifications, got %v", notifier.oks)
	}
}

func TestAuthService_Register_LocalValidationSkipsNetwork(t *testing.T) {
	gw := &stubGateway{}
	svc, _, _, notifier := newTestService(gw)

	draft := validDraft()
	draft.ConfirmPassword = "different-pass"
	if svc.Register(context.Background(), draft) {
		t.Fatalf("expected validation failure")
	}
	if len(gw.calls) != 0 {
		t.Fatalf("validation failure must not reach the network, got %d calls", len(gw.calls))
	}
	if len(notifier.errors) != 1 || !strings.Contains(notifier.errors[0], "passwords do not match") {
		t.Fatalf("expected mismatch notification, got %v", notifier.errors)
	}
}

func TestAuthService_Register_EmployerRequiresCompany(t *testing.T) {
	gw := &stubGateway{}
	svc, _, _, _ := newTestService(gw)

	draft := validDraft()
	draft.Role = domain.RoleEmployer
	if svc.Register(context.Background(), draft) {
		t.Fatalf("expected validation failure without company name")
	}
	draft.CompanyName = "Acme"
	gw.response = json.RawMessage(`{"id":1}`)
	if !svc.Register(context.Background(), draft) {
		t.Fatalf("expected registration to succeed with company name")
	}
}

func TestAuthService_Register_DoesNotAuthenticate(t *testing.T) {
	gw := &stubGateway{response: json.RawMessage(`{"id":1}`)}
	svc, _, _, notifier := newTestService(gw)

	if !svc.Register(context.Background(), validDraft()) {
		t.Fatalf("expected registration to succeed")
	}
	if svc.IsAuthenticated() {
		t.Fatalf("registration must not create a session")
	}
	if len(notifier.oks) != 1 || notifier.oks[0] != msgRegistered {
		t.Fatalf("expected registration notification, got %v", notifier.oks)
	}
}

func TestAuthService_Register_UpstreamFailure(t *testing.T) {
	gw := &stubGateway{err: &domain.APIError{Kind: domain.KindUpstream, Status: http.StatusConflict, Message: "An account with this email already exists"}}
	svc, _, _, notifier := newTestService(gw)

	if svc.Register(context.Background(), validDraft()) {
		t.Fatalf("expected registration to fail")
	}
	if len(notifier.errors) != 1 || !strings.Contains(notifier.errors[0], "already exists") {
		t.Fatalf("expected upstream message surfaced, got %v", notifier.errors)
	}
}
