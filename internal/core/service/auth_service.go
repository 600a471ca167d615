package service

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/careerhub/jobboard-client/internal/core/domain"
	"github.com/careerhub/jobboard-client/internal/core/ports"
	"github.com/careerhub/jobboard-client/internal/session"
)

// User-visible messages emitted by auth operations.
const (
	msgLoginFallback    = "Login failed. Please check your credentials."
	msgRegisterFallback = "Registration failed. Please try again."
	msgRegistered       = "Registration successful. You can now sign in."
	msgSignedOut        = "You have been signed out."
)

// AuthService implements ports.AuthService. It is the sole mutator of the
// session store: every other component treats the session as read-only.
//
// All three operations convert gateway failures into a notification plus a
// boolean outcome — no error ever propagates to a caller, so callers need no
// error handling of their own around login, logout or register.
type AuthService struct {
	gw       ports.Gateway
	store    *session.Store
	notify   ports.Notifier
	validate *validator.Validate
	log      zerolog.Logger
}

func NewAuthService(gw ports.Gateway, store *session.Store, notify ports.Notifier, log zerolog.Logger) *AuthService {
	return &AuthService{
		gw:       gw,
		store:    store,
		notify:   notify,
		validate: validator.New(),
		log:      log,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse mirrors the login exchange. The user identifier arrives as a
// number or a numeric string depending on the backend; flexibleID accepts
// both and coerces to int.
type loginResponse struct {
	UserID    flexibleID `json:"userId"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Email     string     `json:"email"`
	Token     string     `json:"token"`
	Role      string     `json:"role"`
}

type flexibleID int

func (f *flexibleID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		n, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		*f = flexibleID(n)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexibleID(n)
	return nil
}

// Login performs the login exchange and, on success, transitions the session
// store to Authenticated and emits a welcome notification. On failure the
// store is left unchanged, a failure notification carries the upstream
// message when one exists, and false is returned.
//
// Concurrent logins are not mutually excluded; the last to resolve wins.
func (s *AuthService) Login(ctx context.Context, email, password string) bool {
	raw, err := s.gw.Do(ctx, ports.Request{
		Path:   "/auth/login",
		Method: http.MethodPost,
		Body:   loginRequest{Email: email, Password: password},
	})
	if err != nil {
		s.notify.Error(failureMessage(err, msgLoginFallback))
		return false
	}

	var resp loginResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		s.log.Error().Err(err).Msg("auth: malformed login response")
		s.notify.Error(msgLoginFallback)
		return false
	}

	ident := domain.Identity{
		ID:        int(resp.UserID),
		FirstName: resp.FirstName,
		LastName:  resp.LastName,
		Email:     resp.Email,
		Token:     resp.Token,
		Role:      resp.Role,
	}
	s.store.Set(ctx, ident)

	s.log.Info().Int("user_id", ident.ID).Str("role", ident.Role).Msg("auth: login succeeded")
	s.notify.Success("Welcome back, " + ident.FullName() + "!")
	return true
}

// Logout transitions the session store to Anonymous and confirms. It always
// succeeds and has no dependency on network reachability.
func (s *AuthService) Logout(ctx context.Context) {
	s.store.Clear(ctx)
	s.notify.Success(msgSignedOut)
}

// Register validates the draft locally, then performs the registration
// exchange. A local validation failure is surfaced as a notification and no
// network call is attempted. Success does not authenticate the caller; a
// separate Login is required.
func (s *AuthService) Register(ctx context.Context, draft ports.RegistrationDraft) bool {
	if err := s.validate.Struct(draft); err != nil {
		s.notify.Error(validationMessage(err))
		return false
	}

	if _, err := s.gw.Do(ctx, ports.Request{
		Path:   "/auth/register",
		Method: http.MethodPost,
		Body:   draft,
	}); err != nil {
		s.notify.Error(failureMessage(err, msgRegisterFallback))
		return false
	}

	s.notify.Success(msgRegistered)
	return true
}

// IsAuthenticated reports whether the session store is Authenticated.
func (s *AuthService) IsAuthenticated() bool {
	return s.store.IsAuthenticated()
}

// Current returns the current Identity, if any.
func (s *AuthService) Current() (domain.Identity, bool) {
	return s.store.Current()
}

// failureMessage prefers the upstream-declared message; gateway transport
// errors and empty messages fall back to the operation-specific text. A 401
// already produced its own session-expired notification in the gateway, but
// auth operations still report their own outcome message.
func failureMessage(err error, fallback string) string {
	if ae, ok := domain.AsAPIError(err); ok && ae.Kind == domain.KindUpstream && ae.Message != "" {
		return ae.Message
	}
	return fallback
}
