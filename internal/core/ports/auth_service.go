package ports

import (
	"context"

	"github.com/careerhub/jobboard-client/internal/core/domain"
)

// RegistrationDraft carries the transient form data for a new account. It is
// validated locally before any network call and discarded after submission.
type RegistrationDraft struct {
	FirstName       string `json:"firstName"       validate:"required"`
	LastName        string `json:"lastName"        validate:"required"`
	Email           string `json:"email"           validate:"required,email"`
	Password        string `json:"password"        validate:"required,min=8"`
	ConfirmPassword string `json:"-"               validate:"required,eqfield=Password"`
	Role            string `json:"role"            validate:"required,oneof=ADMIN EMPLOYER EMPLOYEE"`
	Phone           string `json:"phone,omitempty"`
	Address         string `json:"address,omitempty"`
	// CompanyName is required by the backend for employer accounts only.
	CompanyName string `json:"companyName,omitempty" validate:"required_if=Role EMPLOYER"`
}

// AuthService is the sole entry point for authenticating, registering and
// signing out. None of its operations let an error propagate to the caller;
// outcomes are booleans plus notifications.
type AuthService interface {
	Login(ctx context.Context, email, password string) bool
	Logout(ctx context.Context)
	Register(ctx context.Context, draft RegistrationDraft) bool
	IsAuthenticated() bool
	Current() (domain.Identity, bool)
}
