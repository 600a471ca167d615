package domain

// Role tags carried on an Identity. The backend issues exactly one of the
// three concrete roles; RoleAny is a guard configuration value that admits
// every authenticated role and is never stored on an Identity.
const (
	RoleAdmin    = "ADMIN"
	RoleEmployer = "EMPLOYER"
	RoleEmployee = "EMPLOYEE"
	RoleAny      = "*"
)

// Identity models the currently authenticated user. It exists if and only if
// a session is active; the in-memory copy held by the session store is
// authoritative while the process runs, the persisted copy is a mirror.
type Identity struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Token     string `json:"token"`
	Role      string `json:"role"`
}

// FullName returns the display name used in notifications.
func (i Identity) FullName() string {
	if i.FirstName == "" {
		return i.LastName
	}
	if i.LastName == "" {
		return i.FirstName
	}
	return i.FirstName + " " + i.LastName
}

// KnownRole reports whether role is one of the three concrete role tags.
func KnownRole(role string) bool {
	switch role {
	case RoleAdmin, RoleEmployer, RoleEmployee:
		return true
	}
	return false
}
