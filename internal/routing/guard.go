// Package routing implements the role-scoped route guard and the role-aware
// navigation composer. Both are pure: the guard is a per-navigation decision
// procedure evaluated fresh on every check, the composer a derivation over
// the current role.
package routing

import "github.com/careerhub/jobboard-client/internal/core/domain"

// Navigable paths. The three dashboards are the role-appropriate landing
// routes used when a wrongly-roled visitor is turned away.
const (
	PathHome              = "/"
	PathLogin             = "/login"
	PathAdminDashboard    = "/admin/dashboard"
	PathEmployerDashboard = "/employer/dashboard"
	PathEmployeeDashboard = "/employee/dashboard"
)

// Policy pairs a guarded view with the set of roles permitted to reach it.
// The allowed set is non-empty; domain.RoleAny admits every authenticated
// role regardless of the Identity's actual role.
type Policy struct {
	Allowed []string
}

// AllowRoles builds a Policy. Called with domain.RoleAny it guards a view
// that any authenticated visitor may reach.
func AllowRoles(roles ...string) Policy {
	return Policy{Allowed: roles}
}

func (p Policy) permits(role string) bool {
	for _, allowed := range p.Allowed {
		if allowed == domain.RoleAny || allowed == role {
			return true
		}
	}
	return false
}

// AuthState is the guard's read-only snapshot of the session. While Loading
// is true the Authenticated/Anonymous distinction is unreliable and no
// access decision is made.
type AuthState struct {
	Loading       bool
	Authenticated bool
	Role          string
}

// Action is the outcome category of one guard evaluation.
type Action int

const (
	// ActionDefer: recovery still in progress, render a neutral loading
	// indication and decide later.
	ActionDefer Action = iota
	// ActionAllow: render the guarded content unchanged.
	ActionAllow
	// ActionRedirect: send the visitor to Decision.Target instead.
	ActionRedirect
)

// Decision is the guard's verdict. Redirects replace history so
// back-navigation does not return to the guarded page.
type Decision struct {
	Action  Action
	Target  string
	Replace bool
}

// Decide runs the decision procedure, in order: defer while loading, then
// deny anonymous visitors (always — a wildcard policy never admits them),
// then turn wrongly-roled visitors away to their own dashboard, else allow.
func Decide(st AuthState, policy Policy) Decision {
	if st.Loading {
		return Decision{Action: ActionDefer}
	}
	if !st.Authenticated {
		return Decision{Action: ActionRedirect, Target: PathLogin, Replace: true}
	}
	if !policy.permits(st.Role) {
		return Decision{Action: ActionRedirect, Target: DashboardFor(st.Role), Replace: true}
	}
	return Decision{Action: ActionAllow}
}

// DashboardFor maps a role to its landing route; unrecognized roles land home.
func DashboardFor(role string) string {
	switch role {
	case domain.RoleAdmin:
		return PathAdminDashboard
	case domain.RoleEmployer:
		return PathEmployerDashboard
	case domain.RoleEmployee:
		return PathEmployeeDashboard
	default:
		return PathHome
	}
}
