package routing

import "github.com/careerhub/jobboard-client/internal/core/domain"

// NavEntry is one rendered navigation link.
type NavEntry struct {
	Label string
	Path  string
}

// NavFor derives the ordered navigation entries and the "go to your
// dashboard" destination for a role. Each role maps to a fixed, disjoint
// list; an anonymous visitor or unrecognized role gets a home-only result.
// The derivation holds no state and must be recomputed whenever the Identity
// changes.
func NavFor(role string) ([]NavEntry, string) {
	switch role {
	case domain.RoleAdmin:
		return []NavEntry{
			{Label: "Dashboard", Path: PathAdminDashboard},
			{Label: "Categories", Path: "/admin/categories"},
			{Label: "Accounts", Path: "/admin/accounts"},
		}, PathAdminDashboard
	case domain.RoleEmployer:
		return []NavEntry{
			{Label: "Dashboard", Path: PathEmployerDashboard},
			{Label: "Post a Job", Path: "/employer/jobs/new"},
			{Label: "My Jobs", Path: "/employer/jobs"},
			{Label: "Applicants", Path: "/employer/applicants"},
		}, PathEmployerDashboard
	case domain.RoleEmployee:
		return []NavEntry{
			{Label: "Dashboard", Path: PathEmployeeDashboard},
			{Label: "Browse Jobs", Path: "/jobs"},
			{Label: "My Applications", Path: "/employee/applications"},
			{Label: "Profile", Path: "/employee/profile"},
		}, PathEmployeeDashboard
	default:
		return []NavEntry{
			{Label: "Home", Path: PathHome},
		}, PathHome
	}
}
