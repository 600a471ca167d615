package routing

import (
	"testing"

	"github.com/careerhub/jobboard-client/internal/core/domain"
)

func TestNavFor_RoleListsAreFixedAndDisjoint(t *testing.T) {
	roles := []string{domain.RoleAdmin, domain.RoleEmployer, domain.RoleEmployee}
	seen := make(map[string]string)

	for _, role := range roles {
		entries, dashboard := NavFor(role)
		if len(entries) == 0 {
			t.Fatalf("role %s has no navigation", role)
		}
		if dashboard != DashboardFor(role) {
			t.Fatalf("role %s dashboard %q != DashboardFor %q", role, dashboard, DashboardFor(role))
		}
		for _, entry := range entries {
			if owner, dup := seen[entry.Path]; dup {
				t.Fatalf("path %q appears for both %s and %s", entry.Path, owner, role)
			}
			seen[entry.Path] = role
		}
	}
}

func TestNavFor_AnonymousIsHomeOnly(t *testing.T) {
	for _, role := range []string{"", "UNKNOWN"} {
		entries, dashboard := NavFor(role)
		if len(entries) != 1 || entries[0].Path != PathHome {
			t.Fatalf("role %q: expected home-only navigation, got %+v", role, entries)
		}
		if dashboard != PathHome {
			t.Fatalf("role %q: expected home dashboard, got %q", role, dashboard)
		}
	}
}

func TestNavFor_Deterministic(t *testing.T) {
	first, _ := NavFor(domain.RoleEmployer)
	second, _ := NavFor(domain.RoleEmployer)
	if len(first) != len(second) {
		t.Fatalf("navigation derivation is not stable")
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("entry %d differs between derivations", i)
		}
	}
}
