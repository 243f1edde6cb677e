package authz

import "testing"

func TestParseRole(t *testing.T) {
	cases := []struct {
		raw  string
		want Role
		ok   bool
	}{
		{"administrator", RoleAdministrator, true},
		{"Administrator", RoleAdministrator, true},
		{"  applicant  ", RoleApplicant, true},
		{"APPLICANT", RoleApplicant, true},
		{"root", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		role, ok := ParseRole(tc.raw)
		if ok != tc.ok || role != tc.want {
			t.Fatalf("ParseRole(%q) = (%q, %v), want (%q, %v)", tc.raw, role, ok, tc.want, tc.ok)
		}
	}
}

func TestRaceMutationsAreAdministratorOnly(t *testing.T) {
	for _, perm := range []Permission{PermissionRaceCreate, PermissionRaceUpdate, PermissionRaceDelete} {
		if !Allowed(RoleAdministrator, perm) {
			t.Fatalf("administrator must hold %s", perm)
		}
		if Allowed(RoleApplicant, perm) {
			t.Fatalf("applicant must not hold %s", perm)
		}
	}
}

func TestApplicantGrants(t *testing.T) {
	for _, perm := range []Permission{
		PermissionRaceRead,
		PermissionApplicationCreate,
		PermissionApplicationDelete,
		PermissionApplicationRead,
	} {
		if !Allowed(RoleApplicant, perm) {
			t.Fatalf("applicant must hold %s", perm)
		}
	}
}

func TestUnknownRoleHoldsNothing(t *testing.T) {
	if Allowed(Role("guest"), PermissionRaceRead) {
		t.Fatalf("unknown role must hold no permission")
	}
}
