package authz

import "strings"

// Role is the opaque claim produced by the authentication gate in front of
// both services. The gate itself is external; this package only decides
// whether a claim carries a given permission.
type Role string

const (
	RoleAdministrator Role = "administrator"
	RoleApplicant     Role = "applicant"
)

func ParseRole(raw string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(RoleAdministrator):
		return RoleAdministrator, true
	case string(RoleApplicant):
		return RoleApplicant, true
	default:
		return "", false
	}
}

type Permission string

const (
	PermissionRaceCreate        Permission = "race.create"
	PermissionRaceUpdate        Permission = "race.update"
	PermissionRaceDelete        Permission = "race.delete"
	PermissionRaceRead          Permission = "race.read"
	PermissionApplicationCreate Permission = "application.create"
	PermissionApplicationDelete Permission = "application.delete"
	PermissionApplicationRead   Permission = "application.read"
)

// Race mutations are administrator-only. Application deletion is granted to
// every authenticated role, with no ownership check.
var grants = map[Role]map[Permission]struct{}{
	RoleAdministrator: {
		PermissionRaceCreate:        {},
		PermissionRaceUpdate:        {},
		PermissionRaceDelete:        {},
		PermissionRaceRead:          {},
		PermissionApplicationCreate: {},
		PermissionApplicationDelete: {},
		PermissionApplicationRead:   {},
	},
	RoleApplicant: {
		PermissionRaceRead:          {},
		PermissionApplicationCreate: {},
		PermissionApplicationDelete: {},
		PermissionApplicationRead:   {},
	},
}

// Allowed reports whether the role claim carries the required permission.
func Allowed(role Role, permission Permission) bool {
	perms, ok := grants[role]
	if !ok {
		return false
	}
	_, ok = perms[permission]
	return ok
}
