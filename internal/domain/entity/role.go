// Package entity contains the core business objects of the project.
package entity

// Role represents an access role users and records are grouped under.
// Roles are data rows, not a closed enum; the well-known names below are
// seeded at install time.
type Role struct {
	ID   int64  // Numeric identifier for the role.
	Name string // Unique role name, e.g. "admin" or "user".
}

// Well-known role names.
const (
	RoleNameAdmin = "admin"
	RoleNameUser  = "user"
)

// RoleWithUsers is a projection of a role together with the users assigned to it.
type RoleWithUsers struct {
	Role
	Users []User
}
