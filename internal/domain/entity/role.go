// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleUser indicates a regular viewer.
	RoleUser Role = "user"
	// RoleCreator indicates a user who uploads videos.
	RoleCreator Role = "creator"
	// RoleAdmin indicates a moderator account.
	RoleAdmin Role = "admin"
	// RoleAdvertiser indicates an account tied to an advertiser profile.
	RoleAdvertiser Role = "advertiser"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleCreator, RoleAdmin, RoleAdvertiser:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
