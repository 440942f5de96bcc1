// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"strings"
)

// Role represents the type of role a profile can have in the system.
type Role string

const (
	// RoleEmployee places and cancels their own orders.
	RoleEmployee Role = "employee"
	// RoleVendor manages the menu and advances order status.
	RoleVendor Role = "vendor"
	// RoleAdmin provisions profiles and observes the full order set.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleEmployee, RoleVendor, RoleAdmin:
		return true
	default:
		return false
	}
}

// ParseRole normalizes a stored role value. Missing or unknown roles fall back to RoleEmployee.
func ParseRole(s string) Role {
	role := Role(strings.ToLower(strings.TrimSpace(s)))
	if !role.IsValid() {
		return RoleEmployee
	}

	return role
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
