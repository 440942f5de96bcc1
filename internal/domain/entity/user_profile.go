package entity

import "time"

// UserProfile links an identity to a role. Profiles provisioned by an admin
// start unbound (UID empty) until the person signs up with the same email.
type UserProfile struct {
	ID         string    `json:"id"`
	Role       Role      `json:"role"`
	EmployeeID string    `json:"employee_id,omitempty"`
	VendorID   string    `json:"vendor_id,omitempty"`
	Email      string    `json:"email"`
	UID        string    `json:"uid,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// IsBound reports whether the profile is linked to an identity.
func (p *UserProfile) IsBound() bool {
	return p.UID != ""
}

// Principal is the signed-in identity supplied by the identity provider.
type Principal struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
}

// Actor is the resolved caller of a use case: who they are, what role they hold,
// and which key their orders are filed under.
type Actor struct {
	Principal Principal    `json:"principal"`
	Profile   *UserProfile `json:"profile,omitempty"`
	Role      Role         `json:"role"`
	UserKey   string       `json:"user_key"`
}

// ResolveUserKey returns the key orders are filed under, in priority order:
// the profile's employee id, then the account email, then the account id.
// Changing an employee id after orders exist orphans those orders from the new key.
func ResolveUserKey(profile *UserProfile, principal Principal) string {
	if profile != nil && profile.EmployeeID != "" {
		return profile.EmployeeID
	}
	if principal.Email != "" {
		return principal.Email
	}

	return principal.ID
}

// NewActor resolves role and user key for a principal. A missing profile or role
// defaults to RoleEmployee.
func NewActor(principal Principal, profile *UserProfile) Actor {
	role := RoleEmployee
	if profile != nil {
		role = ParseRole(string(profile.Role))
	}

	return Actor{
		Principal: principal,
		Profile:   profile,
		Role:      role,
		UserKey:   ResolveUserKey(profile, principal),
	}
}
