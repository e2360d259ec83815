package actor

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Role represents the permission level an actor holds in the marketplace.
//
// Roles form a simple hierarchy for the purposes of the transaction lifecycle:
// guests can only read public data, buyers can submit seller applications and
// pay for their own orders, sellers retain every buyer capability, and admins
// gate the onboarding and verification transitions.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleGuest is an unauthenticated visitor. Guests may only perform
	// public reads.
	RoleGuest

	// RoleBuyer is an authenticated user without seller status.
	RoleBuyer

	// RoleSeller is an authenticated user whose seller request was approved.
	RoleSeller

	// RoleAdmin is a marketplace operator who may approve, reject, and
	// verify sellers.
	RoleAdmin
)

// getRoleStrings returns a map of Role values to their string representations.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "unknown",
		RoleGuest:   "guest",
		RoleBuyer:   "buyer",
		RoleSeller:  "seller",
		RoleAdmin:   "admin",
	}
}

// getValidRoleStrings returns only roles an actor may actually hold.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleGuest:  "guest",
		RoleBuyer:  "buyer",
		RoleSeller: "seller",
		RoleAdmin:  "admin",
	}
}

// RoleFromString parses a role name as carried in identity tokens.
// Returns an error for unrecognized names.
func RoleFromString(s string) (Role, error) {
	for role, name := range getValidRoleStrings() {
		if name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
// Valid roles are: guest, buyer, seller, admin.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the lowercase name of the role.
// Implements fmt.Stringer and is safe on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// IsAuthenticated reports whether the role belongs to a signed-in user.
func (r Role) IsAuthenticated() bool {
	return r == RoleBuyer || r == RoleSeller || r == RoleAdmin
}
