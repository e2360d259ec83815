package services

import (
	"fmt"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/pkg/errs"
)

// Requirement expresses the minimum access level an operation demands.
type Requirement int

const (
	// RequirementUnknown represents an invalid or undefined requirement.
	RequirementUnknown Requirement = iota

	// RequireAuthenticated admits any signed-in actor.
	RequireAuthenticated

	// RequireSellerOrAdmin admits sellers and admins.
	RequireSellerOrAdmin

	// RequireAdmin admits admins only.
	RequireAdmin
)

// String returns the human-readable name of the requirement.
func (r Requirement) String() string {
	switch r {
	case RequireAuthenticated:
		return "authenticated"
	case RequireSellerOrAdmin:
		return "seller-or-admin"
	case RequireAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// AccessGate is the pure authorization decision consulted before every state
// transition. It has no side effects and performs no I/O; the actor is
// resolved by the identity adapter and passed in.
//
// Decision rules:
//   - An absent or guest actor is denied with Unauthenticated whenever any
//     authentication is required
//   - An authenticated actor whose role does not satisfy the requirement is
//     denied with Forbidden
//
// Example usage:
//
//	gate := services.NewAccessGate()
//	if err := gate.Authorize(act, services.RequireAdmin, "approve seller request"); err != nil {
//	    return err
//	}
//	// proceed with the transition
type AccessGate struct{}

// NewAccessGate creates a new AccessGate instance.
func NewAccessGate() AccessGate {
	return AccessGate{}
}

// Authorize decides whether the actor may perform the named operation.
// Returns nil to allow, UnauthenticatedError or ForbiddenError to deny.
func (AccessGate) Authorize(a actor.Actor, requirement Requirement, operationName string) error {
	if err := a.Validate(); err != nil {
		return errs.NewUnauthenticatedError(operationName)
	}

	switch requirement {
	case RequireAuthenticated:
		if !a.IsAuthenticated() {
			return errs.NewUnauthenticatedError(operationName)
		}
		return nil

	case RequireSellerOrAdmin:
		if !a.IsAuthenticated() {
			return errs.NewUnauthenticatedError(operationName)
		}
		if a.Role() != actor.RoleSeller && a.Role() != actor.RoleAdmin {
			return errs.NewForbiddenError(operationName, a.Role().String())
		}
		return nil

	case RequireAdmin:
		if !a.IsAuthenticated() {
			return errs.NewUnauthenticatedError(operationName)
		}
		if !a.IsAdmin() {
			return errs.NewForbiddenError(operationName, a.Role().String())
		}
		return nil

	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"requirement",
			fmt.Errorf("%d is not a valid access requirement", requirement),
		)
	}
}
