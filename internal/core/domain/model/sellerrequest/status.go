package sellerrequest

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of a seller request.
// It implements a state machine with one-way transitions:
//
//	Pending ──┬──> Approved
//	          └──> Rejected
//
// Approved and Rejected are terminal; once a request leaves Pending no
// further transition is permitted.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly submitted request.
	// Only pending requests can be decided by an admin.
	Pending

	// Approved indicates an admin accepted the application and a seller
	// record was provisioned. Terminal.
	Approved

	// Rejected indicates an admin declined the application, recording a
	// reason. Terminal.
	Rejected
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		Pending:  "Pending",
		Approved: "Approved",
		Rejected: "Rejected",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:  "Pending",
		Approved: "Approved",
		Rejected: "Rejected",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are: Pending, Approved, Rejected.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Approved || s == Rejected
}

// Approve transitions the status to Approved.
//
// Valid transitions:
//   - Pending -> Approved
//
// Any other current status yields (0, error): the request was already
// decided and must not be re-applied.
func (s Status) Approve() (Status, error) {
	if s != Pending {
		return 0, fmt.Errorf("%s is not a valid status to approve", s.String())
	}

	return Approved, nil
}

// Reject transitions the status to Rejected.
//
// Valid transitions:
//   - Pending -> Rejected
//
// Any other current status yields (0, error); the symmetric counterpart of
// Approve but carrying a rejection reason at the aggregate level.
func (s Status) Reject() (Status, error) {
	if s != Pending {
		return 0, fmt.Errorf("%s is not a valid status to reject", s.String())
	}

	return Rejected, nil
}
