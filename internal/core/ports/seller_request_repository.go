package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/sellerrequest"
)

// SellerRequestRepository defines the persistence contract for seller request
// aggregates. Every transition re-reads current state through Get immediately
// before deciding, and applies decisions through UpdateFromPending so two
// concurrent admins cannot both win.
type SellerRequestRepository interface {
	// Add persists a new seller request. Returns AlreadyApplied if a request
	// already exists for the same user, whatever its status.
	Add(ctx context.Context, aggregate *sellerrequest.SellerRequest) error

	// Get retrieves a seller request by its unique identifier.
	// Returns ObjectNotFound if no such request exists.
	Get(ctx context.Context, id kernel.UUID) (*sellerrequest.SellerRequest, error)

	// ExistsForUser reports whether any request, of any status, exists for
	// the user. Used to enforce the one-application-per-user rule.
	ExistsForUser(ctx context.Context, userID kernel.UUID) (bool, error)

	// UpdateFromPending persists an admin decision as an atomic conditional
	// update guarded on the stored status still being pending. Returns
	// AlreadyProcessed if another decision won the race, and ObjectNotFound
	// if the request does not exist.
	UpdateFromPending(ctx context.Context, aggregate *sellerrequest.SellerRequest) error
}
