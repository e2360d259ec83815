package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetPendingSellerRequestsQueryIsNotConstructed = errors.New(
		"GetPendingSellerRequestsQuery must be created via NewGetPendingSellerRequestsQuery constructor",
	)
)

// GetPendingSellerRequestsQuery retrieves the admin review backlog: all
// seller applications still waiting for a decision, newest first. Carries
// the requesting actor because the backlog is admin-only.
type GetPendingSellerRequestsQuery struct {
	actor actor.Actor

	guard guard.ConstructorGuard
}

// NewGetPendingSellerRequestsQuery creates a query for the review backlog.
// The admin role is checked by the handler's authorization gate.
func NewGetPendingSellerRequestsQuery(act actor.Actor) GetPendingSellerRequestsQuery {
	return GetPendingSellerRequestsQuery{
		actor: act,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingSellerRequestsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingSellerRequestsQueryIsNotConstructed)
}

// Actor returns the actor requesting the backlog.
func (q GetPendingSellerRequestsQuery) Actor() actor.Actor {
	return q.actor
}

// GetPendingSellerRequestsQueryResponse represents one pending application
// in the review backlog.
type GetPendingSellerRequestsQueryResponse struct {
	ID            kernel.UUID
	UserID        kernel.UUID
	UserName      string
	UserEmail     string
	ShopName      string
	Phone         string
	SellingType   string
	PaymentMethod string
	CreatedAt     time.Time
}
