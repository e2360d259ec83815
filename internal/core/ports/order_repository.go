package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// This core only confirms payments; order creation at checkout happens
// elsewhere, but Add is part of the contract so provisioning code and tests
// can seed orders.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	// Returns ObjectNotFound if no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateFromPendingPayment persists the coupled payment-confirmation
	// transition as an atomic conditional update guarded on the stored
	// payment status still being pending. Returns AlreadyProcessed if the
	// payment already settled, and ObjectNotFound if the order does not
	// exist.
	UpdateFromPendingPayment(ctx context.Context, aggregate *order.Order) error
}
