package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/seller"
)

// SellerRepository defines the persistence contract for seller aggregates.
type SellerRepository interface {
	// Add persists a newly provisioned seller record.
	Add(ctx context.Context, aggregate *seller.Seller) error

	// Get retrieves a seller by its unique identifier.
	// Returns ObjectNotFound if no such seller exists.
	Get(ctx context.Context, id kernel.UUID) (*seller.Seller, error)

	// GetByUser retrieves the seller record owned by the given user.
	// Returns ObjectNotFound if the user has no seller record.
	GetByUser(ctx context.Context, userID kernel.UUID) (*seller.Seller, error)

	// Update persists changes to an existing seller aggregate.
	Update(ctx context.Context, aggregate *seller.Seller) error
}
