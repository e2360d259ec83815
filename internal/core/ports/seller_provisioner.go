package ports

import (
	"context"

	"marketplace/internal/core/domain/model/seller"
	"marketplace/internal/core/domain/model/sellerrequest"
)

// SellerProvisioner is the outbound trigger fired when a seller request is
// approved: it creates the seller record for the applicant. Implementations
// obtained from a UnitOfWork run inside the approval's transaction, so the
// status flip and the seller creation commit or roll back together.
type SellerProvisioner interface {
	// CreateFromRequest provisions a seller record for the approved request,
	// carrying over the applicant and shop details.
	CreateFromRequest(ctx context.Context, request *sellerrequest.SellerRequest) (*seller.Seller, error)
}
