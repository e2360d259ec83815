package postgres

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/seller"
	"marketplace/internal/core/domain/model/sellerrequest"
	"marketplace/internal/core/ports"
)

// gormSellerProvisioner creates seller records for approved requests through
// a transaction-bound seller repository.
type gormSellerProvisioner struct {
	sellers ports.SellerRepository
}

// CreateFromRequest provisions a fresh seller record for the approved
// request's applicant, carrying over the shop name. The new seller starts
// unverified and active with zeroed stats.
func (p *gormSellerProvisioner) CreateFromRequest(
	ctx context.Context,
	request *sellerrequest.SellerRequest,
) (*seller.Seller, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	s, err := seller.NewSeller(kernel.NewUUID(), request.UserID(), request.ShopName())
	if err != nil {
		return nil, err
	}

	if err = p.sellers.Add(ctx, s); err != nil {
		return nil, err
	}

	return s, nil
}
