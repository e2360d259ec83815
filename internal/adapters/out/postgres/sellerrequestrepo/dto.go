// Package sellerrequestrepo provides data transfer objects and mapping functions
// for seller request persistence. This package implements the repository pattern
// for the seller request aggregate, handling the conversion between domain
// entities and database representations.
package sellerrequestrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/sellerrequest"

	"github.com/google/uuid"
)

// SellerRequestDTO represents the database structure for persisting seller
// request aggregates. The unique index on UserID backs the
// one-application-per-user rule at the storage level, and the status index
// serves the admin review backlog query.
type SellerRequestDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	UserName        string
	UserEmail       string
	ShopName        string
	Phone           string
	SellingType     string
	PaymentMethod   string
	PaymentAccount  string
	Status          int `gorm:"index"`
	RejectionReason *string
	RejectedAt      *time.Time
	CreatedAt       time.Time
}

// TableName specifies the database table name for seller request entities.
// Overrides GORM's default naming convention to use "seller_requests".
func (SellerRequestDTO) TableName() string {
	return "seller_requests"
}

// fromDomain converts a seller request domain aggregate to its database
// representation. Rejection fields are stored as NULL for non-rejected
// requests.
func fromDomain(request *sellerrequest.SellerRequest) SellerRequestDTO {
	var rejectionReason *string
	if reason := request.RejectionReason(); reason != "" {
		rejectionReason = &reason
	}

	return SellerRequestDTO{
		ID:              request.ID().Bytes(),
		UserID:          request.UserID().Bytes(),
		UserName:        request.UserName(),
		UserEmail:       request.UserEmail(),
		ShopName:        request.ShopName(),
		Phone:           request.Phone(),
		SellingType:     request.SellingType(),
		PaymentMethod:   request.PaymentMethod(),
		PaymentAccount:  request.PaymentAccount(),
		Status:          int(request.Status()),
		RejectionReason: rejectionReason,
		RejectedAt:      request.RejectedAt(),
		CreatedAt:       request.CreatedAt(),
	}
}

// toDomain converts a database DTO to a seller request domain aggregate
// using RestoreSellerRequest, which re-validates status consistency.
func toDomain(dto SellerRequestDTO) (*sellerrequest.SellerRequest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	var rejectionReason string
	if dto.RejectionReason != nil {
		rejectionReason = *dto.RejectionReason
	}

	return sellerrequest.RestoreSellerRequest(
		id,
		userID,
		dto.UserName,
		dto.UserEmail,
		dto.ShopName,
		dto.Phone,
		dto.SellingType,
		dto.PaymentMethod,
		dto.PaymentAccount,
		sellerrequest.Status(dto.Status),
		rejectionReason,
		dto.RejectedAt,
		dto.CreatedAt,
	)
}
