// Package sellerrepo provides data transfer objects and mapping functions for
// seller persistence. This package implements the repository pattern for the
// seller aggregate, handling the conversion between domain entities and
// database representations.
package sellerrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/seller"

	"github.com/google/uuid"
)

// SellerDTO represents the database structure for persisting seller aggregates.
// The unique index on UserID reflects that a user owns at most one seller
// record.
type SellerDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	ShopName     string
	IsVerified   bool
	IsActive     bool
	Rating       float64
	TotalSales   int
	ResponseRate float64
	CreatedAt    time.Time
}

// TableName specifies the database table name for seller entities.
// Overrides GORM's default naming convention to use "sellers".
func (SellerDTO) TableName() string {
	return "sellers"
}

// fromDomain converts a seller domain aggregate to its database representation.
func fromDomain(s *seller.Seller) SellerDTO {
	return SellerDTO{
		ID:           s.ID().Bytes(),
		UserID:       s.UserID().Bytes(),
		ShopName:     s.ShopName(),
		IsVerified:   s.IsVerified(),
		IsActive:     s.IsActive(),
		Rating:       s.Rating(),
		TotalSales:   s.TotalSales(),
		ResponseRate: s.ResponseRate(),
		CreatedAt:    s.CreatedAt(),
	}
}

// toDomain converts a database DTO to a seller domain aggregate using
// RestoreSeller, which re-validates the stored stats bounds.
func toDomain(dto SellerDTO) (*seller.Seller, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return seller.RestoreSeller(
		id,
		userID,
		dto.ShopName,
		dto.IsVerified,
		dto.IsActive,
		dto.Rating,
		dto.TotalSales,
		dto.ResponseRate,
		dto.CreatedAt,
	)
}
