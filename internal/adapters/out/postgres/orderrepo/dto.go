// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by buyer for ownership lookups and by payment status for the
// conditional payment-confirmation update.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	BuyerID       uuid.UUID `gorm:"type:uuid;index"`
	SellerID      uuid.UUID `gorm:"type:uuid;index"`
	AccountID     uuid.UUID `gorm:"type:uuid"`
	Status        int
	PaymentStatus int `gorm:"index"`
	CreatedAt     time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:            o.ID().Bytes(),
		BuyerID:       o.BuyerID().Bytes(),
		SellerID:      o.SellerID().Bytes(),
		AccountID:     o.AccountID().Bytes(),
		Status:        int(o.Status()),
		PaymentStatus: int(o.Payment()),
		CreatedAt:     o.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder, which re-validates status and payment consistency.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}

	accountID, err := kernel.UUIDFromBytes(dto.AccountID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		buyerID,
		sellerID,
		accountID,
		order.Status(dto.Status),
		order.PaymentStatus(dto.PaymentStatus),
		dto.CreatedAt,
	)
}
