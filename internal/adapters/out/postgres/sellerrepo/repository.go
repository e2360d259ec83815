package sellerrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/seller"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSellerRepository implements SellerRepository using GORM.
type GormSellerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormSellerRepository creates a new GORM seller repository.
func NewGormSellerRepository(db *gorm.DB, tracker aggregateTracker) *GormSellerRepository {
	return &GormSellerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new seller to the database.
func (r *GormSellerRepository) Add(ctx context.Context, aggregate *seller.Seller) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStoreErrorWithCause("add seller", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a seller by ID.
func (r *GormSellerRepository) Get(ctx context.Context, id kernel.UUID) (*seller.Seller, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SellerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("seller", id.String())
		}
		return nil, errs.NewStoreErrorWithCause("get seller", err)
	}

	return toDomain(dto)
}

// GetByUser retrieves the seller record owned by the user.
func (r *GormSellerRepository) GetByUser(ctx context.Context, userID kernel.UUID) (*seller.Seller, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto SellerDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("userID", userID.String())
		}
		return nil, errs.NewStoreErrorWithCause("get seller by user", err)
	}

	return toDomain(dto)
}

// Update saves an existing seller to the database.
// Uses a column map so false flags and zeroed stats are written as-is.
func (r *GormSellerRepository) Update(ctx context.Context, aggregate *seller.Seller) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&SellerDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"shop_name":     dto.ShopName,
			"is_verified":   dto.IsVerified,
			"is_active":     dto.IsActive,
			"rating":        dto.Rating,
			"total_sales":   dto.TotalSales,
			"response_rate": dto.ResponseRate,
		})
	if result.Error != nil {
		return errs.NewStoreErrorWithCause("update seller", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("seller", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}
