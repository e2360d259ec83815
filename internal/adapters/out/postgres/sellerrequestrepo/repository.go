package sellerrequestrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/sellerrequest"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSellerRequestRepository implements SellerRequestRepository using GORM.
type GormSellerRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormSellerRequestRepository creates a new GORM seller request repository.
func NewGormSellerRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormSellerRequestRepository {
	return &GormSellerRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new seller request to the database.
// The unique index on user_id turns a concurrent double submission into
// AlreadyApplied rather than a second row.
func (r *GormSellerRequestRepository) Add(ctx context.Context, aggregate *sellerrequest.SellerRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewAlreadyAppliedError(aggregate.UserID().String())
		}
		return errs.NewStoreErrorWithCause("add seller request", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a seller request by ID.
func (r *GormSellerRequestRepository) Get(ctx context.Context, id kernel.UUID) (*sellerrequest.SellerRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SellerRequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("sellerRequest", id.String())
		}
		return nil, errs.NewStoreErrorWithCause("get seller request", err)
	}

	return toDomain(dto)
}

// ExistsForUser reports whether any request exists for the user, in any status.
func (r *GormSellerRequestRepository) ExistsForUser(ctx context.Context, userID kernel.UUID) (bool, error) {
	if err := userID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&SellerRequestDTO{}).
		Where("user_id = ?", userID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, errs.NewStoreErrorWithCause("check seller request existence", err)
	}

	return count > 0, nil
}

// UpdateFromPending persists an admin decision with a conditional update on
// the stored status still being pending. When zero rows match, a follow-up
// read tells apart a missing request from one that was already decided.
func (r *GormSellerRequestRepository) UpdateFromPending(
	ctx context.Context,
	aggregate *sellerrequest.SellerRequest,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&SellerRequestDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(sellerrequest.Pending)).
		Updates(map[string]any{
			"status":           dto.Status,
			"rejection_reason": dto.RejectionReason,
			"rejected_at":      dto.RejectedAt,
		})
	if result.Error != nil {
		return errs.NewStoreErrorWithCause("update seller request", result.Error)
	}

	if result.RowsAffected == 0 {
		var count int64
		err := r.db.WithContext(ctx).
			Model(&SellerRequestDTO{}).
			Where("id = ?", dto.ID).
			Count(&count).Error
		if err != nil {
			return errs.NewStoreErrorWithCause("update seller request", err)
		}

		if count == 0 {
			return errs.NewObjectNotFoundError("sellerRequest", aggregate.ID().String())
		}
		return errs.NewAlreadyProcessedError("sellerRequest", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}
