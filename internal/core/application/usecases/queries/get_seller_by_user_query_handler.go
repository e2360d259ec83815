package queries

import (
	"context"
	"database/sql"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetSellerByUserQueryHandler retrieves a single seller record by owning user.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetSellerByUserQueryHandler struct {
	db *gorm.DB
}

// NewGetSellerByUserQueryHandler creates a handler for seller lookup queries.
// Requires a GORM database connection for query execution.
func NewGetSellerByUserQueryHandler(db *gorm.DB) GetSellerByUserQueryHandler {
	return GetSellerByUserQueryHandler{db: db}
}

// Handle executes the lookup for the user's seller record.
// Returns ObjectNotFound if the user has never been onboarded as a seller.
func (h GetSellerByUserQueryHandler) Handle(
	ctx context.Context,
	query GetSellerByUserQuery,
) (GetAllSellersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAllSellersQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			shop_name,
			is_verified,
			is_active,
			rating,
			total_sales,
			response_rate,
			created_at
		FROM sellers
		WHERE user_id = ?
	`, query.UserID().Bytes()).Row()

	var response GetAllSellersQueryResponse
	var id, userID uuid.UUID

	err := row.Scan(
		&id,
		&userID,
		&response.ShopName,
		&response.IsVerified,
		&response.IsActive,
		&response.Rating,
		&response.TotalSales,
		&response.ResponseRate,
		&response.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetAllSellersQueryResponse{}, errs.NewObjectNotFoundError("userID", query.UserID().String())
	}
	if err != nil {
		return GetAllSellersQueryResponse{}, err
	}

	sellerID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetAllSellersQueryResponse{}, err
	}
	response.ID = sellerID

	ownerID, err := kernel.UUIDFromBytes(userID[:])
	if err != nil {
		return GetAllSellersQueryResponse{}, err
	}
	response.UserID = ownerID

	return response, nil
}
