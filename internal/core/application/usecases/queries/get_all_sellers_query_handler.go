package queries

import (
	"context"
	"encoding/json"
	"time"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	sellersDirectoryCacheKey = "sellers:directory"
	sellersDirectoryCacheTTL = 30 * time.Second
)

// sellerDirectoryRow is the cache representation of one directory entry.
// Identifiers travel as strings so the payload round-trips through JSON.
type sellerDirectoryRow struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	ShopName     string    `json:"shopName"`
	IsVerified   bool      `json:"isVerified"`
	IsActive     bool      `json:"isActive"`
	Rating       float64   `json:"rating"`
	TotalSales   int       `json:"totalSales"`
	ResponseRate float64   `json:"responseRate"`
	CreatedAt    time.Time `json:"createdAt"`
}

// GetAllSellersQueryHandler retrieves the seller directory from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern,
// with a short-lived cache in front so storefront traffic does not hammer
// the sellers table. The cache is best effort: read and write failures fall
// through to the database and never fail the query.
//
// Example:
//
//	handler := NewGetAllSellersQueryHandler(db, cache)
//	query := NewGetAllSellersQuery()
//
//	sellers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get sellers: %v", err)
//	    return err
//	}
type GetAllSellersQueryHandler struct {
	db    *gorm.DB
	cache Cache
}

// NewGetAllSellersQueryHandler creates a handler for seller directory queries.
// Requires a GORM database connection; cache may be nil to disable caching.
func NewGetAllSellersQueryHandler(db *gorm.DB, cache Cache) GetAllSellersQueryHandler {
	return GetAllSellersQueryHandler{db: db, cache: cache}
}

// Handle executes the query to retrieve all sellers.
// Returns a slice of seller read models sorted by creation time, newest
// first. Converts database types to domain types for consistency.
func (h GetAllSellersQueryHandler) Handle(
	ctx context.Context,
	query GetAllSellersQuery,
) ([]GetAllSellersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if cached, ok := h.readCache(ctx); ok {
		return cached, nil
	}

	rows, err := h.db.WithContext(ctx).Raw(`
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
		ORDER BY created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	directory := make([]sellerDirectoryRow, 0)

	for rows.Next() {
		var row sellerDirectoryRow
		var id, userID uuid.UUID

		err = rows.Scan(
			&id,
			&userID,
			&row.ShopName,
			&row.IsVerified,
			&row.IsActive,
			&row.Rating,
			&row.TotalSales,
			&row.ResponseRate,
			&row.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		row.ID = id.String()
		row.UserID = userID.String()
		directory = append(directory, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	h.writeCache(ctx, directory)

	return toDirectoryResponses(directory)
}

func (h GetAllSellersQueryHandler) readCache(ctx context.Context) ([]GetAllSellersQueryResponse, bool) {
	if h.cache == nil {
		return nil, false
	}

	payload, err := h.cache.Get(ctx, sellersDirectoryCacheKey)
	if err != nil || payload == nil {
		return nil, false
	}

	var directory []sellerDirectoryRow
	if err = json.Unmarshal(payload, &directory); err != nil {
		return nil, false
	}

	responses, err := toDirectoryResponses(directory)
	if err != nil {
		return nil, false
	}

	return responses, true
}

func (h GetAllSellersQueryHandler) writeCache(ctx context.Context, directory []sellerDirectoryRow) {
	if h.cache == nil {
		return
	}

	payload, err := json.Marshal(directory)
	if err != nil {
		return
	}

	_ = h.cache.Set(ctx, sellersDirectoryCacheKey, payload, sellersDirectoryCacheTTL)
}

func toDirectoryResponses(directory []sellerDirectoryRow) ([]GetAllSellersQueryResponse, error) {
	responses := make([]GetAllSellersQueryResponse, 0, len(directory))

	for _, row := range directory {
		id, err := kernel.UUIDFromString(row.ID)
		if err != nil {
			return nil, err
		}

		userID, err := kernel.UUIDFromString(row.UserID)
		if err != nil {
			return nil, err
		}

		responses = append(responses, GetAllSellersQueryResponse{
			ID:           id,
			UserID:       userID,
			ShopName:     row.ShopName,
			IsVerified:   row.IsVerified,
			IsActive:     row.IsActive,
			Rating:       row.Rating,
			TotalSales:   row.TotalSales,
			ResponseRate: row.ResponseRate,
			CreatedAt:    row.CreatedAt,
		})
	}

	return responses, nil
}
