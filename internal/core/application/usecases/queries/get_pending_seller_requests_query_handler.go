package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/sellerrequest"
	"marketplace/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingSellerRequestsQueryHandler retrieves the admin review backlog
// from the database. Uses direct SQL queries for optimal read performance in
// the CQRS pattern.
//
// Example:
//
//	handler := NewGetPendingSellerRequestsQueryHandler(db)
//	query := NewGetPendingSellerRequestsQuery(adminActor)
//
//	backlog, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get review backlog: %w", err)
//	}
//
//	fmt.Printf("%d applications awaiting review\n", len(backlog))
type GetPendingSellerRequestsQueryHandler struct {
	db   *gorm.DB
	gate services.AccessGate
}

// NewGetPendingSellerRequestsQueryHandler creates a handler for backlog queries.
// Requires a GORM database connection for query execution.
func NewGetPendingSellerRequestsQueryHandler(db *gorm.DB) GetPendingSellerRequestsQueryHandler {
	return GetPendingSellerRequestsQueryHandler{
		db:   db,
		gate: services.NewAccessGate(),
	}
}

// Handle executes the query to retrieve pending applications.
// Only admins may read the backlog. Returns applications sorted by
// submission time, newest first.
func (h GetPendingSellerRequestsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingSellerRequestsQuery,
) ([]GetPendingSellerRequestsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.gate.Authorize(query.Actor(), services.RequireAdmin, "list pending seller requests"); err != nil {
		return nil, err
	}

	requests := make([]GetPendingSellerRequestsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			user_name,
			user_email,
			shop_name,
			phone,
			selling_type,
			payment_method,
			created_at
		FROM seller_requests
		WHERE status = ?
		ORDER BY created_at DESC
	`, int(sellerrequest.Pending)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var request GetPendingSellerRequestsQueryResponse
		var id, userID uuid.UUID

		err = rows.Scan(
			&id,
			&userID,
			&request.UserName,
			&request.UserEmail,
			&request.ShopName,
			&request.Phone,
			&request.SellingType,
			&request.PaymentMethod,
			&request.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		requestID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		request.ID = requestID

		applicantID, idErr := kernel.UUIDFromBytes(userID[:])
		if idErr != nil {
			return nil, idErr
		}
		request.UserID = applicantID

		requests = append(requests, request)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}
