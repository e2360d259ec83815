// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetAllSellersQueryIsNotConstructed = errors.New(
		"GetAllSellersQuery must be created via NewGetAllSellersQuery constructor",
	)
)

// GetAllSellersQuery retrieves the public seller directory.
// Returns every seller record, newest first, for browsing and storefront
// listings. The directory is public, so no actor is required.
//
// Example:
//
//	query := NewGetAllSellersQuery()
//	handler := NewGetAllSellersQueryHandler(db, cache)
//
//	sellers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve sellers: %w", err)
//	}
//
//	fmt.Printf("Found %d sellers\n", len(sellers))
type GetAllSellersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllSellersQuery creates a query to retrieve all sellers.
// This is a parameterless query that fetches the complete seller directory.
func NewGetAllSellersQuery() GetAllSellersQuery {
	return GetAllSellersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllSellersQueryIsNotConstructed if validation fails.
func (q GetAllSellersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllSellersQueryIsNotConstructed)
}

// GetAllSellersQueryResponse represents seller information in the read model.
// Contains the directory fields shown on storefront listings.
type GetAllSellersQueryResponse struct {
	ID           kernel.UUID
	UserID       kernel.UUID
	ShopName     string
	IsVerified   bool
	IsActive     bool
	Rating       float64
	TotalSales   int
	ResponseRate float64
	CreatedAt    time.Time
}
