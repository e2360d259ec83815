package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetSellerByUserQueryIsNotConstructed = errors.New(
		"GetSellerByUserQuery must be created via NewGetSellerByUserQuery constructor",
	)
)

// GetSellerByUserQuery retrieves the seller record owned by a user.
// Used by profile pages and by clients checking whether a user has been
// onboarded as a seller.
type GetSellerByUserQuery struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetSellerByUserQuery creates a query to retrieve a user's seller record.
func NewGetSellerByUserQuery(userID kernel.UUID) (GetSellerByUserQuery, error) {
	q := GetSellerByUserQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setUserID(userID); err != nil {
		return GetSellerByUserQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSellerByUserQuery) Validate() error {
	return q.guard.Validate(ErrGetSellerByUserQueryIsNotConstructed)
}

// UserID returns the identifier of the user whose seller record is requested.
func (q GetSellerByUserQuery) UserID() kernel.UUID {
	return q.userID
}

func (q *GetSellerByUserQuery) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	q.userID = userID
	return nil
}
