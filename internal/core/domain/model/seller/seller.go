package seller

import (
	"errors"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrSellerIsNotConstructed is returned when a Seller instance was not created
	// through the NewSeller or RestoreSeller factory functions.
	ErrSellerIsNotConstructed = errors.New("Seller must be created via NewSeller or RestoreSeller")
)

// Rating and response-rate bounds enforced when restoring from persistence.
const (
	minRating       = 0.0
	maxRating       = 5.0
	minResponseRate = 0.0
	maxResponseRate = 100.0
)

// Seller represents an approved, active seller account.
//
// Seller follows these invariants:
//   - Must have valid unique identifier and owner identifier
//   - Exists only for users whose seller request was approved
//   - New sellers start unverified, active, with rating 0, no sales, and a
//     zero response rate; defaults are assigned here, not by the store
//   - Verification is idempotent: Verify on a verified seller changes nothing
type Seller struct {
	// id is the unique identifier for the seller record
	id kernel.UUID

	// userID identifies the owning user; one seller record per user
	userID kernel.UUID

	// shopName is carried over from the approved request
	shopName string

	// isVerified marks sellers vetted by an admin
	isVerified bool

	// isActive marks sellers currently allowed to trade
	isActive bool

	// rating is the aggregate review score, 0 to 5
	rating float64

	// totalSales counts completed orders
	totalSales int

	// responseRate is the percentage of buyer messages answered, 0 to 100
	responseRate float64

	// createdAt is the provisioning time
	createdAt time.Time

	// isConstructed ensures the seller was created via a factory function
	isConstructed bool
}

// NewSeller creates a fresh Seller record for an approved applicant.
// The record starts unverified and active with zeroed stats.
func NewSeller(id kernel.UUID, userID kernel.UUID, shopName string) (*Seller, error) {
	s := &Seller{
		isVerified:    false,
		isActive:      true,
		rating:        0,
		totalSales:    0,
		responseRate:  0,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setUserID(userID),
		s.setShopName(shopName),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreSeller reconstructs a Seller from persistence, validating that the
// stored stats are within their allowed bounds.
func RestoreSeller(
	id kernel.UUID,
	userID kernel.UUID,
	shopName string,
	isVerified bool,
	isActive bool,
	rating float64,
	totalSales int,
	responseRate float64,
	createdAt time.Time,
) (*Seller, error) {
	if err := errors.Join(
		id.Validate(),
		userID.Validate(),
	); err != nil {
		return nil, err
	}

	if rating < minRating || rating > maxRating {
		return nil, errs.NewValueIsOutOfRangeError("rating", rating, minRating, maxRating)
	}
	if responseRate < minResponseRate || responseRate > maxResponseRate {
		return nil, errs.NewValueIsOutOfRangeError("responseRate", responseRate, minResponseRate, maxResponseRate)
	}
	if totalSales < 0 {
		return nil, errs.NewValueIsInvalidError("totalSales")
	}

	return &Seller{
		id:            id,
		userID:        userID,
		shopName:      shopName,
		isVerified:    isVerified,
		isActive:      isActive,
		rating:        rating,
		totalSales:    totalSales,
		responseRate:  responseRate,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Seller instance was properly constructed.
func (s *Seller) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSellerIsNotConstructed
	}
	return nil
}

// IsEqual compares two sellers by their unique identifiers.
func (s *Seller) IsEqual(other *Seller) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the seller's unique identifier.
func (s *Seller) ID() kernel.UUID {
	return s.id
}

// UserID returns the owning user's identifier.
func (s *Seller) UserID() kernel.UUID {
	return s.userID
}

// ShopName returns the seller's shop name.
func (s *Seller) ShopName() string {
	return s.shopName
}

// IsVerified reports whether an admin has verified the seller.
func (s *Seller) IsVerified() bool {
	return s.isVerified
}

// IsActive reports whether the seller is currently allowed to trade.
func (s *Seller) IsActive() bool {
	return s.isActive
}

// Rating returns the aggregate review score.
func (s *Seller) Rating() float64 {
	return s.rating
}

// TotalSales returns the number of completed sales.
func (s *Seller) TotalSales() int {
	return s.totalSales
}

// ResponseRate returns the percentage of buyer messages answered.
func (s *Seller) ResponseRate() float64 {
	return s.responseRate
}

// CreatedAt returns the provisioning time.
func (s *Seller) CreatedAt() time.Time {
	return s.createdAt
}

// Verify marks the seller as verified. Idempotent: verifying an
// already-verified seller is a no-op, not an error. No other field changes.
func (s *Seller) Verify() {
	s.isVerified = true
}

func (s *Seller) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Seller) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	s.userID = userID
	return nil
}

func (s *Seller) setShopName(shopName string) error {
	shopName = strings.TrimSpace(shopName)
	if shopName == "" {
		return errs.NewValueIsRequiredError("shopName")
	}
	s.shopName = shopName
	return nil
}
