package seller_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/seller"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeller(t *testing.T) {
	t.Run("should create seller with defaults", func(t *testing.T) {
		id := kernel.NewUUID()
		userID := kernel.NewUUID()

		s, err := seller.NewSeller(id, userID, "Shop A")

		require.NoError(t, err)
		assert.NoError(t, s.Validate())
		assert.True(t, s.ID().IsEqual(id))
		assert.True(t, s.UserID().IsEqual(userID))
		assert.Equal(t, "Shop A", s.ShopName())
		assert.False(t, s.IsVerified())
		assert.True(t, s.IsActive())
		assert.Zero(t, s.Rating())
		assert.Zero(t, s.TotalSales())
		assert.Zero(t, s.ResponseRate())
		assert.WithinDuration(t, time.Now().UTC(), s.CreatedAt(), time.Minute)
	})

	t.Run("should reject invalid ids", func(t *testing.T) {
		_, err := seller.NewSeller(kernel.UUID{}, kernel.NewUUID(), "Shop A")
		assert.Error(t, err)

		_, err = seller.NewSeller(kernel.NewUUID(), kernel.UUID{}, "Shop A")
		assert.Error(t, err)
	})

	t.Run("should require shop name", func(t *testing.T) {
		_, err := seller.NewSeller(kernel.NewUUID(), kernel.NewUUID(), "  ")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestSeller_Verify(t *testing.T) {
	t.Run("marks seller verified", func(t *testing.T) {
		s, err := seller.NewSeller(kernel.NewUUID(), kernel.NewUUID(), "Shop A")
		require.NoError(t, err)

		s.Verify()
		assert.True(t, s.IsVerified())
	})

	t.Run("is idempotent", func(t *testing.T) {
		s, err := seller.NewSeller(kernel.NewUUID(), kernel.NewUUID(), "Shop A")
		require.NoError(t, err)

		s.Verify()
		s.Verify()
		assert.True(t, s.IsVerified())
		assert.True(t, s.IsActive())
		assert.Zero(t, s.Rating())
	})
}

func TestRestoreSeller(t *testing.T) {
	id := kernel.NewUUID()
	userID := kernel.NewUUID()
	createdAt := time.Now().UTC().Add(-time.Hour)

	t.Run("restores a seller with stats", func(t *testing.T) {
		s, err := seller.RestoreSeller(id, userID, "Shop A", true, true, 4.5, 37, 92.5, createdAt)

		require.NoError(t, err)
		assert.True(t, s.IsVerified())
		assert.InDelta(t, 4.5, s.Rating(), 0.001)
		assert.Equal(t, 37, s.TotalSales())
		assert.InDelta(t, 92.5, s.ResponseRate(), 0.001)
		assert.Equal(t, createdAt, s.CreatedAt())
	})

	t.Run("rejects out-of-range rating", func(t *testing.T) {
		_, err := seller.RestoreSeller(id, userID, "Shop A", false, true, 5.5, 0, 0, createdAt)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = seller.RestoreSeller(id, userID, "Shop A", false, true, -0.1, 0, 0, createdAt)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects out-of-range response rate", func(t *testing.T) {
		_, err := seller.RestoreSeller(id, userID, "Shop A", false, true, 0, 0, 100.5, createdAt)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects negative total sales", func(t *testing.T) {
		_, err := seller.RestoreSeller(id, userID, "Shop A", false, true, 0, -1, 0, createdAt)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestSeller_Validate(t *testing.T) {
	var s seller.Seller
	assert.ErrorIs(t, s.Validate(), seller.ErrSellerIsNotConstructed)

	var nilSeller *seller.Seller
	assert.ErrorIs(t, nilSeller.Validate(), seller.ErrSellerIsNotConstructed)
}
