package services_test

import (
	"testing"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustActor(t *testing.T, role actor.Role) actor.Actor {
	t.Helper()
	a, err := actor.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return a
}

func TestAccessGate_Authorize(t *testing.T) {
	gate := services.NewAccessGate()

	t.Run("authenticated requirement", func(t *testing.T) {
		for _, role := range []actor.Role{actor.RoleBuyer, actor.RoleSeller, actor.RoleAdmin} {
			err := gate.Authorize(mustActor(t, role), services.RequireAuthenticated, "submit seller request")
			assert.NoError(t, err, role.String())
		}

		err := gate.Authorize(actor.Guest(), services.RequireAuthenticated, "submit seller request")
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("seller-or-admin requirement", func(t *testing.T) {
		assert.NoError(t, gate.Authorize(mustActor(t, actor.RoleSeller), services.RequireSellerOrAdmin, "manage listing"))
		assert.NoError(t, gate.Authorize(mustActor(t, actor.RoleAdmin), services.RequireSellerOrAdmin, "manage listing"))

		err := gate.Authorize(mustActor(t, actor.RoleBuyer), services.RequireSellerOrAdmin, "manage listing")
		assert.ErrorIs(t, err, errs.ErrForbidden)

		err = gate.Authorize(actor.Guest(), services.RequireSellerOrAdmin, "manage listing")
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("admin requirement", func(t *testing.T) {
		assert.NoError(t, gate.Authorize(mustActor(t, actor.RoleAdmin), services.RequireAdmin, "approve seller request"))

		for _, role := range []actor.Role{actor.RoleBuyer, actor.RoleSeller} {
			err := gate.Authorize(mustActor(t, role), services.RequireAdmin, "approve seller request")
			assert.ErrorIs(t, err, errs.ErrForbidden, role.String())
		}

		err := gate.Authorize(actor.Guest(), services.RequireAdmin, "approve seller request")
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("unconstructed actor is unauthenticated", func(t *testing.T) {
		var zero actor.Actor
		err := gate.Authorize(zero, services.RequireAuthenticated, "submit seller request")
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("unknown requirement is invalid", func(t *testing.T) {
		err := gate.Authorize(mustActor(t, actor.RoleAdmin), services.RequirementUnknown, "anything")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("denial reports role and operation", func(t *testing.T) {
		err := gate.Authorize(mustActor(t, actor.RoleBuyer), services.RequireAdmin, "verify seller")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "buyer")
		assert.Contains(t, err.Error(), "verify seller")
	})
}

func TestRequirement_String(t *testing.T) {
	assert.Equal(t, "authenticated", services.RequireAuthenticated.String())
	assert.Equal(t, "seller-or-admin", services.RequireSellerOrAdmin.String())
	assert.Equal(t, "admin", services.RequireAdmin.String())
	assert.Equal(t, "unknown", services.RequirementUnknown.String())
}
