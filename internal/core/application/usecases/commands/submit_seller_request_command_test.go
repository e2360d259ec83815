package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubmitSellerRequestCommand_ValidInput(t *testing.T) {
	act, err := actor.NewActor(kernel.NewUUID(), actor.RoleBuyer)
	require.NoError(t, err)
	id := kernel.NewUUID()

	cmd, err := commands.NewSubmitSellerRequestCommand(
		act, id,
		"Alice", "alice@example.com",
		"Shop A", "+1-555-0101", "game accounts", "bank transfer", "DE89370400440532013000",
	)
	require.NoError(t, err)
	assert.Equal(t, act, cmd.Actor())
	assert.Equal(t, id, cmd.RequestID())
	assert.Equal(t, "Alice", cmd.UserName())
	assert.Equal(t, "alice@example.com", cmd.UserEmail())
	assert.Equal(t, "Shop A", cmd.ShopName())
	assert.Equal(t, "+1-555-0101", cmd.Phone())
	assert.Equal(t, "game accounts", cmd.SellingType())
	assert.Equal(t, "bank transfer", cmd.PaymentMethod())
	assert.Equal(t, "DE89370400440532013000", cmd.PaymentAccount())
}

func TestNewSubmitSellerRequestCommand_TrimsFields(t *testing.T) {
	act, err := actor.NewActor(kernel.NewUUID(), actor.RoleBuyer)
	require.NoError(t, err)

	cmd, err := commands.NewSubmitSellerRequestCommand(
		act, kernel.NewUUID(),
		"  Alice  ", " alice@example.com ",
		"  Shop A  ", " +1-555-0101 ", " accounts ", " card ", " 4242 ",
	)
	require.NoError(t, err)
	assert.Equal(t, "Alice", cmd.UserName())
	assert.Equal(t, "alice@example.com", cmd.UserEmail())
	assert.Equal(t, "Shop A", cmd.ShopName())
	assert.Equal(t, "+1-555-0101", cmd.Phone())
}

func TestNewSubmitSellerRequestCommand_InvalidRequestID(t *testing.T) {
	act, err := actor.NewActor(kernel.NewUUID(), actor.RoleBuyer)
	require.NoError(t, err)

	_, err = commands.NewSubmitSellerRequestCommand(
		act, kernel.UUID{},
		"Alice", "alice@example.com",
		"Shop A", "", "", "", "",
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewSubmitSellerRequestCommand_EmptyShopName(t *testing.T) {
	act, err := actor.NewActor(kernel.NewUUID(), actor.RoleBuyer)
	require.NoError(t, err)

	_, err = commands.NewSubmitSellerRequestCommand(
		act, kernel.NewUUID(),
		"Alice", "alice@example.com",
		"   ", "", "", "", "",
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestSubmitSellerRequestCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.SubmitSellerRequestCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrSubmitSellerRequestCommandIsNotConstructed)
}
