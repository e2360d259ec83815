package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVerifySellerCommand_ValidInput(t *testing.T) {
	act, err := actor.NewActor(kernel.NewUUID(), actor.RoleAdmin)
	require.NoError(t, err)
	id := kernel.NewUUID()

	cmd, err := commands.NewVerifySellerCommand(act, id)
	require.NoError(t, err)
	assert.Equal(t, act, cmd.Actor())
	assert.Equal(t, id, cmd.SellerID())
}

func TestNewVerifySellerCommand_InvalidSellerID(t *testing.T) {
	act, err := actor.NewActor(kernel.NewUUID(), actor.RoleAdmin)
	require.NoError(t, err)

	_, err = commands.NewVerifySellerCommand(act, kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestVerifySellerCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.VerifySellerCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrVerifySellerCommandIsNotConstructed)
}
