package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApproveSellerRequestCommand_ValidInput(t *testing.T) {
	act, err := actor.NewActor(kernel.NewUUID(), actor.RoleAdmin)
	require.NoError(t, err)
	id := kernel.NewUUID()

	cmd, err := commands.NewApproveSellerRequestCommand(act, id)
	require.NoError(t, err)
	assert.Equal(t, act, cmd.Actor())
	assert.Equal(t, id, cmd.RequestID())
}

func TestNewApproveSellerRequestCommand_InvalidRequestID(t *testing.T) {
	act, err := actor.NewActor(kernel.NewUUID(), actor.RoleAdmin)
	require.NoError(t, err)

	_, err = commands.NewApproveSellerRequestCommand(act, kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestApproveSellerRequestCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.ApproveSellerRequestCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrApproveSellerRequestCommandIsNotConstructed)
}
