package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrApproveSellerRequestCommandIsNotConstructed = errors.New(
		"ApproveSellerRequestCommand must be created via NewApproveSellerRequestCommand constructor",
	)
)

// ApproveSellerRequestCommand represents an admin's decision to accept a
// seller application. Approval is terminal: it can be applied to a pending
// request exactly once, and triggers provisioning of the seller record.
type ApproveSellerRequestCommand struct { //nolint:recvcheck //using for validation
	actor     actor.Actor
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewApproveSellerRequestCommand creates a command to approve a seller request.
// Validates that the request ID is valid; the admin role is checked by the
// handler's authorization gate.
func NewApproveSellerRequestCommand(act actor.Actor, requestID kernel.UUID) (ApproveSellerRequestCommand, error) {
	cmd := ApproveSellerRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRequestID(requestID); err != nil {
		return ApproveSellerRequestCommand{}, err
	}

	cmd.actor = act
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveSellerRequestCommand) Validate() error {
	return c.guard.Validate(ErrApproveSellerRequestCommandIsNotConstructed)
}

// Actor returns the deciding actor.
func (c ApproveSellerRequestCommand) Actor() actor.Actor {
	return c.actor
}

// RequestID returns the identifier of the request to approve.
func (c ApproveSellerRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c *ApproveSellerRequestCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}
