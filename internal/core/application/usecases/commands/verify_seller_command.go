package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrVerifySellerCommandIsNotConstructed = errors.New(
		"VerifySellerCommand must be created via NewVerifySellerCommand constructor",
	)
)

// VerifySellerCommand represents an admin marking a seller as verified.
// Verification is idempotent: re-verifying an already-verified seller is a
// no-op success.
type VerifySellerCommand struct { //nolint:recvcheck //using for validation
	actor    actor.Actor
	sellerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewVerifySellerCommand creates a command to verify a seller.
// Validates that the seller ID is valid; the admin role is checked by the
// handler's authorization gate.
func NewVerifySellerCommand(act actor.Actor, sellerID kernel.UUID) (VerifySellerCommand, error) {
	cmd := VerifySellerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setSellerID(sellerID); err != nil {
		return VerifySellerCommand{}, err
	}

	cmd.actor = act
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifySellerCommand) Validate() error {
	return c.guard.Validate(ErrVerifySellerCommandIsNotConstructed)
}

// Actor returns the verifying actor.
func (c VerifySellerCommand) Actor() actor.Actor {
	return c.actor
}

// SellerID returns the identifier of the seller to verify.
func (c VerifySellerCommand) SellerID() kernel.UUID {
	return c.sellerID
}

func (c *VerifySellerCommand) setSellerID(sellerID kernel.UUID) error {
	if err := sellerID.Validate(); err != nil {
		return err
	}

	c.sellerID = sellerID
	return nil
}
