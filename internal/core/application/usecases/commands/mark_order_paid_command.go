package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrMarkOrderPaidCommandIsNotConstructed = errors.New(
		"MarkOrderPaidCommand must be created via NewMarkOrderPaidCommand constructor",
	)
)

// MarkOrderPaidCommand represents payment confirmation for an order.
// Only the buyer who owns the order, or an admin, may confirm payment, and
// the ownership check happens in the handler after the order is loaded.
type MarkOrderPaidCommand struct { //nolint:recvcheck //using for validation
	actor   actor.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkOrderPaidCommand creates a command to confirm payment for an order.
func NewMarkOrderPaidCommand(act actor.Actor, orderID kernel.UUID) (MarkOrderPaidCommand, error) {
	cmd := MarkOrderPaidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return MarkOrderPaidCommand{}, err
	}

	cmd.actor = act
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderPaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderPaidCommandIsNotConstructed)
}

// Actor returns the actor confirming payment.
func (c MarkOrderPaidCommand) Actor() actor.Actor {
	return c.actor
}

// OrderID returns the identifier of the order being paid.
func (c MarkOrderPaidCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *MarkOrderPaidCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
