package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrRejectSellerRequestCommandIsNotConstructed = errors.New(
		"RejectSellerRequestCommand must be created via NewRejectSellerRequestCommand constructor",
	)
)

// RejectSellerRequestCommand represents an admin's decision to decline a
// seller application. The transition table is symmetric with approval except
// that a rejection must carry a reason and provisions nothing.
type RejectSellerRequestCommand struct { //nolint:recvcheck //using for validation
	actor     actor.Actor
	requestID kernel.UUID
	reason    string

	guard guard.ConstructorGuard
}

// NewRejectSellerRequestCommand creates a command to reject a seller request.
// Validates that the request ID is valid and the reason, whitespace-trimmed,
// is not empty.
func NewRejectSellerRequestCommand(
	act actor.Actor,
	requestID kernel.UUID,
	reason string,
) (RejectSellerRequestCommand, error) {
	cmd := RejectSellerRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setReason(reason),
	); err != nil {
		return RejectSellerRequestCommand{}, err
	}

	cmd.actor = act
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectSellerRequestCommand) Validate() error {
	return c.guard.Validate(ErrRejectSellerRequestCommandIsNotConstructed)
}

// Actor returns the deciding actor.
func (c RejectSellerRequestCommand) Actor() actor.Actor {
	return c.actor
}

// RequestID returns the identifier of the request to reject.
func (c RejectSellerRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// Reason returns the trimmed rejection reason.
func (c RejectSellerRequestCommand) Reason() string {
	return c.reason
}

func (c *RejectSellerRequestCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *RejectSellerRequestCommand) setReason(reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errs.NewValueIsRequiredError("rejectionReason")
	}

	c.reason = reason
	return nil
}
