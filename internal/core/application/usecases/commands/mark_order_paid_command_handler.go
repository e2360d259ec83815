package commands

import (
	"context"

	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
)

// MarkOrderPaidCommandHandler handles payment confirmation for orders.
// Payment and processing move together: a successful confirmation leaves the
// order processing with payment recorded as paid. The persisted transition is
// conditional on the payment still being pending, so a payment is counted at
// most once even under concurrent confirmations.
type MarkOrderPaidCommandHandler struct {
	uowFactory OrderUoWFactory
	gate       services.AccessGate
}

// NewMarkOrderPaidCommandHandler creates a handler for payment confirmations.
// Requires an OrderUoWFactory for transactional persistence.
func NewMarkOrderPaidCommandHandler(uowFactory OrderUoWFactory) MarkOrderPaidCommandHandler {
	return MarkOrderPaidCommandHandler{
		uowFactory: uowFactory,
		gate:       services.NewAccessGate(),
	}
}

// Handle processes the payment confirmation command.
// The actor must be the order's buyer or an admin. Confirming an already-paid
// order fails with AlreadyProcessed; orders past the created stage cannot
// take a payment.
func (h *MarkOrderPaidCommandHandler) Handle(ctx context.Context, cmd MarkOrderPaidCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.gate.Authorize(cmd.Actor(), services.RequireAuthenticated, "mark order paid"); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	o, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !o.IsOwnedBy(cmd.Actor().ID()) && !cmd.Actor().IsAdmin() {
		return errs.NewForbiddenError("mark order paid", cmd.Actor().Role().String())
	}

	if err = o.MarkPaid(); err != nil {
		return err
	}

	if err = repo.UpdateFromPendingPayment(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
