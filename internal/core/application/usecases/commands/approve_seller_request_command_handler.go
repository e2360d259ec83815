package commands

import (
	"context"

	"marketplace/internal/core/domain/services"
)

// ApproveSellerRequestCommandHandler handles the admin decision to accept a
// seller application. The status flip and the seller-record provisioning
// happen in one transaction: the request cannot end up approved without a
// seller existing, and a lost race against a concurrent decision surfaces as
// AlreadyProcessed instead of double-provisioning.
//
// Example:
//
//	handler := NewApproveSellerRequestCommandHandler(uowFactory)
//	cmd, _ := NewApproveSellerRequestCommand(adminActor, requestID)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("approval failed: %w", err)
//	}
//	// Request is approved and the seller record exists
type ApproveSellerRequestCommandHandler struct {
	uowFactory OnboardingUoWFactory
	gate       services.AccessGate
}

// NewApproveSellerRequestCommandHandler creates a handler for approval decisions.
// Requires an OnboardingUoWFactory so the decision and the provisioning share
// a transaction.
func NewApproveSellerRequestCommandHandler(uowFactory OnboardingUoWFactory) ApproveSellerRequestCommandHandler {
	return ApproveSellerRequestCommandHandler{
		uowFactory: uowFactory,
		gate:       services.NewAccessGate(),
	}
}

// Handle processes the approval command.
// Re-reads the request, applies the pending -> approved transition, persists
// it as a conditional update, and provisions the seller record.
func (h *ApproveSellerRequestCommandHandler) Handle(ctx context.Context, cmd ApproveSellerRequestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.gate.Authorize(cmd.Actor(), services.RequireAdmin, "approve seller request"); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.SellerRequestRepository()

	request, err := repo.Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	if err = request.Approve(); err != nil {
		return err
	}

	if err = repo.UpdateFromPending(ctx, request); err != nil {
		return err
	}

	if _, err = uow.SellerProvisioner().CreateFromRequest(ctx, request); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
