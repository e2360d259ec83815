package commands

import (
	"context"

	"marketplace/internal/core/domain/services"
)

// RejectSellerRequestCommandHandler handles the admin decision to decline a
// seller application, recording the reason and the rejection time. Like
// approval, the persisted transition is conditional on the request still
// being pending, so exactly one decision ever lands.
type RejectSellerRequestCommandHandler struct {
	uowFactory SellerRequestUoWFactory
	gate       services.AccessGate
}

// NewRejectSellerRequestCommandHandler creates a handler for rejection decisions.
// Requires a SellerRequestUoWFactory for transactional persistence.
func NewRejectSellerRequestCommandHandler(uowFactory SellerRequestUoWFactory) RejectSellerRequestCommandHandler {
	return RejectSellerRequestCommandHandler{
		uowFactory: uowFactory,
		gate:       services.NewAccessGate(),
	}
}

// Handle processes the rejection command.
// Re-reads the request, applies the pending -> rejected transition with the
// reason, and persists it as a conditional update.
func (h *RejectSellerRequestCommandHandler) Handle(ctx context.Context, cmd RejectSellerRequestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.gate.Authorize(cmd.Actor(), services.RequireAdmin, "reject seller request"); err != nil {
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

	if err = request.Reject(cmd.Reason()); err != nil {
		return err
	}

	if err = repo.UpdateFromPending(ctx, request); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
