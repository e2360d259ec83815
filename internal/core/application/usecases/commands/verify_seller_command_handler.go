package commands

import (
	"context"

	"marketplace/internal/core/domain/services"
)

// VerifySellerCommandHandler handles seller verification. Only the verified
// flag changes; stats and activity are untouched, and verifying twice is not
// an error.
type VerifySellerCommandHandler struct {
	uowFactory SellerUoWFactory
	gate       services.AccessGate
}

// NewVerifySellerCommandHandler creates a handler for seller verification.
// Requires a SellerUoWFactory for transactional persistence.
func NewVerifySellerCommandHandler(uowFactory SellerUoWFactory) VerifySellerCommandHandler {
	return VerifySellerCommandHandler{
		uowFactory: uowFactory,
		gate:       services.NewAccessGate(),
	}
}

// Handle processes the verification command.
// Fails with ObjectNotFound if no such seller exists; otherwise sets the
// verified flag and persists the aggregate.
func (h *VerifySellerCommandHandler) Handle(ctx context.Context, cmd VerifySellerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.gate.Authorize(cmd.Actor(), services.RequireAdmin, "verify seller"); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.SellerRepository()

	s, err := repo.Get(ctx, cmd.SellerID())
	if err != nil {
		return err
	}

	s.Verify()

	if err = repo.Update(ctx, s); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
