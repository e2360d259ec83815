package commands

import (
	"context"

	"marketplace/internal/core/domain/model/sellerrequest"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
)

// SubmitSellerRequestCommandHandler handles the business logic for seller
// applications. Any authenticated actor may apply, but at most once: a user
// with an existing request cannot apply again, whatever its outcome.
//
// Example:
//
//	handler := NewSubmitSellerRequestCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("application failed: %w", err)
//	}
//	// Request is now pending an admin decision
type SubmitSellerRequestCommandHandler struct {
	uowFactory SellerRequestUoWFactory
	gate       services.AccessGate
}

// NewSubmitSellerRequestCommandHandler creates a handler for seller applications.
// Requires a SellerRequestUoWFactory for transactional persistence.
func NewSubmitSellerRequestCommandHandler(uowFactory SellerRequestUoWFactory) SubmitSellerRequestCommandHandler {
	return SubmitSellerRequestCommandHandler{
		uowFactory: uowFactory,
		gate:       services.NewAccessGate(),
	}
}

// Handle processes the application command.
// Authorizes the actor, enforces the one-application-per-user rule, and
// creates the request in pending status.
func (h *SubmitSellerRequestCommandHandler) Handle(ctx context.Context, cmd SubmitSellerRequestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.gate.Authorize(cmd.Actor(), services.RequireAuthenticated, "submit seller request"); err != nil {
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

	exists, err := repo.ExistsForUser(ctx, cmd.Actor().ID())
	if err != nil {
		return err
	}
	if exists {
		return errs.NewAlreadyAppliedError(cmd.Actor().ID().String())
	}

	request, err := sellerrequest.NewSellerRequest(
		cmd.RequestID(),
		cmd.Actor().ID(),
		cmd.UserName(),
		cmd.UserEmail(),
		cmd.ShopName(),
		cmd.Phone(),
		cmd.SellingType(),
		cmd.PaymentMethod(),
		cmd.PaymentAccount(),
	)
	if err != nil {
		return err
	}

	if err = repo.Add(ctx, request); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
