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
	ErrSubmitSellerRequestCommandIsNotConstructed = errors.New(
		"SubmitSellerRequestCommand must be created via NewSubmitSellerRequestCommand constructor",
	)
)

// SubmitSellerRequestCommand represents a user's application for seller
// status. Carries the application details together with a snapshot of the
// applicant's name and email taken at submission time.
//
// Example:
//
//	cmd, err := NewSubmitSellerRequestCommand(
//	    act, kernel.NewUUID(),
//	    "Alice", "alice@example.com",
//	    "Shop A", "+1-555-0101", "game accounts", "bank transfer", "DE89...",
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid application: %w", err)
//	}
//
//	handler := NewSubmitSellerRequestCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to submit seller request: %w", err)
//	}
type SubmitSellerRequestCommand struct { //nolint:recvcheck //using for validation
	actor          actor.Actor
	requestID      kernel.UUID
	userName       string
	userEmail      string
	shopName       string
	phone          string
	sellingType    string
	paymentMethod  string
	paymentAccount string

	guard guard.ConstructorGuard
}

// NewSubmitSellerRequestCommand creates a command to apply for seller status.
// Validates that the request ID is valid and the shop name is not empty; the
// actor is checked by the handler's authorization gate.
func NewSubmitSellerRequestCommand(
	act actor.Actor,
	requestID kernel.UUID,
	userName string,
	userEmail string,
	shopName string,
	phone string,
	sellingType string,
	paymentMethod string,
	paymentAccount string,
) (SubmitSellerRequestCommand, error) {
	cmd := SubmitSellerRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setShopName(shopName),
	); err != nil {
		return SubmitSellerRequestCommand{}, err
	}

	cmd.actor = act
	cmd.userName = strings.TrimSpace(userName)
	cmd.userEmail = strings.TrimSpace(userEmail)
	cmd.phone = strings.TrimSpace(phone)
	cmd.sellingType = strings.TrimSpace(sellingType)
	cmd.paymentMethod = strings.TrimSpace(paymentMethod)
	cmd.paymentAccount = strings.TrimSpace(paymentAccount)

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitSellerRequestCommand) Validate() error {
	return c.guard.Validate(ErrSubmitSellerRequestCommandIsNotConstructed)
}

// Actor returns the applying actor.
func (c SubmitSellerRequestCommand) Actor() actor.Actor {
	return c.actor
}

// RequestID returns the identifier assigned to the new request.
func (c SubmitSellerRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// UserName returns the applicant's name snapshot.
func (c SubmitSellerRequestCommand) UserName() string {
	return c.userName
}

// UserEmail returns the applicant's email snapshot.
func (c SubmitSellerRequestCommand) UserEmail() string {
	return c.userEmail
}

// ShopName returns the proposed shop name.
func (c SubmitSellerRequestCommand) ShopName() string {
	return c.shopName
}

// Phone returns the applicant's contact phone.
func (c SubmitSellerRequestCommand) Phone() string {
	return c.phone
}

// SellingType returns what kind of accounts the applicant intends to sell.
func (c SubmitSellerRequestCommand) SellingType() string {
	return c.sellingType
}

// PaymentMethod returns the payout method chosen by the applicant.
func (c SubmitSellerRequestCommand) PaymentMethod() string {
	return c.paymentMethod
}

// PaymentAccount returns the payout account chosen by the applicant.
func (c SubmitSellerRequestCommand) PaymentAccount() string {
	return c.paymentAccount
}

func (c *SubmitSellerRequestCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *SubmitSellerRequestCommand) setShopName(shopName string) error {
	if strings.TrimSpace(shopName) == "" {
		return errs.NewValueIsRequiredError("shopName")
	}

	c.shopName = strings.TrimSpace(shopName)
	return nil
}
