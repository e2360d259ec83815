package order

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a buyer's purchase of a listed game account. It is the
// aggregate root for the payment-confirmation segment of the fulfillment
// lifecycle.
//
// Order follows these invariants:
//   - Must have valid identifiers for the order, buyer, seller, and account
//   - Fulfillment status and payment status advance together: the order
//     becomes Processing exactly when the payment becomes Paid, in one
//     coupled transition (both change or neither does)
//   - An order whose payment already settled rejects a repeat settle with
//     AlreadyProcessed, so the money-state mutation is applied at most once
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// buyerID identifies the purchasing user
	buyerID kernel.UUID

	// sellerID identifies the selling party
	sellerID kernel.UUID

	// accountID identifies the listed game account being traded
	accountID kernel.UUID

	// status represents the current fulfillment state
	status Status

	// payment represents the current payment state
	payment PaymentStatus

	// createdAt is the checkout time
	createdAt time.Time

	// isConstructed ensures the order was created via a factory function
	isConstructed bool
}

// NewOrder creates a new Order at checkout: Created status, pending payment.
// All four identifiers must be valid UUIDs.
func NewOrder(id, buyerID, sellerID, accountID kernel.UUID) (*Order, error) {
	o := &Order{
		status:        StatusCreated,
		payment:       PaymentPending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setBuyerID(buyerID),
		o.setSellerID(sellerID),
		o.setAccountID(accountID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, validating status
// consistency: an order is Processing iff its payment is Paid (within the
// states this core owns).
func RestoreOrder(
	id, buyerID, sellerID, accountID kernel.UUID,
	status Status,
	payment PaymentStatus,
	createdAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		buyerID.Validate(),
		sellerID.Validate(),
		accountID.Validate(),
		status.Validate(),
		payment.Validate(),
	); err != nil {
		return nil, err
	}

	if status == StatusCreated && payment == PaymentPaid {
		return nil, errs.NewValueIsInvalidError("paymentStatus")
	}
	if status == StatusProcessing && payment != PaymentPaid {
		return nil, errs.NewValueIsInvalidError("paymentStatus")
	}

	return &Order{
		id:            id,
		buyerID:       buyerID,
		sellerID:      sellerID,
		accountID:     accountID,
		status:        status,
		payment:       payment,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// BuyerID returns the purchasing user's identifier.
func (o *Order) BuyerID() kernel.UUID {
	return o.buyerID
}

// SellerID returns the selling party's identifier.
func (o *Order) SellerID() kernel.UUID {
	return o.sellerID
}

// AccountID returns the identifier of the game account being traded.
func (o *Order) AccountID() kernel.UUID {
	return o.accountID
}

// Status returns the current fulfillment status.
func (o *Order) Status() Status {
	return o.status
}

// Payment returns the current payment status.
func (o *Order) Payment() PaymentStatus {
	return o.payment
}

// CreatedAt returns the checkout time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// IsOwnedBy reports whether the given user is the order's buyer.
func (o *Order) IsOwnedBy(userID kernel.UUID) bool {
	return o.buyerID.IsEqual(userID)
}

// MarkPaid applies the coupled payment-confirmation transition: payment
// Pending -> Paid together with status Created -> Processing. Both fields
// change or neither does.
//
// Returns AlreadyProcessed if the payment already settled, and ValueIsInvalid
// if the payment previously failed or the order is not in Created status.
func (o *Order) MarkPaid() error {
	if o.payment == PaymentPaid {
		return errs.NewAlreadyProcessedError("order", o.id.String())
	}

	newPayment, err := o.payment.Pay()
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus", err)
	}

	newStatus, err := o.status.StartProcessing()
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("status", err)
	}

	o.payment = newPayment
	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}
	o.buyerID = buyerID
	return nil
}

func (o *Order) setSellerID(sellerID kernel.UUID) error {
	if err := sellerID.Validate(); err != nil {
		return err
	}
	o.sellerID = sellerID
	return nil
}

func (o *Order) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}
	o.accountID = accountID
	return nil
}
