package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the fulfillment state of an order.
//
// State transitions observed by this core:
//
//	Created ──> Processing
//
// Completed and Cancelled exist in the data model because downstream
// fulfillment writes them, but no transition into them is implemented here.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusCreated is the initial status at checkout; payment is pending.
	StatusCreated

	// StatusProcessing indicates payment settled and the seller should
	// hand over the account.
	StatusProcessing

	// StatusCompleted indicates the buyer confirmed delivery.
	StatusCompleted

	// StatusCancelled indicates the order was cancelled.
	StatusCancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "Unknown",
		StatusCreated:    "Created",
		StatusProcessing: "Processing",
		StatusCompleted:  "Completed",
		StatusCancelled:  "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusCreated:    "Created",
		StatusProcessing: "Processing",
		StatusCompleted:  "Completed",
		StatusCancelled:  "Cancelled",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StartProcessing transitions the status to Processing.
//
// Valid transitions:
//   - Created -> Processing (payment settled)
//
// Any other current status yields (0, error).
func (s Status) StartProcessing() (Status, error) {
	if s != StatusCreated {
		return 0, fmt.Errorf("%s is not a valid status to start processing", s.String())
	}

	return StatusProcessing, nil
}

// PaymentStatus represents the state of an order's payment.
//
//	PaymentPending ──┬──> PaymentPaid
//	                 └──> PaymentFailed
//
// PaymentPaid is terminal with respect to this core: a paid order must never
// settle a second time.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentPending means the buyer has not yet settled.
	PaymentPending

	// PaymentPaid means the payment settled; a repeated settle attempt is
	// rejected.
	PaymentPaid

	// PaymentFailed means the payment provider declined the charge.
	PaymentFailed
)

// getPaymentStatusStrings returns a map of PaymentStatus values to their string representations.
func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown: "Unknown",
		PaymentPending: "Pending",
		PaymentPaid:    "Paid",
		PaymentFailed:  "Failed",
	}
}

// getValidPaymentStatusStrings returns a map of only valid PaymentStatus values.
func getValidPaymentStatusStrings() map[PaymentStatus]string {
	//nolint:exhaustive // PaymentUnknown is intentionally excluded as it's invalid
	return map[PaymentStatus]string{
		PaymentPending: "Pending",
		PaymentPaid:    "Paid",
		PaymentFailed:  "Failed",
	}
}

// Validate checks if the PaymentStatus value is valid.
func (p PaymentStatus) Validate() error {
	if _, ok := getValidPaymentStatusStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus", fmt.Errorf("%d is not a valid payment status", p))
	}
	return nil
}

// String returns the human-readable name of the payment status.
func (p PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[p]; ok {
		return str
	}
	return "Unknown"
}

// Pay transitions the payment status to Paid.
//
// Valid transitions:
//   - Pending -> Paid
//
// Any other current status yields (0, error).
func (p PaymentStatus) Pay() (PaymentStatus, error) {
	if p != PaymentPending {
		return 0, fmt.Errorf("%s is not a valid payment status to pay", p.String())
	}

	return PaymentPaid, nil
}
