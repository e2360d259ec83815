package sellerrequest

import (
	"errors"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrSellerRequestIsNotConstructed is returned when a SellerRequest instance was not
	// created through the NewSellerRequest or RestoreSellerRequest factory functions.
	ErrSellerRequestIsNotConstructed = errors.New(
		"SellerRequest must be created via NewSellerRequest or RestoreSellerRequest",
	)
)

// SellerRequest represents a user's application for seller status. It is the
// aggregate root of the onboarding state machine.
//
// SellerRequest follows these invariants:
//   - Must have valid unique identifier and applicant identifier
//   - Shop name is required; applicant name and email are snapshotted at
//     submission time and never re-resolved
//   - Status transitions are one-way: Pending -> Approved or Pending -> Rejected
//   - Once non-pending the aggregate is immutable; a second decision fails
//     with AlreadyProcessed
//   - A rejection always carries a trimmed, non-empty reason and a timestamp
//
// The struct uses private fields to ensure encapsulation; state changes only
// happen through Approve and Reject.
type SellerRequest struct {
	// id is the unique identifier for the request
	id kernel.UUID

	// userID identifies the applicant; at most one request may ever exist per user
	userID kernel.UUID

	// userName and userEmail are snapshots of the applicant at submission time
	userName  string
	userEmail string

	// application details supplied by the applicant
	shopName       string
	phone          string
	sellingType    string
	paymentMethod  string
	paymentAccount string

	// status represents the current state in the onboarding lifecycle
	status Status

	// rejectionReason is set iff status is Rejected
	rejectionReason string

	// rejectedAt is set iff status is Rejected
	rejectedAt *time.Time

	// createdAt is the submission time
	createdAt time.Time

	// isConstructed ensures the request was created via a factory function
	isConstructed bool
}

// NewSellerRequest creates a new pending SellerRequest with validation.
// This is the only way to create a request for a fresh application; requests
// loaded from persistence go through RestoreSellerRequest.
//
// The applicant's name and email are snapshotted here so later profile edits
// do not rewrite history. Shop name is required; the remaining application
// details are passed through as supplied.
func NewSellerRequest(
	id kernel.UUID,
	userID kernel.UUID,
	userName string,
	userEmail string,
	shopName string,
	phone string,
	sellingType string,
	paymentMethod string,
	paymentAccount string,
) (*SellerRequest, error) {
	request := &SellerRequest{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		request.setID(id),
		request.setUserID(userID),
		request.setShopName(shopName),
	); err != nil {
		return nil, err
	}

	request.userName = strings.TrimSpace(userName)
	request.userEmail = strings.TrimSpace(userEmail)
	request.phone = strings.TrimSpace(phone)
	request.sellingType = strings.TrimSpace(sellingType)
	request.paymentMethod = strings.TrimSpace(paymentMethod)
	request.paymentAccount = strings.TrimSpace(paymentAccount)

	return request, nil
}

// RestoreSellerRequest reconstructs a SellerRequest from persistence.
// The status must be valid, and rejection fields must be consistent with it:
// a rejected request carries a reason and timestamp, any other status carries
// neither.
func RestoreSellerRequest(
	id kernel.UUID,
	userID kernel.UUID,
	userName string,
	userEmail string,
	shopName string,
	phone string,
	sellingType string,
	paymentMethod string,
	paymentAccount string,
	status Status,
	rejectionReason string,
	rejectedAt *time.Time,
	createdAt time.Time,
) (*SellerRequest, error) {
	if err := errors.Join(
		id.Validate(),
		userID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if status == Rejected && (rejectionReason == "" || rejectedAt == nil) {
		return nil, errs.NewValueIsRequiredError("rejectionReason")
	}
	if status != Rejected && (rejectionReason != "" || rejectedAt != nil) {
		return nil, errs.NewValueIsInvalidError("rejectionReason")
	}

	return &SellerRequest{
		id:              id,
		userID:          userID,
		userName:        userName,
		userEmail:       userEmail,
		shopName:        shopName,
		phone:           phone,
		sellingType:     sellingType,
		paymentMethod:   paymentMethod,
		paymentAccount:  paymentAccount,
		status:          status,
		rejectionReason: rejectionReason,
		rejectedAt:      rejectedAt,
		createdAt:       createdAt,
		isConstructed:   true,
	}, nil
}

// Validate ensures the SellerRequest instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
func (r *SellerRequest) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrSellerRequestIsNotConstructed
	}
	return nil
}

// IsEqual compares two requests by their unique identifiers.
func (r *SellerRequest) IsEqual(other *SellerRequest) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the request's unique identifier.
func (r *SellerRequest) ID() kernel.UUID {
	return r.id
}

// UserID returns the applicant's user identifier.
func (r *SellerRequest) UserID() kernel.UUID {
	return r.userID
}

// UserName returns the applicant's name as snapshotted at submission.
func (r *SellerRequest) UserName() string {
	return r.userName
}

// UserEmail returns the applicant's email as snapshotted at submission.
func (r *SellerRequest) UserEmail() string {
	return r.userEmail
}

// ShopName returns the proposed shop name.
func (r *SellerRequest) ShopName() string {
	return r.shopName
}

// Phone returns the applicant's contact phone.
func (r *SellerRequest) Phone() string {
	return r.phone
}

// SellingType returns what kind of accounts the applicant intends to sell.
func (r *SellerRequest) SellingType() string {
	return r.sellingType
}

// PaymentMethod returns the payout method chosen by the applicant.
func (r *SellerRequest) PaymentMethod() string {
	return r.paymentMethod
}

// PaymentAccount returns the payout account chosen by the applicant.
func (r *SellerRequest) PaymentAccount() string {
	return r.paymentAccount
}

// Status returns the current status of the request.
func (r *SellerRequest) Status() Status {
	return r.status
}

// RejectionReason returns the admin's reason; empty unless the request is rejected.
func (r *SellerRequest) RejectionReason() string {
	return r.rejectionReason
}

// RejectedAt returns when the request was rejected, or nil.
func (r *SellerRequest) RejectedAt() *time.Time {
	return r.rejectedAt
}

// CreatedAt returns the submission time.
func (r *SellerRequest) CreatedAt() time.Time {
	return r.createdAt
}

// Approve applies the Pending -> Approved transition.
//
// Returns AlreadyProcessed if the request was already decided. The caller is
// responsible for provisioning the seller record in the same transaction.
func (r *SellerRequest) Approve() error {
	if r.status.IsTerminal() {
		return errs.NewAlreadyProcessedError("sellerRequest", r.id.String())
	}

	newStatus, err := r.status.Approve()
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("status", err)
	}

	r.status = newStatus
	return nil
}

// Reject applies the Pending -> Rejected transition, recording the reason
// and the rejection time.
//
// The reason is whitespace-trimmed and must be non-empty; an empty reason
// fails with ValueIsRequired and leaves the request untouched. Returns
// AlreadyProcessed if the request was already decided.
func (r *SellerRequest) Reject(reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errs.NewValueIsRequiredError("rejectionReason")
	}

	if r.status.IsTerminal() {
		return errs.NewAlreadyProcessedError("sellerRequest", r.id.String())
	}

	newStatus, err := r.status.Reject()
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("status", err)
	}

	now := time.Now().UTC()
	r.status = newStatus
	r.rejectionReason = reason
	r.rejectedAt = &now
	return nil
}

func (r *SellerRequest) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *SellerRequest) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	r.userID = userID
	return nil
}

func (r *SellerRequest) setShopName(shopName string) error {
	shopName = strings.TrimSpace(shopName)
	if shopName == "" {
		return errs.NewValueIsRequiredError("shopName")
	}
	r.shopName = shopName
	return nil
}
