// Package sellerrequest contains the seller onboarding aggregate.
//
// A SellerRequest is a user's application for seller status. It moves through
// a one-way state machine: pending (initial) to approved or rejected, both
// terminal. Once a request leaves pending it is immutable; the admin decision
// is applied exactly once and never revisited. A user may have at most one
// request ever, including historical ones; re-application after rejection is
// not permitted.
package sellerrequest
