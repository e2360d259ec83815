// Package seller contains the seller account aggregate.
//
// A Seller record exists only for users whose onboarding request was approved;
// it is provisioned in the same transaction as the approval decision. The only
// lifecycle transition owned by this core is verification: isVerified flips
// from false to true exactly once, and verifying an already-verified seller is
// a no-op success rather than an error.
package seller
