// Package kernel provides core domain primitives for the marketplace system.
// It currently contains the UUID value object used as the identity type for
// every aggregate (seller requests, sellers, orders) and for actor identities.
//
// The primitives are immutable and thread-safe, and enforce their invariants
// through validated factory functions rather than raw struct construction.
package kernel
