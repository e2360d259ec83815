// Package services provides domain services for the marketplace transaction
// lifecycle. It implements business decisions that don't naturally belong to a
// single aggregate root.
//
// The package includes:
//   - AccessGate: A pure decision function gating every lifecycle transition
//     on the acting user's role
//
// Domain services here are stateless and perform no I/O; callers pass in the
// already-resolved actor and receive a decision.
package services
