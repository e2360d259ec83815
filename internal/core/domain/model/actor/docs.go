// Package actor provides the Actor value object and Role enumeration.
//
// An Actor is the already-resolved identity attached to an inbound request:
// who is acting and in what role. Actors are never persisted by this core;
// the identity adapter resolves one per request and every operation receives
// it explicitly as a parameter. Business logic never looks identity up from
// ambient state.
package actor
