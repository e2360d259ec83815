// Package order contains the order fulfillment aggregate.
//
// The lifecycle segment owned by this core is payment confirmation: an order
// starts as Created with a pending payment, and MarkPaid advances payment and
// fulfillment state together: payment becomes Paid and the order becomes
// Processing in one coupled transition. The transition is guarded: an order
// whose payment already settled rejects a second attempt, so the money-state
// mutation is applied at most once. Later states (Completed, Cancelled) are
// owned by fulfillment logic outside this core.
package order
