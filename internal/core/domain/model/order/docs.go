// Package order models the delivery-facing projection of a kiosk order.
// The kitchen owns the readiness lifecycle (pending through cancelled); this
// core only reads it. What the core does own are the assignment linkage
// fields: the references to a delivery round and to a planner suggestion.
// A non-nil round reference doubles as the claim flag: an order belongs to
// at most one round at any time, and may reference a suggestion only while
// unclaimed.
package order
