// Package kernel contains shared value objects used across the domain model.
//
// The kernel holds the primitives both aggregates depend on: UserID, the
// stable external identity of a participant (worker or requester), and Phone,
// a validated reachable contact string. Both are immutable value objects that
// can only be created through their constructor functions.
package kernel
