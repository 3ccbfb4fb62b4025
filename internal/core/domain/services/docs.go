// Package services contains stateless domain services that implement business
// logic spanning multiple aggregates.
//
// The Matcher selects, ranks, and caps the workers eligible to be notified
// about an order. It operates purely on domain values; persistence-backed
// reads use the same predicate in SQL on the query side.
package services
