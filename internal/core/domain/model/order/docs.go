// Package order implements the Order aggregate of the order store.
//
// An Order is a service request with free-text trade/region labels, a
// requester contact, and a two-state lifecycle: it is created New and is
// awarded to at most one worker, becoming Accepted. Accepted is terminal.
package order
