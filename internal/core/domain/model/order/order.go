package order

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"tradematch/internal/core/domain/model/kernel"
	"tradematch/internal/pkg/errs"
)

// Field length rules come from the order intake flow.
const (
	minTradeLength  = 3
	minRegionLength = 2
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order represents a service request submitted by a requester, seeking a
// worker in a trade/region. It is the aggregate root that manages the order
// lifecycle from creation through acceptance.
//
// Order follows these invariants:
//   - Trade and region are copied at creation and immutable afterwards
//   - Contact is a validated phone-like string
//   - status=Accepted if and only if acceptedBy is set
//   - (acceptedBy, acceptedAt) are written exactly once, by the winning claim
//   - Can only be created through NewOrder or RestoreOrder
//
// The surrogate id is assigned by the order store on insert; a fresh order
// carries id 0 until persisted.
type Order struct {
	// id is the store-assigned monotonic surrogate key (0 until persisted)
	id int64

	// requesterID identifies the order's author
	requesterID kernel.UserID

	// trade and region are the free-text matching labels, immutable
	trade  string
	region string

	// contact is the requester's reachable contact string
	contact kernel.Phone

	// comment is optional free text from the requester
	comment string

	// status is the current lifecycle state
	status Status

	// acceptedBy is the awarded worker's identity (nil while New)
	acceptedBy *kernel.UserID

	// acceptedAt is set atomically with acceptedBy
	acceptedAt *time.Time

	// createdAt is the creation timestamp
	createdAt time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order in New status with validation.
//
// Parameters:
//   - requesterID: the author's stable identity
//   - trade: requested skill label, at least 3 characters
//   - region: location label, at least 2 characters
//   - contact: validated requester contact
//   - comment: optional free text (may be empty)
//
// Returns the created order, or a validation error if any field is invalid.
// The order's id stays 0 until the store assigns one on insert.
func NewOrder(requesterID kernel.UserID, trade, region string, contact kernel.Phone, comment string) (*Order, error) {
	o := &Order{
		comment:       comment,
		status:        New,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setRequesterID(requesterID),
		o.setTrade(trade),
		o.setRegion(region),
		o.setContact(contact),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence.
// It verifies the status/acceptor consistency invariant: an Accepted order
// must carry both acceptedBy and acceptedAt, a New order neither.
func RestoreOrder(
	id int64,
	requesterID kernel.UserID,
	trade, region string,
	contact kernel.Phone,
	comment string,
	status Status,
	acceptedBy *kernel.UserID,
	acceptedAt *time.Time,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		comment:       comment,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setRequesterID(requesterID),
		o.setTrade(trade),
		o.setRegion(region),
		o.setContact(contact),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	if err := status.ValidateCanHaveAcceptor(acceptedBy != nil); err != nil {
		return nil, err
	}
	if (acceptedBy == nil) != (acceptedAt == nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause("acceptedAt",
			errors.New("acceptedBy and acceptedAt must be set together"))
	}
	if acceptedBy != nil {
		if err := acceptedBy.Validate(); err != nil {
			return nil, err
		}
	}

	o.acceptedBy = acceptedBy
	o.acceptedAt = acceptedAt
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed for zero-value instances.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their surrogate key.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id != 0 && o.id == other.id
}

// ID returns the store-assigned surrogate key, or 0 if not yet persisted.
func (o *Order) ID() int64 {
	return o.id
}

// RequesterID returns the identity of the order's author.
func (o *Order) RequesterID() kernel.UserID {
	return o.requesterID
}

// Trade returns the requested skill label.
func (o *Order) Trade() string {
	return o.trade
}

// Region returns the requested location label.
func (o *Order) Region() string {
	return o.region
}

// Contact returns the requester's contact.
func (o *Order) Contact() kernel.Phone {
	return o.contact
}

// Comment returns the optional free-text comment.
func (o *Order) Comment() string {
	return o.comment
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// AcceptedBy returns the awarded worker's identity, or nil while New.
func (o *Order) AcceptedBy() *kernel.UserID {
	return o.acceptedBy
}

// AcceptedAt returns the acceptance timestamp, or nil while New.
func (o *Order) AcceptedAt() *time.Time {
	return o.acceptedAt
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// AssignID records the surrogate key assigned by the order store on insert.
// It may be called exactly once.
func (o *Order) AssignID(id int64) error {
	if o.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("order already has id %d", o.id))
	}
	return o.setID(id)
}

// Accept awards the order to a worker, transitioning New -> Accepted.
//
// This records the in-memory transition only. The persistent claim resolution
// is the store's atomic conditional update; this method exists so the
// aggregate enforces the same rules when driven directly (and in tests).
//
// Returns an error if the worker id is invalid or the order is not New.
func (o *Order) Accept(workerID kernel.UserID, at time.Time) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.acceptedBy = &workerID
	o.acceptedAt = &at
	return nil
}

func (o *Order) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("%d is not a positive surrogate key", id))
	}
	o.id = id
	return nil
}

func (o *Order) setRequesterID(requesterID kernel.UserID) error {
	if err := requesterID.Validate(); err != nil {
		return err
	}
	o.requesterID = requesterID
	return nil
}

func (o *Order) setTrade(trade string) error {
	if utf8.RuneCountInString(trade) < minTradeLength {
		return errs.NewValueIsInvalidErrorWithCause("trade",
			fmt.Errorf("%q is shorter than %d characters", trade, minTradeLength))
	}
	o.trade = trade
	return nil
}

func (o *Order) setRegion(region string) error {
	if utf8.RuneCountInString(region) < minRegionLength {
		return errs.NewValueIsInvalidErrorWithCause("region",
			fmt.Errorf("%q is shorter than %d characters", region, minRegionLength))
	}
	o.region = region
	return nil
}

func (o *Order) setContact(contact kernel.Phone) error {
	if err := contact.Validate(); err != nil {
		return err
	}
	o.contact = contact
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
