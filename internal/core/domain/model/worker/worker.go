package worker

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"tradematch/internal/core/domain/model/kernel"
	"tradematch/internal/pkg/errs"
)

// Field length rules come from the registration intake flow.
const (
	minNameLength   = 2
	minTradeLength  = 3
	minRegionLength = 2
)

// ErrWorkerIsNotConstructed is returned when a Worker instance was not created
// through the NewWorker or RestoreWorker factory methods.
var ErrWorkerIsNotConstructed = errors.New("Worker must be created via NewWorker or RestoreWorker")

// Worker represents a registered service provider. It is the aggregate root
// for the worker directory.
//
// Worker follows these invariants:
//   - Identified by a stable external UserID, never generated here
//   - Name is at least 2 characters, trade at least 3, region at least 2
//   - Phone is a validated contact string
//   - updatedAt is refreshed on every mutation; listings order by it
//   - Inactive workers (active=false) never appear in matching results
//   - Can only be created through NewWorker or RestoreWorker
//
// The struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Worker struct {
	// id is the stable external identity of the worker
	id kernel.UserID

	// name is the worker's display name
	name string

	// phone is the worker's reachable contact
	phone kernel.Phone

	// trade is the free-text skill label (e.g. "Electrician")
	trade string

	// region is the free-text location label
	region string

	// availability is the worker's self-reported Free/Busy state
	availability Availability

	// active controls eligibility for new orders
	active bool

	// updatedAt is refreshed on any mutation and drives recency ordering
	updatedAt time.Time

	// isConstructed ensures the worker was created via a factory method
	isConstructed bool
}

// NewWorker creates a new Worker instance with validation. A freshly
// registered worker starts Free and active, ready to receive orders.
//
// Parameters:
//   - id: stable external identity (must be valid)
//   - name: display name, at least 2 characters
//   - phone: validated contact
//   - trade: skill label, at least 3 characters
//   - region: location label, at least 2 characters
//
// Returns the created worker, or a validation error if any field is invalid.
func NewWorker(id kernel.UserID, name string, phone kernel.Phone, trade, region string) (*Worker, error) {
	w := &Worker{
		availability:  Free,
		active:        true,
		updatedAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		w.setID(id),
		w.setName(name),
		w.setPhone(phone),
		w.setTrade(trade),
		w.setRegion(region),
	); err != nil {
		return nil, err
	}

	return w, nil
}

// RestoreWorker reconstructs a Worker from persistence without changing its
// recorded state. All fields must already satisfy the aggregate's invariants.
func RestoreWorker(
	id kernel.UserID,
	name string,
	phone kernel.Phone,
	trade, region string,
	availability Availability,
	active bool,
	updatedAt time.Time,
) (*Worker, error) {
	w := &Worker{
		active:        active,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		w.setID(id),
		w.setName(name),
		w.setPhone(phone),
		w.setTrade(trade),
		w.setRegion(region),
		w.setAvailability(availability),
	); err != nil {
		return nil, err
	}

	return w, nil
}

// Validate ensures the Worker instance was properly constructed.
// Returns ErrWorkerIsNotConstructed for zero-value instances.
func (w *Worker) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWorkerIsNotConstructed
	}
	return nil
}

// IsEqual compares two workers by their identity.
func (w *Worker) IsEqual(other *Worker) bool {
	return other != nil && w.id.IsEqual(other.id)
}

// ID returns the worker's stable external identity.
func (w *Worker) ID() kernel.UserID {
	return w.id
}

// Name returns the worker's display name.
func (w *Worker) Name() string {
	return w.name
}

// Phone returns the worker's contact.
func (w *Worker) Phone() kernel.Phone {
	return w.phone
}

// Trade returns the worker's free-text skill label.
func (w *Worker) Trade() string {
	return w.trade
}

// Region returns the worker's free-text location label.
func (w *Worker) Region() string {
	return w.region
}

// Availability returns the worker's self-reported Free/Busy state.
func (w *Worker) Availability() Availability {
	return w.availability
}

// Active reports whether the worker is eligible to receive new orders.
func (w *Worker) Active() bool {
	return w.active
}

// UpdatedAt returns the time of the worker's last mutation.
func (w *Worker) UpdatedAt() time.Time {
	return w.updatedAt
}

// UpdateProfile replaces the worker's profile fields, keeping availability
// and the active flag untouched. Refreshes updatedAt.
//
// This is the idempotent upsert path: re-registering with the same data is
// harmless and only bumps recency.
func (w *Worker) UpdateProfile(name string, phone kernel.Phone, trade, region string) error {
	if err := errors.Join(
		w.setName(name),
		w.setPhone(phone),
		w.setTrade(trade),
		w.setRegion(region),
	); err != nil {
		return err
	}

	w.touch()
	return nil
}

// SetAvailability records the worker's self-reported Free/Busy state.
// Refreshes updatedAt.
func (w *Worker) SetAvailability(availability Availability) error {
	if err := w.setAvailability(availability); err != nil {
		return err
	}

	w.touch()
	return nil
}

// SetActive toggles whether the worker is eligible for new orders.
// Both the worker and an administrator may flip this. Refreshes updatedAt.
func (w *Worker) SetActive(active bool) {
	w.active = active
	w.touch()
}

func (w *Worker) touch() {
	w.updatedAt = time.Now().UTC()
}

func (w *Worker) setID(id kernel.UserID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *Worker) setName(name string) error {
	if utf8.RuneCountInString(name) < minNameLength {
		return errs.NewValueIsInvalidErrorWithCause("name",
			fmt.Errorf("%q is shorter than %d characters", name, minNameLength))
	}
	w.name = name
	return nil
}

func (w *Worker) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	w.phone = phone
	return nil
}

func (w *Worker) setTrade(trade string) error {
	if utf8.RuneCountInString(trade) < minTradeLength {
		return errs.NewValueIsInvalidErrorWithCause("trade",
			fmt.Errorf("%q is shorter than %d characters", trade, minTradeLength))
	}
	w.trade = trade
	return nil
}

func (w *Worker) setRegion(region string) error {
	if utf8.RuneCountInString(region) < minRegionLength {
		return errs.NewValueIsInvalidErrorWithCause("region",
			fmt.Errorf("%q is shorter than %d characters", region, minRegionLength))
	}
	w.region = region
	return nil
}

func (w *Worker) setAvailability(availability Availability) error {
	if err := availability.Validate(); err != nil {
		return err
	}
	w.availability = availability
	return nil
}
