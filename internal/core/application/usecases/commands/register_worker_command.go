package commands

import (
	"errors"

	"tradematch/internal/core/domain/model/kernel"
	"tradematch/internal/pkg/guard"
)

var (
	ErrRegisterWorkerCommandIsNotConstructed = errors.New(
		"RegisterWorkerCommand must be created via NewRegisterWorkerCommand constructor",
	)
	ErrNameIsRequired   = errors.New("name is required")
	ErrTradeIsRequired  = errors.New("trade is required")
	ErrRegionIsRequired = errors.New("region is required")
)

// RegisterWorkerCommand represents a request to register a worker or to
// replace an existing worker's profile. Produced by the registration intake
// flow with already-collected fields; full field rules are enforced by the
// Worker aggregate.
//
// Example:
//
//	workerID, _ := kernel.NewUserID(1019797279)
//	phone, _ := kernel.NewPhone("+998901234567")
//	cmd, err := NewRegisterWorkerCommand(workerID, "Alisher", phone, "Plumber", "North")
//	if err != nil {
//	    return fmt.Errorf("invalid registration data: %w", err)
//	}
type RegisterWorkerCommand struct { //nolint:recvcheck //using for validation
	workerID kernel.UserID
	name     string
	phone    kernel.Phone
	trade    string
	region   string

	guard guard.ConstructorGuard
}

// NewRegisterWorkerCommand creates a command to register or re-register a worker.
// Validates that the identity and phone are constructed and the text fields
// are present. Returns an error if any validation fails.
func NewRegisterWorkerCommand(
	workerID kernel.UserID,
	name string,
	phone kernel.Phone,
	trade, region string,
) (RegisterWorkerCommand, error) {
	cmd := RegisterWorkerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setWorkerID(workerID),
		cmd.setName(name),
		cmd.setPhone(phone),
		cmd.setTrade(trade),
		cmd.setRegion(region),
	); err != nil {
		return RegisterWorkerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterWorkerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterWorkerCommandIsNotConstructed)
}

// WorkerID returns the worker's stable external identity.
func (c RegisterWorkerCommand) WorkerID() kernel.UserID {
	return c.workerID
}

// Name returns the worker's display name.
func (c RegisterWorkerCommand) Name() string {
	return c.name
}

// Phone returns the worker's contact.
func (c RegisterWorkerCommand) Phone() kernel.Phone {
	return c.phone
}

// Trade returns the worker's skill label.
func (c RegisterWorkerCommand) Trade() string {
	return c.trade
}

// Region returns the worker's location label.
func (c RegisterWorkerCommand) Region() string {
	return c.region
}

func (c *RegisterWorkerCommand) setWorkerID(workerID kernel.UserID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}
	c.workerID = workerID
	return nil
}

func (c *RegisterWorkerCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *RegisterWorkerCommand) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	c.phone = phone
	return nil
}

func (c *RegisterWorkerCommand) setTrade(trade string) error {
	if trade == "" {
		return ErrTradeIsRequired
	}
	c.trade = trade
	return nil
}

func (c *RegisterWorkerCommand) setRegion(region string) error {
	if region == "" {
		return ErrRegionIsRequired
	}
	c.region = region
	return nil
}
