package commands

import (
	"errors"
	"strings"

	"tradematch/internal/core/domain/model/kernel"
	"tradematch/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand is not constructed correctly: use NewCreateOrderCommand")
	ErrContactIsRequired = errors.New("contact is required")
)

// CreateOrderCommand carries a requester's order: what trade is needed, where,
// and how to reach them once a worker accepts.
type CreateOrderCommand struct {
	guard guard.ConstructorGuard

	requesterID kernel.UserID
	trade       string
	region      string
	contact     kernel.Phone
	comment     string
}

// NewCreateOrderCommand creates a validated CreateOrderCommand.
// The contact must parse as a phone number; the comment is optional.
func NewCreateOrderCommand(requesterID kernel.UserID, trade, region, contact, comment string) (CreateOrderCommand, error) {
	if err := requesterID.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}
	if strings.TrimSpace(trade) == "" {
		return CreateOrderCommand{}, ErrTradeIsRequired
	}
	if strings.TrimSpace(region) == "" {
		return CreateOrderCommand{}, ErrRegionIsRequired
	}
	if strings.TrimSpace(contact) == "" {
		return CreateOrderCommand{}, ErrContactIsRequired
	}

	phone, err := kernel.NewPhone(contact)
	if err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		guard:       guard.NewConstructorGuard(),
		requesterID: requesterID,
		trade:       strings.TrimSpace(trade),
		region:      strings.TrimSpace(region),
		contact:     phone,
		comment:     strings.TrimSpace(comment),
	}, nil
}

func (c CreateOrderCommand) RequesterID() kernel.UserID {
	return c.requesterID
}

func (c CreateOrderCommand) Trade() string {
	return c.trade
}

func (c CreateOrderCommand) Region() string {
	return c.region
}

func (c CreateOrderCommand) Contact() kernel.Phone {
	return c.contact
}

func (c CreateOrderCommand) Comment() string {
	return c.comment
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}
