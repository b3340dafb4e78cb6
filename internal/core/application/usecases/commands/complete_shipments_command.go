package commands

import (
	"errors"
	"time"

	"galapagos/internal/pkg/errs"
	"galapagos/internal/pkg/guard"
)

var (
	ErrCompleteShipmentsCommandIsNotConstructed = errors.New(
		"CompleteShipmentsCommand must be created via NewCompleteShipmentsCommand constructor",
	)
)

// CompleteShipmentsCommand represents a request to complete every in-progress
// shipment whose estimated date has passed, releasing its locker and
// delivering orders whose shipments have all arrived.
type CompleteShipmentsCommand struct { //nolint:recvcheck //using for validation
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewCompleteShipmentsCommand creates a command completing shipments due at
// or before the given moment.
func NewCompleteShipmentsCommand(asOf time.Time) (CompleteShipmentsCommand, error) {
	cmd := CompleteShipmentsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setAsOf(asOf); err != nil {
		return CompleteShipmentsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteShipmentsCommandIsNotConstructed if validation fails.
func (c CompleteShipmentsCommand) Validate() error {
	return c.guard.Validate(ErrCompleteShipmentsCommandIsNotConstructed)
}

// AsOf returns the completion cutoff moment.
func (c CompleteShipmentsCommand) AsOf() time.Time {
	return c.asOf
}

func (c *CompleteShipmentsCommand) setAsOf(asOf time.Time) error {
	if asOf.IsZero() {
		return errs.NewValueIsRequiredError("asOf")
	}

	c.asOf = asOf
	return nil
}
