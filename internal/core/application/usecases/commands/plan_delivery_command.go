package commands

import (
	"errors"
	"time"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/pkg/errs"
	"galapagos/internal/pkg/guard"
)

var (
	ErrPlanDeliveryCommandIsNotConstructed = errors.New(
		"PlanDeliveryCommand must be created via NewPlanDeliveryCommand constructor",
	)
)

// PlanDeliveryCommand represents a request to plan the delivery of an order:
// which seaplane flies, between which ports, and when the shipments are
// expected to arrive.
//
// Example:
//
//	cmd, err := NewPlanDeliveryCommand(orderID, "SEAPLANE-1", "PSC", "PBA", estimatedDate)
//	if err != nil {
//	    return fmt.Errorf("invalid delivery request: %w", err)
//	}
//
//	handler := NewPlanDeliveryCommandHandler(uowFactory, allocator, planner)
//	first, err := handler.Handle(ctx, cmd)
type PlanDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID           kernel.UUID
	vehicleID         string
	originPortID      string
	destinationPortID string
	estimatedDate     time.Time

	guard guard.ConstructorGuard
}

// NewPlanDeliveryCommand creates a command to plan a delivery.
// All references and the estimated date are required.
func NewPlanDeliveryCommand(
	orderID kernel.UUID,
	vehicleID string,
	originPortID string,
	destinationPortID string,
	estimatedDate time.Time,
) (PlanDeliveryCommand, error) {
	cmd := PlanDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setVehicleID(vehicleID),
		cmd.setPorts(originPortID, destinationPortID),
		cmd.setEstimatedDate(estimatedDate),
	); err != nil {
		return PlanDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlanDeliveryCommandIsNotConstructed if validation fails.
func (c PlanDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrPlanDeliveryCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to deliver.
func (c PlanDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// VehicleID returns the topology identifier of the assigned seaplane.
func (c PlanDeliveryCommand) VehicleID() string {
	return c.vehicleID
}

// OriginPortID returns the requested departure port.
func (c PlanDeliveryCommand) OriginPortID() string {
	return c.originPortID
}

// DestinationPortID returns the requested arrival port.
func (c PlanDeliveryCommand) DestinationPortID() string {
	return c.destinationPortID
}

// EstimatedDate returns the expected arrival date for the shipments.
func (c PlanDeliveryCommand) EstimatedDate() time.Time {
	return c.estimatedDate
}

func (c *PlanDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlanDeliveryCommand) setVehicleID(vehicleID string) error {
	if vehicleID == "" {
		return errs.NewValueIsRequiredError("vehicleID")
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *PlanDeliveryCommand) setPorts(originPortID string, destinationPortID string) error {
	if originPortID == "" {
		return errs.NewValueIsRequiredError("originPortID")
	}
	if destinationPortID == "" {
		return errs.NewValueIsRequiredError("destinationPortID")
	}

	c.originPortID = originPortID
	c.destinationPortID = destinationPortID
	return nil
}

func (c *PlanDeliveryCommand) setEstimatedDate(estimatedDate time.Time) error {
	if estimatedDate.IsZero() {
		return errs.NewValueIsRequiredError("estimatedDate")
	}

	c.estimatedDate = estimatedDate
	return nil
}
