package commands

import (
	"context"
	"fmt"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/core/domain/model/order"
	"galapagos/internal/core/domain/model/product"
	"galapagos/internal/core/domain/model/shipment"
	"galapagos/internal/core/domain/model/trip"
	"galapagos/internal/core/domain/services"
	"galapagos/internal/pkg/errs"
)

// compensations is a stack of inverse actions accumulated while a delivery
// planning run mutates shared state. On failure the actions run in reverse
// order, undoing whatever the run had already committed outside the record
// store transaction.
type compensations struct {
	steps []func(ctx context.Context)
}

func (c *compensations) push(step func(ctx context.Context)) {
	c.steps = append(c.steps, step)
}

func (c *compensations) run(ctx context.Context) {
	for i := len(c.steps) - 1; i >= 0; i-- {
		c.steps[i](ctx)
	}
}

// PlanDeliveryCommandHandler orchestrates delivery planning for an order.
//
// Planning spans two stores with no native cross-store transaction, so the
// handler runs as a saga:
//
//  1. Load the order; it must exist and still be pending.
//  2. Check every line item against product stock (read only).
//  3. Transition the order from pending to in-progress with a conditional
//     update. When two runs race on the same order only one wins; the
//     loser aborts with a status conflict before reserving anything.
//  4. Reserve one storage locker per ordered item-unit. Claims commit
//     immediately so concurrent runs see them; a compensation releasing
//     them is pushed for every claim.
//  5. Compute the route between the requested ports.
//  6. Persist the trip with the computed distance and duration.
//  7. Conditionally decrement each product's stock.
//  8. Create one in-progress shipment record per reserved locker, all
//     referencing the trip.
//
// Steps 3 and 5-8 run inside a single record store transaction: rolling it
// back undoes them wholesale. Any failure after step 4 additionally runs
// the compensation stack, so a failed run leaves stock, locker
// availability, and order status exactly as it found them.
type PlanDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	allocator  *services.LockerAllocator
	planner    *services.RoutePlanner
}

// NewPlanDeliveryCommandHandler creates a handler for delivery planning.
func NewPlanDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	allocator *services.LockerAllocator,
	planner *services.RoutePlanner,
) PlanDeliveryCommandHandler {
	return PlanDeliveryCommandHandler{
		uowFactory: uowFactory,
		allocator:  allocator,
		planner:    planner,
	}
}

// Handle processes the delivery planning command and returns the first
// created shipment record; its siblings share the same trip.
func (h *PlanDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd PlanDeliveryCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if deliveryOrder.Status() != order.Pending {
		return nil, errs.NewValueIsInvalidErrorWithCause("order status",
			fmt.Errorf("order %s is %s, only pending orders can be planned",
				deliveryOrder.ID(), deliveryOrder.Status()))
	}

	if err = h.checkStock(ctx, uow, deliveryOrder); err != nil {
		return nil, err
	}

	if err = deliveryOrder.Start(); err != nil {
		return nil, err
	}
	if err = uow.OrderRepository().UpdateStatusFrom(ctx, deliveryOrder.ID(), order.Pending, order.InProgress); err != nil {
		return nil, err
	}

	var undo compensations
	defer func() {
		undo.run(ctx)
	}()

	lockerIDs, err := h.allocator.Reserve(ctx, deliveryOrder.TotalQuantity())
	if err != nil {
		return nil, err
	}
	undo.push(func(ctx context.Context) {
		for _, id := range lockerIDs {
			_ = h.allocator.Release(ctx, id)
		}
	})

	plannedRoute, err := h.planner.ShortestPath(ctx, cmd.OriginPortID(), cmd.DestinationPortID())
	if err != nil {
		return nil, err
	}

	plannedTrip, err := trip.NewTrip(
		kernel.NewUUID(),
		cmd.VehicleID(),
		plannedRoute.Origin(),
		plannedRoute.Destination(),
		plannedRoute.TotalDistanceKm,
		plannedRoute.TotalDurationMinutes,
	)
	if err != nil {
		return nil, err
	}
	if err = uow.TripRepository().Add(ctx, plannedTrip); err != nil {
		return nil, err
	}

	if err = h.decrementStock(ctx, uow, deliveryOrder); err != nil {
		return nil, err
	}

	first, err := h.createShipments(ctx, uow, deliveryOrder, plannedTrip, lockerIDs, cmd)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	undo.steps = nil
	return first, nil
}

// checkStock verifies every line item against current product stock without
// mutating anything. Missing products and shortfalls abort the run before
// any resource is reserved.
func (h *PlanDeliveryCommandHandler) checkStock(
	ctx context.Context,
	uow DeliveryUoW,
	deliveryOrder *order.Order,
) error {
	for _, item := range deliveryOrder.Items() {
		orderedProduct, err := uow.ProductRepository().Get(ctx, item.ProductID())
		if err != nil {
			return err
		}

		if !orderedProduct.CanFulfill(item.Quantity()) {
			return product.NewInsufficientStockError(
				orderedProduct.ID(), item.Quantity(), orderedProduct.Stock())
		}
	}

	return nil
}

// decrementStock applies the conditional stock decrement for every line
// item. The repository only decrements when stock is still sufficient at
// mutation time, closing the race with concurrent runs that passed the same
// read-only check.
func (h *PlanDeliveryCommandHandler) decrementStock(
	ctx context.Context,
	uow DeliveryUoW,
	deliveryOrder *order.Order,
) error {
	for _, item := range deliveryOrder.Items() {
		if err := uow.ProductRepository().DecrementStock(ctx, item.ProductID(), item.Quantity()); err != nil {
			return err
		}
	}

	return nil
}

// createShipments persists one in-progress shipment record per reserved
// locker, all sharing the planned trip, and returns the first record.
func (h *PlanDeliveryCommandHandler) createShipments(
	ctx context.Context,
	uow DeliveryUoW,
	deliveryOrder *order.Order,
	plannedTrip *trip.Trip,
	lockerIDs []kernel.UUID,
	cmd PlanDeliveryCommand,
) (*shipment.Shipment, error) {
	var first *shipment.Shipment

	for _, lockerID := range lockerIDs {
		record, err := shipment.NewShipment(
			kernel.NewUUID(),
			deliveryOrder.ID(),
			plannedTrip.ID(),
			lockerID,
			cmd.EstimatedDate(),
		)
		if err != nil {
			return nil, err
		}

		if err = uow.ShipmentRepository().Add(ctx, record); err != nil {
			return nil, err
		}

		if first == nil {
			first = record
		}
	}

	return first, nil
}
