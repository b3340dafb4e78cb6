package commands

import (
	"context"
	"errors"
	"fmt"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/core/domain/model/shipment"
	"galapagos/internal/core/domain/services"
)

// CompleteShipmentsCommandHandler finishes shipments whose estimated date
// has passed. Each due shipment transitions to delivered and drops its
// locker reference; once every shipment of an order is delivered the order
// itself transitions to delivered.
//
// Record store changes commit in one transaction. Locker releases happen
// after the commit: a locker must never return to the pool while the
// shipment holding it is still recorded as in-progress.
type CompleteShipmentsCommandHandler struct {
	uowFactory CompletionUoWFactory
	allocator  *services.LockerAllocator
}

// NewCompleteShipmentsCommandHandler creates a handler for shipment completion.
func NewCompleteShipmentsCommandHandler(
	uowFactory CompletionUoWFactory,
	allocator *services.LockerAllocator,
) CompleteShipmentsCommandHandler {
	return CompleteShipmentsCommandHandler{
		uowFactory: uowFactory,
		allocator:  allocator,
	}
}

// Handle completes all due shipments and returns how many were delivered.
// When lockers fail to release after the commit, the count still reflects
// the committed deliveries and the error names every stuck locker.
func (h *CompleteShipmentsCommandHandler) Handle(ctx context.Context, cmd CompleteShipmentsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	due, err := uow.ShipmentRepository().GetAllInProgressDueBy(ctx, cmd.AsOf())
	if err != nil {
		return 0, err
	}
	if len(due) == 0 {
		return 0, uow.Commit(ctx)
	}

	releasedLockers := make([]kernel.UUID, 0, len(due))
	affectedOrders := make(map[kernel.UUID]bool)

	for _, record := range due {
		released, deliverErr := record.Deliver()
		if deliverErr != nil {
			return 0, deliverErr
		}

		if err = uow.ShipmentRepository().Update(ctx, record); err != nil {
			return 0, err
		}

		if released != nil {
			releasedLockers = append(releasedLockers, *released)
		}
		affectedOrders[record.OrderID()] = true
	}

	for orderID := range affectedOrders {
		if err = h.deliverOrderIfComplete(ctx, uow, orderID); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	// The deliveries are committed at this point, so release failures do
	// not undo them. They are collected and returned next to the count so
	// the caller can report the lockers stuck outside the pool.
	var releaseErrs []error
	for _, lockerID := range releasedLockers {
		if releaseErr := h.allocator.Release(ctx, lockerID); releaseErr != nil {
			releaseErrs = append(releaseErrs, fmt.Errorf("release locker %s: %w", lockerID, releaseErr))
		}
	}

	return len(due), errors.Join(releaseErrs...)
}

// deliverOrderIfComplete transitions an order to delivered once none of its
// shipment records remain in progress.
func (h *CompleteShipmentsCommandHandler) deliverOrderIfComplete(
	ctx context.Context,
	uow CompletionUoW,
	orderID kernel.UUID,
) error {
	records, err := uow.ShipmentRepository().GetAllByOrder(ctx, orderID)
	if err != nil {
		return err
	}

	for _, record := range records {
		if record.Status() == shipment.InProgress {
			return nil
		}
	}

	completedOrder, err := uow.OrderRepository().Get(ctx, orderID)
	if err != nil {
		return err
	}

	if err = completedOrder.Deliver(); err != nil {
		return err
	}

	return uow.OrderRepository().Update(ctx, completedOrder)
}
