package order

import (
	"fmt"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/pkg/errs"
)

// StatusConflictError is returned when a conditional status transition finds
// a persisted status different from the one it expected. It means a
// concurrent operation moved the order first; the order was not modified.
// The error is deterministic for the losing caller and must never be
// retried blindly.
type StatusConflictError struct {
	OrderID  kernel.UUID
	Expected Status
	Actual   Status
}

func (e *StatusConflictError) Error() string {
	return fmt.Sprintf("order %s status conflict: expected %s, found %s",
		e.OrderID, e.Expected, e.Actual)
}

// NewStatusConflictError creates a StatusConflictError for the given order.
func NewStatusConflictError(orderID kernel.UUID, expected Status, actual Status) error {
	return &StatusConflictError{
		OrderID:  orderID,
		Expected: expected,
		Actual:   actual,
	}
}

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> InProgress ──> Delivered
//
// Transitions are monotonic: once an order has moved forward it can never
// return to an earlier state. Status is a value object that validates state
// transitions and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status are waiting for delivery planning.
	Pending

	// InProgress indicates delivery has been planned for the order:
	// lockers are reserved, a trip exists, and shipments are underway.
	InProgress

	// Delivered indicates every shipment of the order has arrived.
	// This is a final state with no further transitions allowed.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		InProgress: "in-progress",
		Delivered:  "delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		InProgress: "in-progress",
		Delivered:  "delivered",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, InProgress, Delivered.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns "pending", "in-progress", or "delivered" for valid statuses and
// "unknown" for invalid status values. This method implements the
// fmt.Stringer interface and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Start transitions the status to InProgress.
//
// Valid transitions:
//   - Pending -> InProgress (delivery planned)
//
// Any other source state is rejected, which guarantees at most one
// successful delivery planning run per order.
//
// Returns:
//   - (InProgress, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Start() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start delivery", s.String()),
		)
	}

	return InProgress, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - InProgress -> Delivered (all shipments arrived)
//
// Invalid transitions:
//   - Pending -> Delivered (delivery must be planned first)
//   - Delivered -> Delivered (already delivered)
//
// Returns:
//   - (Delivered, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Deliver() (Status, error) {
	if s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}

	return Delivered, nil
}
