package shipment

import (
	"fmt"

	"galapagos/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment record.
//
// State transitions:
//
//	InProgress ──> Delivered
//
// A shipment is created in-progress the moment its delivery is planned and
// reaches Delivered when the seaplane arrives. While a shipment is in-progress
// it holds its storage locker and keeps the trip's vehicle in flight.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// InProgress indicates the shipment is underway aboard a trip.
	InProgress

	// Delivered indicates the shipment has arrived. Final state.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		InProgress: "in-progress",
		Delivered:  "delivered",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are InProgress and Delivered.
func (s Status) Validate() error {
	if s != InProgress && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements the fmt.Stringer interface.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Deliver transitions the status to Delivered.
// Only InProgress shipments can be delivered.
func (s Status) Deliver() (Status, error) {
	if s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}

	return Delivered, nil
}
