package order

import (
	"errors"
	"fmt"
	"time"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a client order in the system. It is the aggregate root that
// manages the order lifecycle from intake through delivery planning to arrival.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and client reference
//   - Must contain at least one line item, each with quantity >= 1
//   - Status transitions are monotonic: pending -> in-progress -> delivered
//   - Can only be created through NewOrder or RestoreOrder constructors
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// clientID references the client who placed the order
	clientID kernel.UUID

	// items are the ordered lines (product reference + quantity)
	items []Item

	// status represents the current state in the order lifecycle
	status Status

	// createdAt is the moment the order entered the system
	createdAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. This is the only way
// to create a brand-new Order, ensuring all business invariants are maintained.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - clientID: Reference to the client placing the order (must be valid UUID)
//   - items: Ordered lines (at least one, each constructed via NewItem)
//
// The created order starts in Pending status with its creation timestamp set
// to the current UTC time.
func NewOrder(id kernel.UUID, clientID kernel.UUID, items []Item) (*Order, error) {
	order := &Order{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setClientID(clientID),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persisted state.
// Unlike NewOrder it accepts the stored status and creation timestamp, and is
// intended exclusively for repository rehydration. All invariants are still
// validated so corrupt rows cannot produce an invalid aggregate.
func RestoreOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	items []Item,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setClientID(clientID),
		order.setItems(items),
		order.setStatus(status),
		order.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a constructor.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ClientID returns the identifier of the client who placed the order.
func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

// Items returns a copy of the ordered line items.
// The returned slice can be modified freely without affecting the aggregate.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalQuantity returns the total number of units across all line items.
// Each unit needs its own storage locker, so this is also the number of
// lockers a delivery of this order occupies.
func (o *Order) TotalQuantity() int {
	total := 0
	for _, item := range o.items {
		total += item.Quantity()
	}
	return total
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the moment the order entered the system.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Start marks delivery as planned for the order and moves it to InProgress.
//
// This method enforces the following business rules:
//   - The order must be in Pending status
//   - A second Start on the same order fails, so only one delivery
//     planning run can ever succeed per order
//
// Returns an error if the status transition is not allowed.
func (o *Order) Start() error {
	newStatus, err := o.status.Start()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Deliver marks the order as delivered.
//
// This method enforces the following business rules:
//   - The order must be in InProgress status
//   - Delivered is a final state with no further transitions
//
// Returns an error if the order is not in InProgress status.
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setClientID validates and sets the owning client reference.
// This is a private method used only during construction.
func (o *Order) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	o.clientID = clientID
	return nil
}

// setItems validates and sets the ordered line items.
// At least one item is required and every item must be properly constructed.
// This is a private method used only during construction.
func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for i, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

// setStatus validates and sets the order's status.
// This is a private method used only during restoration from persistence.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setCreatedAt validates and sets the creation timestamp.
// This is a private method used only during restoration from persistence.
func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}
