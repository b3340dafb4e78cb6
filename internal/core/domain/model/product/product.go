package product

import (
	"errors"
	"fmt"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not created
	// through the NewProduct or RestoreProduct factory methods.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// InsufficientStockError is returned when an order requests more units of a
// product than are currently in stock. It carries enough context for the
// caller to act on: the product, the requested quantity, and the quantity
// actually available. The error is deterministic and must never be retried.
type InsufficientStockError struct {
	ProductID kernel.UUID
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: requested %d, available %d",
		e.ProductID, e.Requested, e.Available)
}

// NewInsufficientStockError creates an InsufficientStockError for the given product.
func NewInsufficientStockError(productID kernel.UUID, requested int, available int) error {
	return &InsufficientStockError{
		ProductID: productID,
		Requested: requested,
		Available: available,
	}
}

// Product represents a sellable good held in the archipelago warehouse.
// It is an aggregate root whose only mutable field is the available stock count.
//
// Product follows these invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - Unit price must not be negative
//   - Stock never goes negative: a decrement that would drive it below
//     zero is rejected before any mutation
type Product struct {
	id            kernel.UUID
	name          string
	unitPrice     float64
	stock         int
	isConstructed bool
}

// NewProduct creates a new Product instance with validation.
func NewProduct(id kernel.UUID, name string, unitPrice float64, stock int) (*Product, error) {
	product := &Product{
		isConstructed: true,
	}

	if err := errors.Join(
		product.setID(id),
		product.setName(name),
		product.setUnitPrice(unitPrice),
		product.setStock(stock),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// RestoreProduct reconstructs a Product from persisted state.
// It applies the same validation as NewProduct and exists so repositories can
// signal rehydration intent explicitly.
func RestoreProduct(id kernel.UUID, name string, unitPrice float64, stock int) (*Product, error) {
	return NewProduct(id, name, unitPrice, stock)
}

// Validate ensures the Product instance was properly constructed through a constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// UnitPrice returns the price of a single unit.
func (p *Product) UnitPrice() float64 {
	return p.unitPrice
}

// Stock returns the number of units currently available.
func (p *Product) Stock() int {
	return p.stock
}

// CanFulfill reports whether the requested quantity can be taken from stock.
func (p *Product) CanFulfill(quantity int) bool {
	return quantity >= 1 && p.stock >= quantity
}

// DecrementStock removes the given quantity of units from stock.
//
// The quantity must be at least 1 and must not exceed the available stock.
// Returns an InsufficientStockError without mutating anything if stock would
// go negative. Note that the persistence layer performs its own conditional
// decrement as well, since the in-memory check here can race with concurrent
// orchestration runs.
func (p *Product) DecrementStock(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not at least 1", quantity))
	}
	if p.stock < quantity {
		return NewInsufficientStockError(p.id, quantity, p.stock)
	}

	p.stock -= quantity
	return nil
}

// IncrementStock returns the given quantity of units to stock.
// Used by delivery orchestration compensation when a later step fails after
// stock was already decremented.
func (p *Product) IncrementStock(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not at least 1", quantity))
	}

	p.stock += quantity
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setUnitPrice(unitPrice float64) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice is invalid",
			fmt.Errorf("%f is negative", unitPrice))
	}
	p.unitPrice = unitPrice
	return nil
}

func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock is invalid",
			fmt.Errorf("%d is negative", stock))
	}
	p.stock = stock
	return nil
}
