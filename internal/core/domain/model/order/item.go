package order

import (
	"errors"
	"fmt"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when attempting to use an improperly initialized Item.
// Items must be created using the NewItem constructor to ensure validity.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is an ordered line within an Order: a product reference together with
// the number of units requested. Each unit occupies exactly one storage locker
// during delivery, so quantity also drives locker allocation.
//
// Item is an immutable value object. The zero value is invalid and must be
// constructed via NewItem.
type Item struct {
	productID     kernel.UUID
	quantity      int
	isConstructed bool
}

// NewItem creates a new order line item.
// The product ID must be a valid UUID and quantity must be at least 1.
func NewItem(productID kernel.UUID, quantity int) (Item, error) {
	item := Item{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item was properly constructed through NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ProductID returns the referenced product's unique identifier.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the number of units requested.
func (i Item) Quantity() int {
	return i.quantity
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not at least 1", quantity))
	}
	i.quantity = quantity
	return nil
}
