package order_test

import (
	"testing"
	"time"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNewItem(t *testing.T, productID kernel.UUID, quantity int) order.Item {
	t.Helper()
	item, err := order.NewItem(productID, quantity)
	require.NoError(t, err)
	return item
}

func TestNewItem(t *testing.T) {
	validProductID := kernel.NewUUID()

	t.Run("should create valid item", func(t *testing.T) {
		item, err := order.NewItem(validProductID, 3)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.True(t, item.ProductID().IsEqual(validProductID))
		assert.Equal(t, 3, item.Quantity())
	})

	t.Run("should accept minimum quantity", func(t *testing.T) {
		item, err := order.NewItem(validProductID, 1)

		require.NoError(t, err)
		assert.Equal(t, 1, item.Quantity())
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		item, err := order.NewItem(validProductID, 0)

		require.Error(t, err)
		assert.Zero(t, item)
		assert.Contains(t, err.Error(), "quantity is invalid")
		assert.Contains(t, err.Error(), "0 is not at least 1")
	})

	t.Run("should fail with negative quantity", func(t *testing.T) {
		item, err := order.NewItem(validProductID, -2)

		require.Error(t, err)
		assert.Zero(t, item)
		assert.Contains(t, err.Error(), "quantity is invalid")
	})

	t.Run("should fail with invalid product ID", func(t *testing.T) {
		var invalidID kernel.UUID

		item, err := order.NewItem(invalidID, 1)

		require.Error(t, err)
		assert.Zero(t, item)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("zero value item fails validation", func(t *testing.T) {
		var item order.Item
		assert.ErrorIs(t, item.Validate(), order.ErrItemIsNotConstructed)
	})
}

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()
	validClientID := kernel.NewUUID()

	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		items := []order.Item{
			mustNewItem(t, kernel.NewUUID(), 2),
			mustNewItem(t, kernel.NewUUID(), 1),
		}

		o, err := order.NewOrder(validID, validClientID, items)

		require.NoError(t, err)
		assert.NotNil(t, o)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.True(t, o.ClientID().IsEqual(validClientID))
		assert.Len(t, o.Items(), 2)
		assert.Equal(t, 3, o.TotalQuantity())
		assert.Equal(t, order.Pending, o.Status())
		assert.WithinDuration(t, time.Now().UTC(), o.CreatedAt(), time.Minute)
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID
		items := []order.Item{mustNewItem(t, kernel.NewUUID(), 1)}

		o, err := order.NewOrder(invalidID, validClientID, items)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with invalid client ID", func(t *testing.T) {
		var invalidClientID kernel.UUID
		items := []order.Item{mustNewItem(t, kernel.NewUUID(), 1)}

		o, err := order.NewOrder(validID, invalidClientID, items)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should fail with no items", func(t *testing.T) {
		o, err := order.NewOrder(validID, validClientID, nil)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "items")
	})

	t.Run("should fail with an unconstructed item", func(t *testing.T) {
		items := []order.Item{mustNewItem(t, kernel.NewUUID(), 1), {}}

		o, err := order.NewOrder(validID, validClientID, items)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "item 1")
	})

	t.Run("returned items are a copy", func(t *testing.T) {
		items := []order.Item{mustNewItem(t, kernel.NewUUID(), 1)}
		o, err := order.NewOrder(validID, validClientID, items)
		require.NoError(t, err)

		got := o.Items()
		got[0] = order.Item{}

		assert.NoError(t, o.Items()[0].Validate())
	})
}

func TestRestoreOrder(t *testing.T) {
	validID := kernel.NewUUID()
	validClientID := kernel.NewUUID()
	createdAt := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	t.Run("should restore order with stored status", func(t *testing.T) {
		items := []order.Item{mustNewItem(t, kernel.NewUUID(), 2)}

		o, err := order.RestoreOrder(validID, validClientID, items, order.InProgress, createdAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.InProgress, o.Status())
		assert.Equal(t, createdAt, o.CreatedAt())
	})

	t.Run("should fail with invalid status", func(t *testing.T) {
		items := []order.Item{mustNewItem(t, kernel.NewUUID(), 2)}

		o, err := order.RestoreOrder(validID, validClientID, items, order.Unknown, createdAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "status is invalid")
	})

	t.Run("should fail with zero timestamp", func(t *testing.T) {
		items := []order.Item{mustNewItem(t, kernel.NewUUID(), 2)}

		o, err := order.RestoreOrder(validID, validClientID, items, order.Pending, time.Time{})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "createdAt")
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("valid order", func(t *testing.T) {
		items := []order.Item{mustNewItem(t, kernel.NewUUID(), 1)}
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), items)
		require.NoError(t, err)
		assert.NoError(t, o.Validate())
	})

	t.Run("nil order", func(t *testing.T) {
		var o *order.Order
		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("zero value order", func(t *testing.T) {
		o := &order.Order{}
		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Start(t *testing.T) {
	newPendingOrder := func(t *testing.T) *order.Order {
		t.Helper()
		items := []order.Item{mustNewItem(t, kernel.NewUUID(), 1)}
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), items)
		require.NoError(t, err)
		return o
	}

	t.Run("pending order can start", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.Start())
		assert.Equal(t, order.InProgress, o.Status())
	})

	t.Run("second start fails", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Start())

		err := o.Start()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "in-progress is not a valid status to start delivery")
		assert.Equal(t, order.InProgress, o.Status())
	})

	t.Run("delivered order rejects start", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Start())
		require.NoError(t, o.Deliver())

		err := o.Start()

		require.Error(t, err)
		assert.Equal(t, order.Delivered, o.Status())
	})
}

func TestOrder_Deliver(t *testing.T) {
	newPendingOrder := func(t *testing.T) *order.Order {
		t.Helper()
		items := []order.Item{mustNewItem(t, kernel.NewUUID(), 1)}
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), items)
		require.NoError(t, err)
		return o
	}

	t.Run("in-progress order can be delivered", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Start())

		require.NoError(t, o.Deliver())
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("pending order cannot be delivered", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.Deliver()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "pending is not a valid status to deliver")
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("delivered order cannot be delivered again", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Start())
		require.NoError(t, o.Deliver())

		err := o.Deliver()

		require.Error(t, err)
		assert.Equal(t, order.Delivered, o.Status())
	})
}

func TestOrder_IsEqual(t *testing.T) {
	id := kernel.NewUUID()
	items := []order.Item{mustNewItem(t, kernel.NewUUID(), 1)}

	o1, err := order.NewOrder(id, kernel.NewUUID(), items)
	require.NoError(t, err)
	o2, err := order.NewOrder(id, kernel.NewUUID(), items)
	require.NoError(t, err)
	o3, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), items)
	require.NoError(t, err)

	assert.True(t, o1.IsEqual(o2))
	assert.False(t, o1.IsEqual(o3))
	assert.False(t, o1.IsEqual(nil))
}
