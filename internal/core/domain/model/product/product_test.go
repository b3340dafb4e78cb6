package product_test

import (
	"testing"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create valid product", func(t *testing.T) {
		p, err := product.NewProduct(validID, "Tortoise feed", 12.50, 8)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(validID))
		assert.Equal(t, "Tortoise feed", p.Name())
		assert.InEpsilon(t, 12.50, p.UnitPrice(), 1e-9)
		assert.Equal(t, 8, p.Stock())
	})

	t.Run("should accept zero stock", func(t *testing.T) {
		p, err := product.NewProduct(validID, "Snorkel kit", 30, 0)

		require.NoError(t, err)
		assert.Equal(t, 0, p.Stock())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		p, err := product.NewProduct(invalidID, "Snorkel kit", 30, 1)

		require.Error(t, err)
		assert.Nil(t, p)
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		p, err := product.NewProduct(validID, "", 30, 1)

		require.Error(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("should fail with negative price", func(t *testing.T) {
		p, err := product.NewProduct(validID, "Snorkel kit", -1, 1)

		require.Error(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "unitPrice is invalid")
	})

	t.Run("should fail with negative stock", func(t *testing.T) {
		p, err := product.NewProduct(validID, "Snorkel kit", 30, -1)

		require.Error(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "stock is invalid")
	})
}

func TestProduct_DecrementStock(t *testing.T) {
	newProduct := func(t *testing.T, stock int) *product.Product {
		t.Helper()
		p, err := product.NewProduct(kernel.NewUUID(), "Sea salt", 4.20, stock)
		require.NoError(t, err)
		return p
	}

	t.Run("decrements within stock", func(t *testing.T) {
		p := newProduct(t, 5)

		require.NoError(t, p.DecrementStock(3))
		assert.Equal(t, 2, p.Stock())
	})

	t.Run("can drain stock to zero", func(t *testing.T) {
		p := newProduct(t, 3)

		require.NoError(t, p.DecrementStock(3))
		assert.Equal(t, 0, p.Stock())
	})

	t.Run("fails when requested exceeds stock and leaves stock unchanged", func(t *testing.T) {
		p := newProduct(t, 2)

		err := p.DecrementStock(3)

		require.Error(t, err)
		var insufficientErr *product.InsufficientStockError
		require.ErrorAs(t, err, &insufficientErr)
		assert.Equal(t, 3, insufficientErr.Requested)
		assert.Equal(t, 2, insufficientErr.Available)
		assert.True(t, insufficientErr.ProductID.IsEqual(p.ID()))
		assert.Equal(t, 2, p.Stock())
	})

	t.Run("fails with zero quantity", func(t *testing.T) {
		p := newProduct(t, 2)

		err := p.DecrementStock(0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "quantity is invalid")
		assert.Equal(t, 2, p.Stock())
	})
}

func TestProduct_IncrementStock(t *testing.T) {
	p, err := product.NewProduct(kernel.NewUUID(), "Sea salt", 4.20, 1)
	require.NoError(t, err)

	require.NoError(t, p.IncrementStock(4))
	assert.Equal(t, 5, p.Stock())

	err = p.IncrementStock(0)
	require.Error(t, err)
	assert.Equal(t, 5, p.Stock())
}

func TestProduct_CanFulfill(t *testing.T) {
	p, err := product.NewProduct(kernel.NewUUID(), "Sea salt", 4.20, 3)
	require.NoError(t, err)

	assert.True(t, p.CanFulfill(1))
	assert.True(t, p.CanFulfill(3))
	assert.False(t, p.CanFulfill(4))
	assert.False(t, p.CanFulfill(0))
}

func TestProduct_Validate(t *testing.T) {
	t.Run("nil product", func(t *testing.T) {
		var p *product.Product
		assert.ErrorIs(t, p.Validate(), product.ErrProductIsNotConstructed)
	})

	t.Run("zero value product", func(t *testing.T) {
		p := &product.Product{}
		assert.ErrorIs(t, p.Validate(), product.ErrProductIsNotConstructed)
	})
}
