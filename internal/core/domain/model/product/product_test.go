package product_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	id := kernel.NewUUID()
	sellerID := kernel.NewUUID()

	t.Run("should create product", func(t *testing.T) {
		p, err := product.NewProduct(id, sellerID)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, id.IsEqual(p.ID()))
		assert.True(t, sellerID.IsEqual(p.SellerID()))
	})

	t.Run("should reject zero-value identifiers", func(t *testing.T) {
		var zero kernel.UUID

		_, err := product.NewProduct(zero, sellerID)
		require.Error(t, err)

		_, err = product.NewProduct(id, zero)
		require.Error(t, err)
	})
}

func TestProduct_Validate(t *testing.T) {
	t.Run("zero value is not constructed", func(t *testing.T) {
		var p product.Product

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, product.ErrProductIsNotConstructed, err)
	})
}
