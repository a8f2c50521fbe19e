package customer_test

import (
	"testing"

	"retail/internal/core/domain/model/customer"
	"retail/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("should create valid customer", func(t *testing.T) {
		c, err := customer.NewCustomer(1, "Alice Jenkins")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, 1, c.ID())
		assert.Equal(t, "Alice Jenkins", c.Name())
	})

	t.Run("should fail with zero id", func(t *testing.T) {
		c, err := customer.NewCustomer(0, "Alice Jenkins")

		require.Error(t, err)
		assert.Nil(t, c)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})

	t.Run("should fail with negative id", func(t *testing.T) {
		c, err := customer.NewCustomer(-3, "Alice Jenkins")

		require.Error(t, err)
		assert.Nil(t, c)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		c, err := customer.NewCustomer(1, "")

		require.Error(t, err)
		assert.Nil(t, c)
		assert.Equal(t, customer.ErrNameIsRequired, err)
	})
}

func TestCustomer_IsEqual(t *testing.T) {
	t.Run("should return true for customers with same id", func(t *testing.T) {
		c1, _ := customer.NewCustomer(1, "Alice Jenkins")
		c2, _ := customer.NewCustomer(1, "A. Jenkins")

		assert.True(t, c1.IsEqual(c2))
	})

	t.Run("should return false for customers with different ids", func(t *testing.T) {
		c1, _ := customer.NewCustomer(1, "Alice Jenkins")
		c2, _ := customer.NewCustomer(2, "Marcus Webb")

		assert.False(t, c1.IsEqual(c2))
	})

	t.Run("should return false for nil", func(t *testing.T) {
		c1, _ := customer.NewCustomer(1, "Alice Jenkins")

		assert.False(t, c1.IsEqual(nil))
	})
}

func TestCustomer_Validate(t *testing.T) {
	t.Run("should fail for nil customer", func(t *testing.T) {
		var c *customer.Customer

		err := c.Validate()

		require.Error(t, err)
		assert.Equal(t, customer.ErrCustomerIsNotConstructed, err)
	})

	t.Run("should fail for zero value customer", func(t *testing.T) {
		var c customer.Customer

		err := c.Validate()

		require.Error(t, err)
		assert.Equal(t, customer.ErrCustomerIsNotConstructed, err)
	})
}
