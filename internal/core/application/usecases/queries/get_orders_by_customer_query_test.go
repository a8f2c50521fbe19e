package queries_test

import (
	"testing"

	"retail/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrdersByCustomerQuery(t *testing.T) {
	t.Run("should expose requested customer id", func(t *testing.T) {
		query := queries.NewGetOrdersByCustomerQuery(7)

		assert.Equal(t, 7, query.CustomerID())
		require.NoError(t, query.Validate())
	})

	t.Run("should fail validation for zero value query", func(t *testing.T) {
		var query queries.GetOrdersByCustomerQuery

		err := query.Validate()

		require.Error(t, err)
		assert.Equal(t, queries.ErrGetOrdersByCustomerQueryIsNotConstructed, err)
	})
}
