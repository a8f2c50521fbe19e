package queries_test

import (
	"testing"

	"retail/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrderQuery(t *testing.T) {
	t.Run("should expose requested id", func(t *testing.T) {
		query := queries.NewGetOrderQuery(42)

		assert.Equal(t, 42, query.ID())
		require.NoError(t, query.Validate())
	})

	t.Run("should fail validation for zero value query", func(t *testing.T) {
		var query queries.GetOrderQuery

		err := query.Validate()

		require.Error(t, err)
		assert.Equal(t, queries.ErrGetOrderQueryIsNotConstructed, err)
	})
}
