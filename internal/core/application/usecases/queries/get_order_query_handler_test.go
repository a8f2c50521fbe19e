package queries_test

import (
	"context"
	"testing"

	"retail/internal/core/application/usecases/queries"
	"retail/internal/core/domain/model/order"
	"retail/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrderQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()
	repo := fakeOrderRepository{orders: []*order.Order{
		buildOrder(t, 1, 1, order.Pending, map[string]string{"banana": "1.99"}),
		buildOrder(t, 2, 2, order.Complete, nil),
	}}

	t.Run("should return matching order", func(t *testing.T) {
		handler := queries.NewGetOrderQueryHandler(repo)

		response, err := handler.Handle(ctx, queries.NewGetOrderQuery(2))

		require.NoError(t, err)
		assert.Equal(t, 2, response.ID)
		assert.Equal(t, 2, response.CustomerID)
		assert.Equal(t, "complete", response.Status)
		assert.True(t, response.Total.IsZero())
	})

	t.Run("should return not found for absent id", func(t *testing.T) {
		handler := queries.NewGetOrderQueryHandler(repo)

		_, err := handler.Handle(ctx, queries.NewGetOrderQuery(3))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should reject zero value query", func(t *testing.T) {
		handler := queries.NewGetOrderQueryHandler(repo)

		var query queries.GetOrderQuery
		_, err := handler.Handle(ctx, query)

		require.Error(t, err)
		assert.Equal(t, queries.ErrGetOrderQueryIsNotConstructed, err)
	})
}
