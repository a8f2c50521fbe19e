package queries

import (
	"context"

	"retail/internal/core/ports"
)

// GetOrderQueryHandler retrieves a single order from the order data source.
type GetOrderQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetOrderQueryHandler creates a handler reading through the given repository.
func NewGetOrderQueryHandler(orders ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

// Handle executes the query. Returns the matching order, or an error wrapping
// errs.ErrObjectNotFound when no order has the requested id.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	o, err := h.orders.Get(ctx, query.ID())
	if err != nil {
		return OrderResponse{}, err
	}

	return newOrderResponse(o), nil
}
