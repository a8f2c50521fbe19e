package queries

import (
	"context"

	"retail/internal/core/ports"
)

// GetOrdersByCustomerQueryHandler retrieves a customer's orders from the
// order data source.
type GetOrdersByCustomerQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetOrdersByCustomerQueryHandler creates a handler reading through the given repository.
func NewGetOrdersByCustomerQueryHandler(orders ports.OrderRepository) GetOrdersByCustomerQueryHandler {
	return GetOrdersByCustomerQueryHandler{orders: orders}
}

// Handle executes the query and returns the customer's orders in source row
// order. A customer with no orders yields an empty slice.
func (h GetOrdersByCustomerQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByCustomerQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.GetAllByCustomer(ctx, query.CustomerID())
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, newOrderResponse(o))
	}

	return responses, nil
}
