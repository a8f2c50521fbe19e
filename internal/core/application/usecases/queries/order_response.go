// Package queries implements the read-side use cases of the retail core.
// Query objects are constructor-guarded and validated by their handlers;
// handlers read through the ports and map aggregates to response DTOs.
package queries

import (
	"retail/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderResponse represents one purchase order in query results.
// Prices are exposed as decimals; Total already includes tax.
type OrderResponse struct {
	ID         int
	CustomerID int
	Status     string
	Products   map[string]decimal.Decimal
	Total      decimal.Decimal
}

// newOrderResponse maps an order aggregate to its response representation.
func newOrderResponse(o *order.Order) OrderResponse {
	products := make(map[string]decimal.Decimal, len(o.Products()))
	for name, price := range o.Products() {
		products[name] = price.Decimal()
	}

	return OrderResponse{
		ID:         o.ID(),
		CustomerID: o.Customer().ID(),
		Status:     o.Status().String(),
		Products:   products,
		Total:      o.Total(),
	}
}
