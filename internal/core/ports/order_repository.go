package ports

import (
	"context"

	"retail/internal/core/domain/model/order"
)

// OrderRepository defines the read contract over the order data source.
// The source is static for the process lifetime; implementations expose
// query operations only and never write back.
type OrderRepository interface {
	// GetAll retrieves every order from the data source in source row order.
	// Rows whose customer cannot be resolved are skipped and produce no order.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// Get retrieves the order with the given identifier.
	// Returns an error wrapping errs.ErrObjectNotFound when no order matches;
	// a missing id is an absence, not a failure, and callers are expected to
	// classify it with errors.Is.
	Get(ctx context.Context, id int) (*order.Order, error)

	// GetAllByCustomer retrieves the orders belonging to the given customer,
	// preserving source row order. Returns an empty slice, not an error,
	// when the customer has no orders.
	GetAllByCustomer(ctx context.Context, customerID int) ([]*order.Order, error)
}
