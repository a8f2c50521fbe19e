package queries

import (
	"errors"

	"retail/internal/pkg/guard"
)

var (
	ErrGetOrdersByCustomerQueryIsNotConstructed = errors.New(
		"GetOrdersByCustomerQuery must be created via NewGetOrdersByCustomerQuery constructor",
	)
)

// GetOrdersByCustomerQuery retrieves the orders belonging to one customer.
//
// A customer with no orders yields an empty result, not an error.
type GetOrdersByCustomerQuery struct {
	customerID int
	guard      guard.ConstructorGuard
}

// NewGetOrdersByCustomerQuery creates a query to retrieve the orders of the
// customer with the given id.
func NewGetOrdersByCustomerQuery(customerID int) GetOrdersByCustomerQuery {
	return GetOrdersByCustomerQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}
}

// CustomerID returns the requested customer identifier.
func (q GetOrdersByCustomerQuery) CustomerID() int {
	return q.customerID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersByCustomerQueryIsNotConstructed if validation fails.
func (q GetOrdersByCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByCustomerQueryIsNotConstructed)
}
