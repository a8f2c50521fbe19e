// Package ports defines the data-access interfaces for the retail core.
// These interfaces establish contracts between the domain layer and the
// storage adapters, enabling dependency inversion and testability.
package ports

import (
	"context"

	"retail/internal/core/domain/model/customer"
)

// CustomerProvider defines the lookup contract used to resolve customer
// references while loading orders.
type CustomerProvider interface {
	// Get retrieves the customer with the given identifier.
	// Returns an error wrapping errs.ErrObjectNotFound for an unknown id;
	// it never panics for ids absent from the source.
	Get(ctx context.Context, id int) (*customer.Customer, error)
}
