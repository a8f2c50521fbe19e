package customer

import (
	"errors"
	"fmt"

	"retail/internal/pkg/errs"
	"retail/internal/pkg/guard"
)

// Domain errors for customer operations.
var (
	// ErrNameIsRequired is returned when attempting to create a customer without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
)

// Customer represents a buyer referenced by purchase orders.
// It is a lightweight entity owned by its own storage; orders hold a
// non-owning reference to it and only rely on its identity.
//
// Business rules:
//   - Customer must have a positive integer identifier
//   - Customer must have a non-empty name
type Customer struct {
	// id uniquely identifies the customer within the loaded data set
	id int
	// name is the human-readable name of the customer
	name string
	// guard ensures the customer was properly constructed
	guard guard.ConstructorGuard
}

// NewCustomer creates a new Customer with the specified parameters.
// This is the only way to create a valid Customer instance.
//
// Parameters:
//   - id: Unique identifier for the customer (must be positive)
//   - name: Human-readable name (must be non-empty)
//
// Returns:
//   - *Customer: A fully initialized customer
//   - error: Validation error if any parameter is invalid
func NewCustomer(id int, name string) (*Customer, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"customer id",
			fmt.Errorf("%d is not greater than 0", id),
		)
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}

	return &Customer{
		id:    id,
		name:  name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() int {
	return c.id
}

// Name returns the customer's name.
func (c *Customer) Name() string {
	return c.name
}

// IsEqual compares two customers by their unique identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id == other.id
}

// Validate ensures the Customer instance was properly constructed through NewCustomer.
// Returns ErrCustomerIsNotConstructed otherwise.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}
