package order

import (
	"errors"
	"fmt"

	"retail/internal/core/domain/model/customer"
	"retail/internal/core/domain/model/kernel"
	"retail/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or NewOrderWithStatus factory methods. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or NewOrderWithStatus constructor")

	// ErrCustomerIsRequired is returned when attempting to create an order without a customer.
	ErrCustomerIsRequired = errs.NewValueIsRequiredError("customer")
)

// taxMultiplier applies the fixed 7.5% sales tax to an order's product sum.
var taxMultiplier = decimal.RequireFromString("1.075")

// Order represents a purchase order in the retail system. It is the aggregate root
// that manages the order's product line items and fulfillment status.
//
// Order follows these invariants:
//   - Must have a positive integer identifier, immutable after construction
//   - Must reference a customer, immutable after construction
//   - Fulfillment status is always within the fixed vocabulary and has no setter
//   - Product names are unique; duplicate additions are rejected
//   - Total is non-negative and deterministically derived from the product map
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods. Orders are not safe for concurrent
// mutation; callers sharing an Order across goroutines must synchronize.
type Order struct {
	// id is the unique identifier for the order
	id int

	// products maps product name to unit price
	products map[string]kernel.Price

	// customer is a non-owning reference to the buyer
	customer *customer.Customer

	// status is the current position in the fulfillment lifecycle
	status Status

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in the Pending status. This is the construction
// path for orders whose status is unspecified.
//
// Parameters:
//   - id: Unique identifier for the order (must be positive)
//   - products: Product name to unit price mapping (may be empty; copied defensively)
//   - buyer: The customer placing the order (must be non-nil and constructed)
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
//
// Example:
//
//	price, _ := kernel.PriceFromString("1.99")
//	o, err := order.NewOrder(1, map[string]kernel.Price{"banana": price}, buyer)
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(id int, products map[string]kernel.Price, buyer *customer.Customer) (*Order, error) {
	return NewOrderWithStatus(id, products, buyer, Pending)
}

// NewOrderWithStatus creates a new Order with an explicit fulfillment status.
// This is the construction path for orders restored from a data source, where
// the status is part of the record.
//
// The status must be a member of the fixed vocabulary; anything else, including
// the zero value Unknown, fails with a validation error. Validation failures
// from multiple parameters are joined into a single error.
func NewOrderWithStatus(
	id int,
	products map[string]kernel.Price,
	buyer *customer.Customer,
	status Status,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setProducts(products),
		o.setCustomer(buyer),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a constructor.
// This prevents bypassing validation by directly instantiating the struct.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed if the order was not created via a constructor
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's unique identifier.
func (o *Order) ID() int {
	return o.id
}

// Customer returns the customer the order belongs to.
func (o *Order) Customer() *customer.Customer {
	return o.customer
}

// Status returns the current fulfillment status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Products returns a copy of the order's product line items, mapping
// product name to unit price. Mutating the returned map does not affect
// the order.
func (o *Order) Products() map[string]kernel.Price {
	products := make(map[string]kernel.Price, len(o.products))
	for name, price := range o.products {
		products[name] = price
	}
	return products
}

// Total returns the order total: the sum of all unit prices increased by the
// fixed 7.5% tax and rounded half-up to 2 decimal places.
//
// An order with no products has a total of 0. The computation is deterministic
// and side-effect-free.
//
// Example:
//
//	// products {"banana": 1.99, "cracker": 3.00}
//	o.Total() // 5.36  (4.99 * 1.075 = 5.36425, rounds to 5.36)
func (o *Order) Total() decimal.Decimal {
	sum := decimal.Zero
	for _, price := range o.products {
		sum = sum.Add(price.Decimal())
	}
	return sum.Mul(taxMultiplier).Round(2)
}

// AddProduct inserts a new product line item.
//
// This method enforces the following business rules:
//   - The product name must be non-empty
//   - The price must be a constructed, non-negative Price
//   - The product must not already be in the order
//
// Returns:
//   - nil on successful insertion
//   - error if the name duplicates an existing line item or a parameter is invalid
//
// On failure the order is left unmodified: the existing entry keeps its price
// and the total is unchanged.
func (o *Order) AddProduct(name string, price kernel.Price) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	if err := price.Validate(); err != nil {
		return err
	}
	if _, exists := o.products[name]; exists {
		return errs.NewValueIsInvalidErrorWithCause(
			"product",
			fmt.Errorf("duplicate product %q", name),
		)
	}

	o.products[name] = price
	return nil
}

// RemoveProduct deletes the product line item keyed by name.
//
// Returns:
//   - nil on successful removal
//   - error wrapping errs.ErrObjectNotFound if no such line item exists
//
// On failure the product collection is left unmodified.
func (o *Order) RemoveProduct(name string) error {
	if _, exists := o.products[name]; !exists {
		return errs.NewObjectNotFoundError("product", name)
	}

	delete(o.products, name)
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d is not greater than 0", id))
	}
	o.id = id
	return nil
}

// setProducts validates and copies the order's product line items.
// A nil map is treated as an empty order.
// This is a private method used only during construction.
func (o *Order) setProducts(products map[string]kernel.Price) error {
	copied := make(map[string]kernel.Price, len(products))
	for name, price := range products {
		if name == "" {
			return errs.NewValueIsRequiredError("product name")
		}
		if err := price.Validate(); err != nil {
			return err
		}
		copied[name] = price
	}
	o.products = copied
	return nil
}

// setCustomer validates and sets the order's customer reference.
// The customer must be constructed; its existence in storage is not
// checked here.
// This is a private method used only during construction.
func (o *Order) setCustomer(buyer *customer.Customer) error {
	if buyer == nil {
		return ErrCustomerIsRequired
	}
	if err := buyer.Validate(); err != nil {
		return err
	}
	o.customer = buyer
	return nil
}

// setStatus validates and sets the order's fulfillment status.
// This is a private method used only during construction.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
