package queries

import (
	"errors"

	"retail/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order by its identifier.
//
// An identifier absent from the source is an absence, not a failure: the
// handler surfaces it as an error wrapping errs.ErrObjectNotFound, which
// callers classify with errors.Is.
type GetOrderQuery struct {
	id    int
	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve the order with the given id.
// Any integer is accepted; ids not present in the source resolve to not-found.
func NewGetOrderQuery(id int) GetOrderQuery {
	return GetOrderQuery{
		id:    id,
		guard: guard.NewConstructorGuard(),
	}
}

// ID returns the requested order identifier.
func (q GetOrderQuery) ID() int {
	return q.id
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}
