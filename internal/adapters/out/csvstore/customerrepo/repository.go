package customerrepo

import (
	"context"
	"fmt"
	"strconv"

	"retail/internal/adapters/out/csvstore"
	"retail/internal/core/domain/model/customer"
	"retail/internal/pkg/errs"
)

// Repository implements ports.CustomerProvider over a CSV file.
// The file is re-read on every call; the source is static for the process
// lifetime, so callers may cache results if they wish.
type Repository struct {
	path string
}

// NewRepository creates a CSV-backed customer repository reading from path.
func NewRepository(path string) (*Repository, error) {
	if path == "" {
		return nil, errs.NewValueIsRequiredError("path")
	}

	return &Repository{path: path}, nil
}

// GetAll retrieves every customer from the source file in row order.
// Any malformed row fails the whole read.
func (r *Repository) GetAll(_ context.Context) ([]*customer.Customer, error) {
	records, err := csvstore.ReadRecords(r.path, header)
	if err != nil {
		return nil, err
	}

	customers := make([]*customer.Customer, 0, len(records))
	for i, record := range records {
		c, err := toDomain(record)
		if err != nil {
			return nil, fmt.Errorf("customers file %s row %d: %w", r.path, i+2, err)
		}
		customers = append(customers, c)
	}

	return customers, nil
}

// Get retrieves the customer with the given identifier.
// Returns an error wrapping errs.ErrObjectNotFound for an unknown id.
func (r *Repository) Get(ctx context.Context, id int) (*customer.Customer, error) {
	customers, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, c := range customers {
		if c.ID() == id {
			return c, nil
		}
	}

	return nil, errs.NewObjectNotFoundError("customer", strconv.Itoa(id))
}
