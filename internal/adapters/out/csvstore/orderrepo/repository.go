package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"retail/internal/adapters/out/csvstore"
	"retail/internal/core/domain/model/order"
	"retail/internal/core/ports"
	"retail/internal/pkg/errs"

	"go.uber.org/zap"
)

// Repository implements ports.OrderRepository over a CSV file.
// Customer references are resolved through the injected CustomerProvider;
// rows whose customer cannot be resolved produce no order. The file is
// re-read on every call.
type Repository struct {
	path      string
	customers ports.CustomerProvider
	logger    *zap.Logger
}

// NewRepository creates a CSV-backed order repository reading from path
// and resolving customers through the given provider.
// A nil logger disables logging.
func NewRepository(path string, customers ports.CustomerProvider, logger *zap.Logger) (*Repository, error) {
	if path == "" {
		return nil, errs.NewValueIsRequiredError("path")
	}
	if customers == nil {
		return nil, errs.NewValueIsRequiredError("customer provider")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Repository{
		path:      path,
		customers: customers,
		logger:    logger,
	}, nil
}

// GetAll retrieves every order from the source file in row order.
//
// Each row is parsed and its customer id resolved through the provider.
// Rows whose customer is not found are skipped silently (logged at debug);
// any other failure, including a malformed row or an unreadable file, fails
// the whole load.
func (r *Repository) GetAll(ctx context.Context) ([]*order.Order, error) {
	records, err := csvstore.ReadRecords(r.path, header)
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(records))
	for i, record := range records {
		dto, err := parseRow(record)
		if err != nil {
			return nil, fmt.Errorf("orders file %s row %d: %w", r.path, i+2, err)
		}

		buyer, err := r.customers.Get(ctx, dto.CustomerID)
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				r.logger.Debug("skipping order row: customer not found",
					zap.Int("order_id", dto.ID),
					zap.Int("customer_id", dto.CustomerID),
				)
				continue
			}
			return nil, err
		}

		o, err := toDomain(dto, buyer)
		if err != nil {
			return nil, fmt.Errorf("orders file %s row %d: %w", r.path, i+2, err)
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// Get retrieves the order with the given identifier.
// Returns an error wrapping errs.ErrObjectNotFound when no order matches.
func (r *Repository) Get(ctx context.Context, id int) (*order.Order, error) {
	orders, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, o := range orders {
		if o.ID() == id {
			return o, nil
		}
	}

	return nil, errs.NewObjectNotFoundError("order", strconv.Itoa(id))
}

// GetAllByCustomer retrieves the orders belonging to the given customer,
// preserving source row order. Returns an empty slice when none match.
func (r *Repository) GetAllByCustomer(ctx context.Context, customerID int) ([]*order.Order, error) {
	orders, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*order.Order, 0)
	for _, o := range orders {
		if o.Customer().ID() == customerID {
			matched = append(matched, o)
		}
	}

	return matched, nil
}
