package queries_test

import (
	"context"
	"strconv"
	"testing"

	"retail/internal/core/domain/model/customer"
	"retail/internal/core/domain/model/kernel"
	"retail/internal/core/domain/model/order"
	"retail/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

// fakeOrderRepository implements ports.OrderRepository over a fixed slice,
// standing in for the CSV-backed adapter.
type fakeOrderRepository struct {
	orders []*order.Order
	err    error
}

func (f fakeOrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.orders, nil
}

func (f fakeOrderRepository) Get(_ context.Context, id int) (*order.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, o := range f.orders {
		if o.ID() == id {
			return o, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("order", strconv.Itoa(id))
}

func (f fakeOrderRepository) GetAllByCustomer(_ context.Context, customerID int) ([]*order.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	matched := make([]*order.Order, 0)
	for _, o := range f.orders {
		if o.Customer().ID() == customerID {
			matched = append(matched, o)
		}
	}
	return matched, nil
}

func buildOrder(t *testing.T, id int, customerID int, status order.Status, products map[string]string) *order.Order {
	t.Helper()

	buyer, err := customer.NewCustomer(customerID, "Customer "+strconv.Itoa(customerID))
	require.NoError(t, err)

	priced := make(map[string]kernel.Price, len(products))
	for name, raw := range products {
		price, priceErr := kernel.PriceFromString(raw)
		require.NoError(t, priceErr)
		priced[name] = price
	}

	o, err := order.NewOrderWithStatus(id, priced, buyer, status)
	require.NoError(t, err)
	return o
}
