package cmd

import (
	"retail/internal/adapters/out/csvstore/customerrepo"
	"retail/internal/adapters/out/csvstore/orderrepo"
	"retail/internal/core/application/usecases/queries"

	"go.uber.org/zap"
)

// CompositionRoot wires the CSV adapters to the query handlers.
// The customer repository doubles as the customer lookup collaborator
// injected into the order repository.
type CompositionRoot struct {
	orderRepository    *orderrepo.Repository
	customerRepository *customerrepo.Repository
}

// NewCompositionRoot builds the object graph from the given configuration.
func NewCompositionRoot(config Config, logger *zap.Logger) (CompositionRoot, error) {
	customerRepository, err := customerrepo.NewRepository(config.CustomersCSVPath)
	if err != nil {
		return CompositionRoot{}, err
	}

	orderRepository, err := orderrepo.NewRepository(config.OrdersCSVPath, customerRepository, logger)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		orderRepository:    orderRepository,
		customerRepository: customerRepository,
	}, nil
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.orderRepository)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderRepository)
}

func (c *CompositionRoot) CreateGetOrdersByCustomerQueryHandler() queries.GetOrdersByCustomerQueryHandler {
	return queries.NewGetOrdersByCustomerQueryHandler(c.orderRepository)
}
