package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"

	"retail/cmd"
	"retail/internal/core/application/usecases/queries"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync() //nolint:errcheck // stderr sync failure is not actionable

	configs := getConfigs(logger)

	root, err := cmd.NewCompositionRoot(configs, logger)
	if err != nil {
		logger.Fatal("failed to build composition root", zap.Error(err))
	}

	if err := run(context.Background(), root, os.Args[1:]); err != nil {
		logger.Fatal("command failed", zap.Error(err))
	}
}

// run executes one query against the data set:
//
//	app                list every order
//	app <id>           show the order with the given id
//	app customer <id>  list the orders of the given customer
func run(ctx context.Context, root cmd.CompositionRoot, args []string) error {
	switch {
	case len(args) == 0:
		handler := root.CreateGetAllOrdersQueryHandler()
		orders, err := handler.Handle(ctx, queries.NewGetAllOrdersQuery())
		if err != nil {
			return err
		}
		printOrders(orders)
		return nil

	case len(args) == 2 && args[0] == "customer":
		customerID, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("customer id %q is not an integer", args[1])
		}
		handler := root.CreateGetOrdersByCustomerQueryHandler()
		orders, err := handler.Handle(ctx, queries.NewGetOrdersByCustomerQuery(customerID))
		if err != nil {
			return err
		}
		printOrders(orders)
		return nil

	case len(args) == 1:
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("order id %q is not an integer", args[0])
		}
		handler := root.CreateGetOrderQueryHandler()
		response, err := handler.Handle(ctx, queries.NewGetOrderQuery(id))
		if err != nil {
			return err
		}
		printOrders([]queries.OrderResponse{response})
		return nil

	default:
		return fmt.Errorf("usage: app [<order-id> | customer <customer-id>]")
	}
}

func printOrders(orders []queries.OrderResponse) {
	for _, o := range orders {
		fmt.Printf("order %d  customer=%d  status=%s  total=%s\n",
			o.ID, o.CustomerID, o.Status, o.Total.StringFixed(2))

		names := make([]string, 0, len(o.Products))
		for name := range o.Products {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("  %-20s %s\n", name, o.Products[name].StringFixed(2))
		}
	}
}

func getConfigs(logger *zap.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Warn("no .env file loaded, falling back to environment", zap.Error(err))
	}

	return cmd.Config{
		OrdersCSVPath:    os.Getenv("ORDERS_CSV_PATH"),
		CustomersCSVPath: os.Getenv("CUSTOMERS_CSV_PATH"),
	}
}
