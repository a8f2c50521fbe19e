// Package orderrepo provides the CSV-backed order repository.
// It parses order source rows, resolves customer references through the
// ports.CustomerProvider collaborator, and reconstructs order aggregates.
package orderrepo

import (
	"fmt"
	"strconv"
	"strings"

	"retail/internal/core/domain/model/customer"
	"retail/internal/core/domain/model/kernel"
	"retail/internal/core/domain/model/order"
	"retail/internal/pkg/errs"
)

// header is the required column layout of the order source file.
var header = []string{"id", "products", "customer", "status"}

const (
	colID = iota
	colProducts
	colCustomer
	colStatus
)

// rowDTO is the parsed form of one order source row, before the customer
// reference has been resolved.
type rowDTO struct {
	ID         int
	Products   map[string]kernel.Price
	CustomerID int
	Status     order.Status
}

// parseRow converts a raw source row to its parsed form.
// The source is presumed well-formed: a non-integer id or customer id,
// a malformed products field, or a status outside the fulfillment
// vocabulary is an error, not a skippable row.
func parseRow(record []string) (rowDTO, error) {
	id, err := strconv.Atoi(strings.TrimSpace(record[colID]))
	if err != nil {
		return rowDTO{}, errs.NewValueIsInvalidErrorWithCause("order id", err)
	}

	products, err := parseProducts(record[colProducts])
	if err != nil {
		return rowDTO{}, err
	}

	customerID, err := strconv.Atoi(strings.TrimSpace(record[colCustomer]))
	if err != nil {
		return rowDTO{}, errs.NewValueIsInvalidErrorWithCause("customer id", err)
	}

	status, err := order.StatusFromString(strings.TrimSpace(record[colStatus]))
	if err != nil {
		return rowDTO{}, err
	}

	return rowDTO{
		ID:         id,
		Products:   products,
		CustomerID: customerID,
		Status:     status,
	}, nil
}

// parseProducts parses the products field: a semicolon-separated list of
// name:price pairs, e.g. "banana:1.99;cracker:3.00". An empty field yields
// an empty map. A pair missing its price half, an unparseable price, or a
// repeated product name fails the parse.
func parseProducts(field string) (map[string]kernel.Price, error) {
	products := make(map[string]kernel.Price)
	if strings.TrimSpace(field) == "" {
		return products, nil
	}

	for _, pair := range strings.Split(field, ";") {
		name, rawPrice, found := strings.Cut(pair, ":")
		if !found {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"products",
				fmt.Errorf("pair %q is missing a price", pair),
			)
		}

		name = strings.TrimSpace(name)
		if _, exists := products[name]; exists {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"products",
				fmt.Errorf("duplicate product %q", name),
			)
		}

		price, err := kernel.PriceFromString(rawPrice)
		if err != nil {
			return nil, err
		}
		products[name] = price
	}

	return products, nil
}

// toDomain reconstructs an order aggregate from a parsed row and its
// resolved customer.
func toDomain(dto rowDTO, buyer *customer.Customer) (*order.Order, error) {
	return order.NewOrderWithStatus(dto.ID, dto.Products, buyer, dto.Status)
}
