// Package customerrepo provides the CSV-backed customer lookup collaborator.
// It reads the customer source file and resolves customers by identifier,
// honoring the lookup contract of ports.CustomerProvider.
package customerrepo

import (
	"strconv"
	"strings"

	"retail/internal/core/domain/model/customer"
	"retail/internal/pkg/errs"
)

// header is the required column layout of the customer source file.
var header = []string{"id", "name"}

const (
	colID = iota
	colName
)

// toDomain converts a raw source row to a customer entity.
func toDomain(record []string) (*customer.Customer, error) {
	id, err := strconv.Atoi(strings.TrimSpace(record[colID]))
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("customer id", err)
	}

	return customer.NewCustomer(id, strings.TrimSpace(record[colName]))
}
