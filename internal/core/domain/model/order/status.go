package order

import (
	"fmt"

	"retail/internal/pkg/errs"
)

// Status represents the fulfillment state of a purchase order.
// The vocabulary is a fixed five-stage lifecycle:
//
//	pending -> paid -> processing -> shipped -> complete
//
// Status is a value object; orders are constructed with a status from this
// vocabulary and never leave it. Values outside the vocabulary (including the
// zero value) fail validation at construction time.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a newly placed order
	// that has not been paid for yet.
	Pending

	// Paid indicates payment for the order has been received.
	Paid

	// Processing indicates the order is being picked and packed.
	Processing

	// Shipped indicates the order has left the warehouse.
	Shipped

	// Complete indicates the order has been delivered and closed.
	Complete
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Paid:       "paid",
		Processing: "processing",
		Shipped:    "shipped",
		Complete:   "complete",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Paid:       "paid",
		Processing: "processing",
		Shipped:    "shipped",
		Complete:   "complete",
	}
}

// StatusFromString parses a status from its source representation.
//
// Accepted values are exactly the fulfillment vocabulary:
// "pending", "paid", "processing", "shipped", "complete".
//
// Returns:
//   - the matching Status for a recognized value
//   - (Unknown, error) for any other input, including the empty string
//
// This function is the parsing entry point for statuses coming from
// external sources such as the order data file.
func StatusFromString(value string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"fulfillment status is invalid",
		fmt.Errorf("%q is not a valid fulfillment status", value),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Paid, Processing, Shipped, Complete.
// Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"fulfillment status is invalid",
			fmt.Errorf("%d is not a valid fulfillment status", s),
		)
	}
	return nil
}

// String returns the source representation of the status.
//
// Returns:
//   - "pending", "paid", "processing", "shipped", or "complete" for valid statuses
//   - "unknown" for invalid status values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
