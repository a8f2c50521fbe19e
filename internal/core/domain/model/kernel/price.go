package kernel

import (
	"fmt"
	"strings"

	"retail/internal/pkg/errs"
	"retail/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrPriceIsNotConstructed indicates that a Price was not properly initialized
// through one of the constructor functions. This error is returned when
// validating a zero-value Price.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError(
	"Price must be created via NewPrice, PriceFromString, or PriceFromFloat",
)

// Price is a value object that represents a non-negative amount of money,
// such as the unit price of a product line item. It wraps a decimal value
// to keep monetary arithmetic exact; prices are never represented or summed
// as binary floating point.
//
// The zero value of Price is invalid and must be constructed using one of the
// provided factory functions: NewPrice, PriceFromString, or PriceFromFloat.
//
// Price is immutable and safe to copy.
//
// Example usage:
//
//	price, err := kernel.PriceFromString("1.99")
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(price.String()) // "1.99"
type Price struct {
	value decimal.Decimal
	guard guard.ConstructorGuard
}

// NewPrice creates a Price from a decimal value.
// Returns a validation error if the value is negative.
func NewPrice(value decimal.Decimal) (Price, error) {
	if value.IsNegative() {
		return Price{}, errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%s is negative", value),
		)
	}
	return Price{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// PriceFromString parses a Price from its decimal string representation,
// e.g. "1.99" or "3". Surrounding whitespace is tolerated.
//
// Returns a validation error if the string is not a valid decimal number
// or if the parsed value is negative. This function is the parsing entry
// point for prices coming from external sources such as the order data file.
func PriceFromString(s string) (Price, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price", err)
	}
	return NewPrice(value)
}

// PriceFromFloat creates a Price from a float64 amount.
// The float is converted through its shortest exact decimal representation,
// so PriceFromFloat(1.99) yields exactly "1.99".
//
// Returns a validation error if the amount is negative.
func PriceFromFloat(amount float64) (Price, error) {
	return NewPrice(decimal.NewFromFloat(amount))
}

// Decimal returns the underlying decimal value of the price.
func (p Price) Decimal() decimal.Decimal {
	return p.value
}

// Float64 returns the price as a float64.
// Intended for display only; monetary arithmetic should use Decimal.
func (p Price) Float64() float64 {
	f, _ := p.value.Float64()
	return f
}

// String returns the decimal string representation of the price.
// This method implements the fmt.Stringer interface.
func (p Price) String() string {
	return p.value.String()
}

// IsEqual compares two prices for numeric equality.
// "1.5" and "1.50" are considered equal.
func (p Price) IsEqual(other Price) bool {
	return p.value.Equal(other.value)
}

// Validate checks if the Price is properly constructed.
// Returns ErrPriceIsNotConstructed if the Price is a zero value.
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}
