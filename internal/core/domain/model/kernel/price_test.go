package kernel_test

import (
	"testing"

	"retail/internal/core/domain/model/kernel"
	"retail/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrice(t *testing.T) {
	t.Run("should create price from positive decimal", func(t *testing.T) {
		p, err := kernel.NewPrice(decimal.NewFromFloat(1.99))

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, "1.99", p.String())
	})

	t.Run("should create zero price", func(t *testing.T) {
		p, err := kernel.NewPrice(decimal.Zero)

		require.NoError(t, err)
		assert.Equal(t, "0", p.String())
	})

	t.Run("should reject negative price", func(t *testing.T) {
		p, err := kernel.NewPrice(decimal.NewFromFloat(-0.01))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "is negative")
		require.Error(t, p.Validate())
	})
}

func TestPriceFromString(t *testing.T) {
	t.Run("should parse valid decimal strings", func(t *testing.T) {
		cases := map[string]string{
			"1.99":    "1.99",
			"3":       "3",
			"0":       "0",
			" 4.25 ":  "4.25",
			"1234.50": "1234.5",
		}

		for input, expected := range cases {
			p, err := kernel.PriceFromString(input)

			require.NoError(t, err, "input %q", input)
			assert.Equal(t, expected, p.String(), "input %q", input)
		}
	})

	t.Run("should reject malformed strings", func(t *testing.T) {
		for _, input := range []string{"", "abc", "1.2.3", "1,99"} {
			_, err := kernel.PriceFromString(input)

			require.Error(t, err, "input %q", input)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, "input %q", input)
		}
	})

	t.Run("should reject negative strings", func(t *testing.T) {
		_, err := kernel.PriceFromString("-1.99")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestPriceFromFloat(t *testing.T) {
	t.Run("should create price from float exactly", func(t *testing.T) {
		p, err := kernel.PriceFromFloat(1.99)

		require.NoError(t, err)
		assert.Equal(t, "1.99", p.String())
	})

	t.Run("should reject negative float", func(t *testing.T) {
		_, err := kernel.PriceFromFloat(-5)

		require.Error(t, err)
	})
}

func TestPrice_IsEqual(t *testing.T) {
	t.Run("should treat equivalent representations as equal", func(t *testing.T) {
		p1, _ := kernel.PriceFromString("1.5")
		p2, _ := kernel.PriceFromString("1.50")

		assert.True(t, p1.IsEqual(p2))
	})

	t.Run("should treat different values as not equal", func(t *testing.T) {
		p1, _ := kernel.PriceFromString("1.5")
		p2, _ := kernel.PriceFromString("1.51")

		assert.False(t, p1.IsEqual(p2))
	})
}

func TestPrice_Validate(t *testing.T) {
	t.Run("should fail for zero value price", func(t *testing.T) {
		var p kernel.Price

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrPriceIsNotConstructed, err)
	})
}

func TestPrice_Float64(t *testing.T) {
	t.Run("should return float representation", func(t *testing.T) {
		p, _ := kernel.PriceFromString("3.00")

		assert.InEpsilon(t, 3.0, p.Float64(), 1e-9)
	})
}
