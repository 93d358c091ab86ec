package precision

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 500.0, RoundTo(499.999, 2))
	assert.Equal(t, 0.05, RoundTo(0.045, 2))
	assert.Equal(t, -0.05, RoundTo(-0.045, 2))
	assert.Equal(t, 123.46, RoundTo(123.456, 2))

	// Re-rounding an already rounded value is a no-op.
	once := RoundTo(37.12999, 2)
	assert.Equal(t, once, RoundTo(once, 2))
}

func TestFloorTo(t *testing.T) {
	assert.Equal(t, 0.051234, FloorTo(0.0512349, 6))
	assert.Equal(t, 0.999999, FloorTo(0.9999999, 6))
	assert.Equal(t, 0.0, FloorTo(0.0000009, 6))

	// Truncation never exceeds the input.
	inputs := []float64{0.1234567, 1.9999999, 42.0, 0.000001, 7.6543210}
	for _, x := range inputs {
		assert.LessOrEqual(t, FloorTo(x, 6), x)
	}

	once := FloorTo(3.8765432, 6)
	assert.Equal(t, once, FloorTo(once, 6))
}

func TestFormatSpend(t *testing.T) {
	assert.Equal(t, "500.00", FormatSpend(500))
	assert.Equal(t, "500.00", FormatSpend(499.999))
	assert.Equal(t, "0.01", FormatSpend(0.011))
	assert.Equal(t, "123.46", FormatSpend(123.456))
}

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "0.05", FormatQuantity(0.05, 6))
	assert.Equal(t, "0.05", FormatQuantity(0.0500001, 6))
	assert.Equal(t, "0.051234", FormatQuantity(0.0512349, 6))
	assert.Equal(t, "3", FormatQuantity(3.0, 6))
	assert.Equal(t, "0", FormatQuantity(0.0000009, 6))
}

func TestIsDust(t *testing.T) {
	// Below the notional floor.
	assert.True(t, IsDust(0.99, 10.0, DefaultMinNotional, DefaultMaxQuantityDecimals))
	assert.True(t, IsDust(0.40, 3.0, DefaultMinNotional, DefaultMaxQuantityDecimals))

	// Exactly at the floor is tradable.
	assert.False(t, IsDust(1.00, 10.0, DefaultMinNotional, DefaultMaxQuantityDecimals))

	// Quantity that truncates to zero is dust no matter the USD value.
	assert.True(t, IsDust(50.0, 0.0000009, DefaultMinNotional, DefaultMaxQuantityDecimals))

	assert.False(t, IsDust(150.0, 0.05, DefaultMinNotional, DefaultMaxQuantityDecimals))
}
