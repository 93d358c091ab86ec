// Package precision holds the pure numeric rules for converting floating
// account balances into exchange-legal order quantities. All arithmetic goes
// through shopspring/decimal; float64 is accepted at the edges only, so
// repeated parse/format cycles cannot drift.
package precision

import "github.com/shopspring/decimal"

const (
	// DefaultMaxQuantityDecimals is the venue-mandated maximum precision for
	// base-currency sell quantities.
	DefaultMaxQuantityDecimals int32 = 6

	// DefaultMinNotional is the minimum USD-estimated value a holding must
	// carry to be worth submitting; anything below is dust the venue would
	// reject for insufficient notional.
	DefaultMinNotional = 1.0

	// SpendDecimals is the precision for quote-denominated buy quantities
	// (cents-equivalent of the quote currency).
	SpendDecimals int32 = 2
)

// RoundTo rounds half away from zero at the given number of decimals. Used
// for spend-denominated buy quantities.
func RoundTo(x float64, decimals int32) float64 {
	v, _ := decimal.NewFromFloat(x).Round(decimals).Float64()
	return v
}

// FloorTo truncates toward zero at the given number of decimals. Used for
// holding-denominated sell quantities: a sell must never exceed the held
// balance, so rounding up is not an option.
func FloorTo(x float64, decimals int32) float64 {
	v, _ := decimal.NewFromFloat(x).Truncate(decimals).Float64()
	return v
}

// FormatSpend renders a quote-currency spend rounded to two decimals with a
// fixed two-digit fraction, e.g. 500 -> "500.00".
func FormatSpend(x float64) string {
	return decimal.NewFromFloat(x).Round(SpendDecimals).StringFixed(SpendDecimals)
}

// FormatQuantity renders a base-currency quantity truncated at the given
// precision with trailing zeros trimmed, e.g. 0.050000 -> "0.05".
func FormatQuantity(x float64, decimals int32) string {
	return decimal.NewFromFloat(x).Truncate(decimals).String()
}

// IsDust reports whether a holding should be excluded from liquidation:
// either its USD-estimated value is below minNotional, or its quantity
// truncates to exactly zero at the venue's maximum precision. The boundary
// is inclusive: a value exactly at minNotional is not dust.
func IsDust(usdValue, quantity, minNotional float64, decimals int32) bool {
	if usdValue < minNotional {
		return true
	}
	return decimal.NewFromFloat(quantity).Truncate(decimals).IsZero()
}
