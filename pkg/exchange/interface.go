package exchange

import "context"

// Provider exposes spot trading capabilities in an exchange-agnostic fashion.
type Provider interface {
	// ServerTime returns the venue's clock as a millisecond timestamp.
	// Signed requests must be stamped with this, never local wall-clock.
	ServerTime(ctx context.Context) (int64, error)

	// AccountSnapshot fetches a point-in-time view of the unified account.
	AccountSnapshot(ctx context.Context) (*AccountSnapshot, error)

	// Ticker fetches the last traded price for a spot symbol.
	Ticker(ctx context.Context, symbol string) (*Ticker, error)

	// PlaceOrder submits a market order and reports the typed outcome.
	PlaceOrder(ctx context.Context, order Order) (*OrderResult, error)
}
