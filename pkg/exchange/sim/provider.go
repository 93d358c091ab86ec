// Package sim is an in-memory paper-trading implementation of
// exchange.Provider. It backs the CLI's dry-run mode and the trader tests:
// deterministic server time, seeded holdings and prices, synchronous fills
// and injectable per-symbol failures.
package sim

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"spotsweep/pkg/exchange"
)

const baseServerTime = 1_700_000_000_000 // fixed epoch ms so runs are reproducible

// Provider keeps balances and prices in memory and fills every order
// synchronously at the seeded price.
type Provider struct {
	mu sync.Mutex

	clockMs   int64
	nextOrder int

	available float64
	holdings  []exchange.CoinHolding
	prices    map[string]float64 // symbol -> last price
	failures  map[string]error   // symbol -> injected submission failure

	placed []exchange.Order
}

var _ exchange.Provider = (*Provider)(nil)

func init() {
	exchange.RegisterProvider("sim", func(name string, cfg *exchange.ProviderConfig) (exchange.Provider, error) {
		return New(), nil
	})
}

// New constructs an empty simulator.
func New() *Provider {
	return &Provider{
		clockMs:   baseServerTime,
		nextOrder: 1,
		prices:    make(map[string]float64),
		failures:  make(map[string]error),
	}
}

func canonical(symbol string) string { return strings.ToUpper(strings.TrimSpace(symbol)) }

// SeedBalance sets the total available quote balance.
func (p *Provider) SeedBalance(available float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.available = available
}

// SeedHolding appends one coin line to the snapshot, preserving seed order.
func (p *Provider) SeedHolding(coin, walletBalance, usdValue string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.holdings = append(p.holdings, exchange.CoinHolding{
		Coin:          canonical(coin),
		WalletBalance: walletBalance,
		USDValue:      usdValue,
	})
}

// SetPrice seeds the last traded price for a symbol.
func (p *Provider) SetPrice(symbol string, price float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.prices[canonical(symbol)] = price
}

// FailSymbol makes every subsequent order for the symbol fail with err.
func (p *Provider) FailSymbol(symbol string, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failures[canonical(symbol)] = err
}

// PlacedOrders returns the orders submitted so far, in submission order.
func (p *Provider) PlacedOrders() []exchange.Order {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]exchange.Order, len(p.placed))
	copy(out, p.placed)
	return out
}

// ServerTime advances a millisecond per call so consecutive signatures never
// reuse a timestamp, mirroring the live venue's monotonic clock.
func (p *Provider) ServerTime(ctx context.Context) (int64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.clockMs++
	return p.clockMs, nil
}

// AccountSnapshot returns a copy of the seeded account state.
func (p *Provider) AccountSnapshot(ctx context.Context) (*exchange.AccountSnapshot, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.holdings) == 0 && p.available == 0 {
		return nil, exchange.ErrNoAccountData
	}
	holdings := make([]exchange.CoinHolding, len(p.holdings))
	copy(holdings, p.holdings)
	return &exchange.AccountSnapshot{
		TotalAvailableBalance: strconv.FormatFloat(p.available, 'f', -1, 64),
		Holdings:              holdings,
	}, nil
}

// Ticker returns the seeded price for a symbol.
func (p *Provider) Ticker(ctx context.Context, symbol string) (*exchange.Ticker, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	sym := canonical(symbol)
	price, ok := p.prices[sym]
	if !ok {
		return nil, exchange.ErrUnknownSymbol
	}
	return &exchange.Ticker{
		Symbol:    sym,
		LastPrice: strconv.FormatFloat(price, 'f', -1, 64),
	}, nil
}

// PlaceOrder records the order and fills it immediately, unless a failure
// was injected for the symbol.
func (p *Provider) PlaceOrder(ctx context.Context, order exchange.Order) (*exchange.OrderResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	sym := canonical(order.Symbol)
	if err, ok := p.failures[sym]; ok {
		return nil, err
	}
	p.placed = append(p.placed, order)
	id := p.nextOrder
	p.nextOrder++
	return &exchange.OrderResult{
		OrderID:     fmt.Sprintf("sim-%06d", id),
		OrderLinkID: fmt.Sprintf("sim-link-%06d", id),
	}, nil
}
