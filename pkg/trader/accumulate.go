package trader

import (
	"context"
	"fmt"
	"strconv"

	"github.com/zeromicro/go-zero/core/logx"

	"spotsweep/pkg/exchange"
	"spotsweep/pkg/precision"
)

// Accumulator buys the configured target pair with a fraction of the
// available quote balance. Single-shot: there is only one order, so any
// gateway failure propagates immediately as a typed error.
type Accumulator struct {
	provider exchange.Provider
	cfg      *Config
}

// NewAccumulator constructs a buy workflow.
func NewAccumulator(provider exchange.Provider, cfg *Config) *Accumulator {
	if cfg == nil {
		cfg = &Config{}
		cfg.applyDefaults()
	}
	return &Accumulator{provider: provider, cfg: cfg}
}

// Buy spends cfg.BuyFraction of availableBalance on the target pair as a
// quote-denominated market buy. The spend is rounded half away from zero at
// two decimals, the quote currency's cents.
func (a *Accumulator) Buy(ctx context.Context, availableBalance string) (*exchange.OrderResult, error) {
	balance, err := strconv.ParseFloat(availableBalance, 64)
	if err != nil {
		return nil, fmt.Errorf("trader: parse available balance %q: %w", availableBalance, err)
	}
	if balance <= 0 {
		return nil, fmt.Errorf("trader: no available balance to spend")
	}

	spend := precision.RoundTo(balance*a.cfg.BuyFraction, precision.SpendDecimals)
	if spend <= 0 {
		return nil, fmt.Errorf("trader: spend rounds to zero (balance=%s fraction=%v)", availableBalance, a.cfg.BuyFraction)
	}
	qty := precision.FormatSpend(spend)

	result, err := a.provider.PlaceOrder(ctx, exchange.Order{
		Symbol:     a.cfg.TargetPair,
		Side:       exchange.SideBuy,
		Qty:        qty,
		MarketUnit: exchange.UnitQuoteCoin,
	})
	if err != nil {
		return nil, err
	}

	logx.WithContext(ctx).Infof("trader: bought symbol=%s spend=%s orderId=%s",
		a.cfg.TargetPair, qty, result.OrderID)
	return result, nil
}
