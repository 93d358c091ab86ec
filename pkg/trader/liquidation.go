package trader

import (
	"context"
	"fmt"
	"strconv"

	"github.com/zeromicro/go-zero/core/logx"

	"spotsweep/pkg/exchange"
	"spotsweep/pkg/precision"
)

// Liquidator walks an account snapshot and sells every non-base holding into
// the base currency, best-effort: a failure on one holding never strands the
// rest of the portfolio.
type Liquidator struct {
	provider exchange.Provider
	cfg      *Config
}

// NewLiquidator constructs a liquidation orchestrator.
func NewLiquidator(provider exchange.Provider, cfg *Config) *Liquidator {
	if cfg == nil {
		cfg = &Config{}
		cfg.applyDefaults()
	}
	return &Liquidator{provider: provider, cfg: cfg}
}

// LiquidateAll submits one market sell per sellable holding, strictly in
// snapshot order, one at a time. Orders are never submitted concurrently:
// the venue rate-limits per key and each submission signs a freshly fetched
// server timestamp.
//
// The returned slice has exactly one outcome per non-base-currency holding.
// Per-holding failures are recorded and absorbed; the error return is
// reserved for invariant violations before the walk starts.
func (l *Liquidator) LiquidateAll(ctx context.Context, snapshot *exchange.AccountSnapshot) ([]Outcome, error) {
	if snapshot == nil {
		return nil, fmt.Errorf("trader: nil account snapshot")
	}

	outcomes := make([]Outcome, 0, len(snapshot.Holdings))
	for _, holding := range snapshot.Holdings {
		// The settlement currency is never sold against itself.
		if holding.Coin == l.cfg.BaseCurrency {
			continue
		}
		outcomes = append(outcomes, l.sellHolding(ctx, holding))
	}
	return outcomes, nil
}

func (l *Liquidator) sellHolding(ctx context.Context, holding exchange.CoinHolding) Outcome {
	symbol := holding.Coin + l.cfg.BaseCurrency
	outcome := Outcome{Coin: holding.Coin, Symbol: symbol}

	usdValue, err := strconv.ParseFloat(holding.USDValue, 64)
	if err != nil {
		outcome.Status = StatusFailed
		outcome.Err = fmt.Errorf("trader: parse usdValue %q for %s: %w", holding.USDValue, holding.Coin, err)
		return outcome
	}
	balance, err := strconv.ParseFloat(holding.WalletBalance, 64)
	if err != nil {
		outcome.Status = StatusFailed
		outcome.Err = fmt.Errorf("trader: parse walletBalance %q for %s: %w", holding.WalletBalance, holding.Coin, err)
		return outcome
	}

	if precision.IsDust(usdValue, balance, l.cfg.MinNotionalUSD, l.cfg.MaxQuantityDecimals) {
		logx.WithContext(ctx).Infof("trader: skipping dust coin=%s usd=%s balance=%s",
			holding.Coin, holding.USDValue, holding.WalletBalance)
		outcome.Status = StatusSkippedDust
		return outcome
	}

	qty := precision.FormatQuantity(balance, l.cfg.MaxQuantityDecimals)
	outcome.Quantity = qty

	result, err := l.provider.PlaceOrder(ctx, exchange.Order{
		Symbol:     symbol,
		Side:       exchange.SideSell,
		Qty:        qty,
		MarketUnit: exchange.UnitBaseCoin,
	})
	if err != nil {
		logx.WithContext(ctx).Errorf("trader: sell failed symbol=%s qty=%s err=%v", symbol, qty, err)
		outcome.Status = StatusFailed
		outcome.Err = err
		return outcome
	}

	logx.WithContext(ctx).Infof("trader: sold symbol=%s qty=%s orderId=%s", symbol, qty, result.OrderID)
	outcome.Status = StatusSubmitted
	outcome.OrderID = result.OrderID
	return outcome
}
