package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"spotsweep/internal/cli"
	"spotsweep/internal/config"
	"spotsweep/pkg/exchange"
	"spotsweep/pkg/exchange/sim"
	"spotsweep/pkg/trader"

	// Import for side-effects: registers the bybit provider.
	_ "spotsweep/pkg/exchange/bybit"
)

const runTimeout = 2 * time.Minute

var (
	configFile = flag.String("f", "etc/spotsweep.yaml", "the config file")
	mode       = flag.String("mode", "liquidate", "workflow to run: buy | liquidate")
	dryRun     = flag.Bool("dry-run", false, "run against the in-memory sim provider")
)

func main() {
	flag.Parse()
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)

	appCfg := config.MustLoad(*configFile)
	log.Printf("[main] Configuration loaded:")
	for _, line := range cli.ConfigSummaryLines(appCfg) {
		log.Printf("  - %s", line)
	}

	traderCfg := appCfg.Trader.Value
	if traderCfg == nil {
		traderCfg = config.MustLoadTrader()
	}

	provider := buildProvider(appCfg, traderCfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	serverTime, err := provider.ServerTime(ctx)
	if err != nil {
		log.Fatalf("[main] Failed to fetch server time: %v", err)
	}
	log.Printf("[main] Server time: %d", serverTime)

	snapshot, err := provider.AccountSnapshot(ctx)
	if err != nil {
		log.Fatalf("[main] Failed to fetch account snapshot: %v", err)
	}
	log.Printf("[main] Total available balance: %s", snapshot.TotalAvailableBalance)

	ticker, err := provider.Ticker(ctx, traderCfg.TargetPair)
	if err != nil {
		log.Fatalf("[main] Failed to fetch ticker for %s: %v", traderCfg.TargetPair, err)
	}
	log.Printf("[main] Current price %s: %s", ticker.Symbol, ticker.LastPrice)

	switch *mode {
	case "buy":
		runBuy(ctx, provider, traderCfg, snapshot)
	case "liquidate":
		runLiquidation(ctx, provider, traderCfg, snapshot)
	default:
		log.Fatalf("[main] Unknown mode %q (want buy or liquidate)", *mode)
	}
}

func buildProvider(appCfg *config.Config, traderCfg *trader.Config) exchange.Provider {
	if *dryRun {
		log.Printf("[main] Dry run: using sim provider")
		p := sim.New()
		p.SeedBalance(1000)
		p.SeedHolding("ETH", "0.05", "150.0")
		p.SeedHolding(traderCfg.BaseCurrency, "1000", "1000.0")
		p.SeedHolding("DOGE", "3", "0.40")
		p.SetPrice(traderCfg.TargetPair, 50000)
		return p
	}

	exchangeCfg := appCfg.Exchange.Value
	if exchangeCfg == nil {
		exchangeCfg = config.MustLoadExchange()
	}

	// Test environment always trades against testnet endpoints.
	if appCfg.IsTestEnv() {
		for _, provider := range exchangeCfg.Providers {
			provider.Testnet = true
		}
	}

	providers, err := exchangeCfg.BuildProviders()
	if err != nil {
		log.Fatalf("[main] Failed to build exchange providers: %v", err)
	}
	provider, ok := providers[exchangeCfg.Default]
	if !ok {
		log.Fatalf("[main] Default exchange provider %q not found", exchangeCfg.Default)
	}
	return provider
}

func runBuy(ctx context.Context, provider exchange.Provider, cfg *trader.Config, snapshot *exchange.AccountSnapshot) {
	acc := trader.NewAccumulator(provider, cfg)
	result, err := acc.Buy(ctx, snapshot.TotalAvailableBalance)
	if err != nil {
		log.Fatalf("[main] Buy failed: %v", err)
	}
	log.Printf("[main] Buy accepted: orderId=%s orderLinkId=%s", result.OrderID, result.OrderLinkID)
}

func runLiquidation(ctx context.Context, provider exchange.Provider, cfg *trader.Config, snapshot *exchange.AccountSnapshot) {
	liq := trader.NewLiquidator(provider, cfg)
	outcomes, err := liq.LiquidateAll(ctx, snapshot)
	if err != nil {
		log.Fatalf("[main] Liquidation aborted: %v", err)
	}

	for _, o := range outcomes {
		switch o.Status {
		case trader.StatusSubmitted:
			log.Printf("[main] Sold %s qty=%s orderId=%s", o.Symbol, o.Quantity, o.OrderID)
		case trader.StatusSkippedDust:
			log.Printf("[main] Skipped %s (dust)", o.Coin)
		case trader.StatusFailed:
			log.Printf("[main] Failed %s: %v", o.Symbol, o.Err)
		}
	}
	if trader.Failed(outcomes) {
		os.Exit(1)
	}
}
