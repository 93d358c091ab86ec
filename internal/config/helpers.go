package config

import (
	"fmt"

	"spotsweep/pkg/confkit"
	"spotsweep/pkg/exchange"
	"spotsweep/pkg/trader"
)

// MustLoadExchange loads etc/exchange.yaml from the project root and panics
// on error. It isolates exchange config so callers that only need providers
// do not have to assemble a full application config.
func MustLoadExchange() *exchange.Config {
	path := confkit.MustProjectPath("etc/exchange.yaml")
	cfg, err := exchange.LoadConfig(path)
	if err != nil {
		panic(fmt.Errorf("load exchange config %s: %w", path, err))
	}
	return cfg
}

// MustBuildExchangeProviders loads exchange config from the default path and
// builds provider instances; returns the map and default provider name.
func MustBuildExchangeProviders() (map[string]exchange.Provider, string) {
	cfg := MustLoadExchange()
	providers, err := cfg.BuildProviders()
	if err != nil {
		panic(err)
	}
	return providers, cfg.Default
}

// MustLoadTrader loads the default trader configuration and panics on error.
func MustLoadTrader() *trader.Config {
	return trader.MustLoad()
}
