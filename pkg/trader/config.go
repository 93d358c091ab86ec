package trader

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"spotsweep/pkg/confkit"
	"spotsweep/pkg/precision"
)

// Config controls runtime behaviour for the trading workflows.
type Config struct {
	// BaseCurrency is the settlement asset all liquidation proceeds convert
	// into. It is never itself sold.
	BaseCurrency string `yaml:"base_currency"`

	// TargetPair is the spot symbol the accumulation workflow buys.
	TargetPair string `yaml:"target_pair"`

	// BuyFraction is the share of the available balance a single
	// accumulation run spends, e.g. 0.5.
	BuyFraction float64 `yaml:"buy_fraction"`

	// MinNotionalUSD is the dust threshold: holdings estimated below this
	// USD value are skipped during liquidation.
	MinNotionalUSD float64 `yaml:"min_notional_usd"`

	// MaxQuantityDecimals bounds sell-quantity precision.
	MaxQuantityDecimals int32 `yaml:"max_quantity_decimals"`
}

// LoadConfig reads configuration from disk.
func LoadConfig(path string) (*Config, error) {
	confkit.LoadDotenvOnce()
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open trader config: %w", err)
	}
	defer file.Close()
	return LoadConfigFromReader(file)
}

// MustLoad reads trader configuration from the default project location and
// panics on error.
func MustLoad() *Config {
	path := confkit.MustProjectPath("etc/trader.yaml")
	cfg, err := LoadConfig(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// LoadConfigFromReader constructs a Config from a reader.
func LoadConfigFromReader(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read trader config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal trader config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.BaseCurrency) == "" {
		c.BaseCurrency = "USDT"
	}
	c.BaseCurrency = strings.ToUpper(strings.TrimSpace(c.BaseCurrency))
	if strings.TrimSpace(c.TargetPair) == "" {
		c.TargetPair = "BTC" + c.BaseCurrency
	}
	c.TargetPair = strings.ToUpper(strings.TrimSpace(c.TargetPair))
	if c.BuyFraction == 0 {
		c.BuyFraction = 0.5
	}
	if c.MinNotionalUSD == 0 {
		c.MinNotionalUSD = precision.DefaultMinNotional
	}
	if c.MaxQuantityDecimals == 0 {
		c.MaxQuantityDecimals = precision.DefaultMaxQuantityDecimals
	}
}

// Validate ensures the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.BuyFraction <= 0 || c.BuyFraction > 1 {
		return fmt.Errorf("trader config: buy_fraction must be in (0, 1], got %v", c.BuyFraction)
	}
	if c.MinNotionalUSD < 0 {
		return fmt.Errorf("trader config: min_notional_usd must be non-negative, got %v", c.MinNotionalUSD)
	}
	if c.MaxQuantityDecimals < 0 {
		return fmt.Errorf("trader config: max_quantity_decimals must be non-negative, got %d", c.MaxQuantityDecimals)
	}
	if !strings.HasSuffix(c.TargetPair, c.BaseCurrency) {
		return fmt.Errorf("trader config: target_pair %s must be quoted in %s", c.TargetPair, c.BaseCurrency)
	}
	return nil
}
