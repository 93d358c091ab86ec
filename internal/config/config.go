package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/zeromicro/go-zero/core/conf"

	"spotsweep/pkg/confkit"
	exchangepkg "spotsweep/pkg/exchange"
	traderpkg "spotsweep/pkg/trader"
)

// Config is the application-level configuration: the running environment
// plus per-concern sections hydrated from their own yaml files.
type Config struct {
	// Env indicates the running environment: test | dev | prod.
	// In test mode every exchange provider is forced onto testnet endpoints.
	Env string `json:",default=test"`

	Exchange confkit.Section[exchangepkg.Config] `json:",optional"`
	Trader   confkit.Section[traderpkg.Config]   `json:",optional"`

	mainPath string
	baseDir  string
}

func (c *Config) IsTestEnv() bool {
	return c.Env == "test" || c.Env == ""
}

func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

func Load(path string) (*Config, error) {
	confkit.LoadDotenvOnce()

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path %s: %w", path, err)
	}

	var cfg Config
	if err := conf.Load(absPath, &cfg, conf.UseEnv()); err != nil {
		return nil, fmt.Errorf("load config %s: %w", absPath, err)
	}

	cfg.mainPath = absPath
	cfg.baseDir = filepath.Dir(absPath)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.hydrateSections(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Env)) {
	case "", "test", "dev", "prod":
		if strings.TrimSpace(c.Env) == "" {
			c.Env = "test"
		}
	default:
		return errors.New("config: env must be one of test|dev|prod")
	}
	return nil
}

func (c *Config) hydrateSections() error {
	base := c.baseDir

	if err := c.Exchange.Hydrate(base, exchangepkg.LoadConfig); err != nil {
		return fmt.Errorf("load exchange config: %w", err)
	}
	if err := c.Trader.Hydrate(base, traderpkg.LoadConfig); err != nil {
		return fmt.Errorf("load trader config: %w", err)
	}
	return nil
}

func (c *Config) MainPath() string {
	return c.mainPath
}
