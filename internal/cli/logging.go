package cli

import (
	"fmt"
	"strings"

	"github.com/zeromicro/go-zero/core/logx"

	"spotsweep/internal/config"
	"spotsweep/pkg/confkit"
)

// ConfigSummaryLines returns human readable lines describing the loaded app
// config. Secrets never appear here, only presence.
func ConfigSummaryLines(cfg *config.Config) []string {
	if cfg == nil {
		return []string{"Configuration: <nil>"}
	}

	lines := []string{
		fmt.Sprintf("Environment: %s", cfg.Env),
		sectionLine("Exchange config", cfg.Exchange),
		sectionLine("Trader config", cfg.Trader),
	}

	if cfg.Trader.Value != nil {
		t := cfg.Trader.Value
		lines = append(lines,
			fmt.Sprintf("Base currency: %s", t.BaseCurrency),
			fmt.Sprintf("Target pair: %s", t.TargetPair),
			fmt.Sprintf("Buy fraction: %v", t.BuyFraction),
		)
	}
	return lines
}

// LogConfigSummary emits the configuration summary using logx.
func LogConfigSummary(cfg *config.Config) {
	lines := ConfigSummaryLines(cfg)
	if len(lines) == 0 {
		return
	}
	logx.Info("configuration summary")
	for _, line := range lines {
		logx.Infof("config • %s", line)
	}
}

func sectionLine[T any](name string, section confkit.Section[T]) string {
	switch {
	case strings.TrimSpace(section.File) != "":
		return fmt.Sprintf("%s: %s", name, section.File)
	case section.Value != nil:
		return fmt.Sprintf("%s: inline", name)
	default:
		return fmt.Sprintf("%s: not configured", name)
	}
}
