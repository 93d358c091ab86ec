package bybit

import (
	"net/http"

	"spotsweep/pkg/exchange"
)

// Client satisfies exchange.Provider directly; the registry builder maps
// yaml provider configuration onto client options.
var _ exchange.Provider = (*Client)(nil)

func init() {
	exchange.RegisterProvider("bybit", func(name string, cfg *exchange.ProviderConfig) (exchange.Provider, error) {
		opts := []ClientOption{}
		if cfg.Timeout > 0 {
			opts = append(opts, WithHTTPClient(&http.Client{Timeout: cfg.Timeout}))
		}
		if cfg.BaseURL != "" {
			opts = append(opts, WithBaseURL(cfg.BaseURL))
		}
		if cfg.RecvWindow > 0 {
			opts = append(opts, WithRecvWindow(cfg.RecvWindow))
		}
		if cfg.RatePerSec > 0 {
			opts = append(opts, WithRateLimit(cfg.RatePerSec))
		}
		creds := exchange.Credentials{APIKey: cfg.APIKey, APISecret: cfg.APISecret}
		return NewClient(creds, cfg.Testnet, opts...)
	})
}
