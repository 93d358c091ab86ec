package bybit

import (
	"context"
	"net/url"
	"strings"

	"spotsweep/pkg/exchange"
)

// Ticker fetches the last traded price for a spot symbol. Not cached;
// callers refetch on demand.
func (c *Client) Ticker(ctx context.Context, symbol string) (*exchange.Ticker, error) {
	const op = "tickers"

	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, &exchange.Error{Kind: exchange.KindConfiguration, Op: op, Msg: "empty symbol"}
	}

	query := url.Values{}
	query.Set("category", exchange.CategorySpot)
	query.Set("symbol", symbol)

	var result tickersResult
	if err := c.signedGet(ctx, op, tickersPath, query, &result); err != nil {
		return nil, err
	}
	if len(result.List) == 0 {
		return nil, exchange.ErrUnknownSymbol
	}

	item := result.List[0]
	return &exchange.Ticker{
		Symbol:    item.Symbol,
		LastPrice: item.LastPrice,
	}, nil
}
