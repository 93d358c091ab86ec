package bybit

import (
	"context"
	"errors"
	"strings"

	"spotsweep/pkg/exchange"
)

var (
	errInvalidSymbol = errors.New("bybit: order symbol is required")
	errInvalidSide   = errors.New("bybit: order side must be Buy or Sell")
	errInvalidQty    = errors.New("bybit: order quantity is required")
	errInvalidUnit   = errors.New("bybit: order market unit must be quoteCoin or baseCoin")
)

// PlaceOrder submits a spot market order. A non-2xx response surfaces as an
// upstream error; a 2xx response whose envelope carries retCode != 0 is a
// logical rejection (the venue accepted the transport but declined the
// order) and surfaces as a rejection error. Both mean "this order failed"
// to callers walking a portfolio.
func (c *Client) PlaceOrder(ctx context.Context, order exchange.Order) (*exchange.OrderResult, error) {
	const op = "order-create"

	if err := validateOrder(order); err != nil {
		return nil, &exchange.Error{Kind: exchange.KindConfiguration, Op: op, Err: err}
	}

	body := orderCreateRequest{
		Category:   exchange.CategorySpot,
		Symbol:     order.Symbol,
		Side:       string(order.Side),
		OrderType:  exchange.OrderTypeMarket,
		Qty:        order.Qty,
		MarketUnit: string(order.MarketUnit),
	}

	var result orderCreateResult
	if err := c.signedPost(ctx, op, orderCreatePath, body, &result); err != nil {
		return nil, err
	}

	c.logf("bybit: order accepted symbol=%s side=%s qty=%s orderId=%s",
		order.Symbol, order.Side, order.Qty, result.OrderID)
	return &exchange.OrderResult{
		OrderID:     result.OrderID,
		OrderLinkID: result.OrderLinkID,
	}, nil
}

// validateOrder rejects malformed orders locally before anything is signed.
func validateOrder(order exchange.Order) error {
	if strings.TrimSpace(order.Symbol) == "" {
		return errInvalidSymbol
	}
	if order.Side != exchange.SideBuy && order.Side != exchange.SideSell {
		return errInvalidSide
	}
	if strings.TrimSpace(order.Qty) == "" {
		return errInvalidQty
	}
	if order.MarketUnit != exchange.UnitQuoteCoin && order.MarketUnit != exchange.UnitBaseCoin {
		return errInvalidUnit
	}
	return nil
}
