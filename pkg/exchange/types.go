package exchange

// Core trading domain types shared across exchange implementations.
// These structures mirror the Bybit V5 spot payloads while remaining
// exchange-agnostic so additional venues can be added behind the same
// Provider interface later.

// Side represents order direction.
type Side string

const (
	// SideBuy executes a buy.
	SideBuy Side = "Buy"
	// SideSell executes a sell.
	SideSell Side = "Sell"
)

// MarketUnit selects which asset an order quantity is denominated in.
type MarketUnit string

const (
	// UnitQuoteCoin denominates the quantity in the quote asset
	// (buy-by-spend: "spend this many USDT").
	UnitQuoteCoin MarketUnit = "quoteCoin"
	// UnitBaseCoin denominates the quantity in the base asset
	// (sell-by-holding: "sell this many ETH").
	UnitBaseCoin MarketUnit = "baseCoin"
)

// OrderTypeMarket is the only order type this client submits.
const OrderTypeMarket = "Market"

// CategorySpot scopes every request to the spot market.
const CategorySpot = "spot"

// Credentials carries the API key pair for an authenticated venue.
// The secret is only ever used as an HMAC key and is never transmitted.
type Credentials struct {
	APIKey    string
	APISecret string
}

// Order describes a normalized market order request.
//
// Qty is a decimal string to avoid precision loss on the wire: for
// UnitQuoteCoin it is the quote-currency spend, for UnitBaseCoin it is the
// base-currency amount being sold.
type Order struct {
	Symbol     string     `json:"symbol"`
	Side       Side       `json:"side"`
	Qty        string     `json:"qty"`
	MarketUnit MarketUnit `json:"marketUnit"`
}

// OrderResult is the success payload of an accepted order.
type OrderResult struct {
	OrderID     string `json:"orderId"`
	OrderLinkID string `json:"orderLinkId"`
}

// CoinHolding is one asset line inside an account snapshot. Balances stay
// decimal strings; parsing happens at the precision boundary.
type CoinHolding struct {
	Coin          string `json:"coin"`
	WalletBalance string `json:"walletBalance"`
	USDValue      string `json:"usdValue"`
}

// AccountSnapshot is a point-in-time view of the unified account. It is a
// value, not a live handle: balance changes on the exchange after the fetch
// are not reflected until the next fetch.
type AccountSnapshot struct {
	TotalAvailableBalance string        `json:"totalAvailableBalance"`
	Holdings              []CoinHolding `json:"coin"`
}

// Ticker carries the last traded price for a spot symbol.
type Ticker struct {
	Symbol    string `json:"symbol"`
	LastPrice string `json:"lastPrice"`
}
