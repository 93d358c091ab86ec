package bybit

import "encoding/json"

// envelope is the response shape shared by every V5 endpoint. Result is kept
// raw so each operation decodes its own payload after the retCode check; a
// retCode other than zero inside a 2xx response is a logical rejection, never
// success.
type envelope struct {
	RetCode    int                        `json:"retCode"`
	RetMsg     string                     `json:"retMsg"`
	Result     json.RawMessage            `json:"result"`
	RetExtInfo map[string]json.RawMessage `json:"retExtInfo"`
	Time       int64                      `json:"time"`
}

// serverTimeResult is the /v5/market/time payload. The second/nano fields are
// informational; signing uses the millisecond envelope time.
type serverTimeResult struct {
	TimeSecond string `json:"timeSecond"`
	TimeNano   string `json:"timeNano"`
}

type walletBalanceResult struct {
	List []walletAccount `json:"list"`
}

type walletAccount struct {
	AccountType           string       `json:"accountType"`
	TotalAvailableBalance string       `json:"totalAvailableBalance"`
	TotalEquity           string       `json:"totalEquity"`
	TotalWalletBalance    string       `json:"totalWalletBalance"`
	Coin                  []walletCoin `json:"coin"`
}

type walletCoin struct {
	Coin          string `json:"coin"`
	WalletBalance string `json:"walletBalance"`
	USDValue      string `json:"usdValue"`
	Equity        string `json:"equity"`
	Locked        string `json:"locked"`
}

type tickersResult struct {
	Category string       `json:"category"`
	List     []tickerItem `json:"list"`
}

type tickerItem struct {
	Symbol    string `json:"symbol"`
	LastPrice string `json:"lastPrice"`
	Bid1Price string `json:"bid1Price"`
	Ask1Price string `json:"ask1Price"`
}

// orderCreateRequest is the JSON body of POST /v5/order/create. Field order
// matters: the struct is marshalled once and the exact bytes are both signed
// and transmitted.
type orderCreateRequest struct {
	Category   string `json:"category"`
	Symbol     string `json:"symbol"`
	Side       string `json:"side"`
	OrderType  string `json:"orderType"`
	Qty        string `json:"qty"`
	MarketUnit string `json:"marketUnit"`
}

type orderCreateResult struct {
	OrderID     string `json:"orderId"`
	OrderLinkID string `json:"orderLinkId"`
}
