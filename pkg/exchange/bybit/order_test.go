package bybit

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spotsweep/pkg/exchange"
)

func sellOrder() exchange.Order {
	return exchange.Order{
		Symbol:     "ETHUSDT",
		Side:       exchange.SideSell,
		Qty:        "0.05",
		MarketUnit: exchange.UnitBaseCoin,
	}
}

func TestPlaceOrder(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mux := http.NewServeMux()
		var gotBody []byte
		var gotSign string
		mux.HandleFunc(orderCreatePath, func(w http.ResponseWriter, r *http.Request) {
			gotBody, _ = io.ReadAll(r.Body)
			gotSign = r.Header.Get(headerSign)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"retCode": 0, "retMsg": "OK",
				"result": {"orderId": "1321003749386327552", "orderLinkId": "spot-test-01"},
				"retExtInfo": {}, "time": 1700000000124
			}`))
		})
		client := newTestClient(t, mux)

		result, err := client.PlaceOrder(context.Background(), sellOrder())
		require.NoError(t, err)
		assert.Equal(t, "1321003749386327552", result.OrderID)
		assert.Equal(t, "spot-test-01", result.OrderLinkID)

		var body map[string]string
		require.NoError(t, json.Unmarshal(gotBody, &body))
		assert.Equal(t, "spot", body["category"])
		assert.Equal(t, "ETHUSDT", body["symbol"])
		assert.Equal(t, "Sell", body["side"])
		assert.Equal(t, "Market", body["orderType"])
		assert.Equal(t, "0.05", body["qty"])
		assert.Equal(t, "baseCoin", body["marketUnit"])

		// The signature covers the exact transmitted body bytes.
		want, err := sign([]byte("test-secret"), testServerTime, "api-key", defaultRecvWindow, string(gotBody))
		require.NoError(t, err)
		assert.Equal(t, want, gotSign)
	})

	t.Run("logical_rejection", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc(orderCreatePath, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"retCode": 170131, "retMsg": "Insufficient balance", "result": {}, "time": 1}`))
		})
		client := newTestClient(t, mux)

		_, err := client.PlaceOrder(context.Background(), sellOrder())
		assert.Error(t, err)
		assert.Equal(t, exchange.KindRejection, exchange.KindOf(err))
		assert.True(t, exchange.IsRejection(err))
		assert.False(t, exchange.IsRetryable(err))

		var ee *exchange.Error
		require.ErrorAs(t, err, &ee)
		assert.Equal(t, 170131, ee.Code)
	})

	t.Run("upstream_error", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc(orderCreatePath, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("bad gateway"))
		})
		client := newTestClient(t, mux)

		_, err := client.PlaceOrder(context.Background(), sellOrder())
		assert.Error(t, err)
		assert.Equal(t, exchange.KindUpstream, exchange.KindOf(err))
		assert.True(t, exchange.IsRetryable(err))
	})

	t.Run("validation", func(t *testing.T) {
		client := newTestClient(t, http.NewServeMux())

		cases := []exchange.Order{
			{Side: exchange.SideSell, Qty: "1", MarketUnit: exchange.UnitBaseCoin},
			{Symbol: "ETHUSDT", Side: "Hold", Qty: "1", MarketUnit: exchange.UnitBaseCoin},
			{Symbol: "ETHUSDT", Side: exchange.SideSell, MarketUnit: exchange.UnitBaseCoin},
			{Symbol: "ETHUSDT", Side: exchange.SideSell, Qty: "1", MarketUnit: "midCoin"},
		}
		for _, order := range cases {
			_, err := client.PlaceOrder(context.Background(), order)
			assert.Error(t, err)
			assert.Equal(t, exchange.KindConfiguration, exchange.KindOf(err))
		}
	})
}
