package bybit

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spotsweep/pkg/exchange"
)

func TestTicker(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc(tickersPath, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "spot", r.URL.Query().Get("category"))
			assert.Equal(t, "BTCUSDT", r.URL.Query().Get("symbol"))
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"retCode": 0, "retMsg": "OK",
				"result": {"category": "spot", "list": [
					{"symbol": "BTCUSDT", "lastPrice": "64250.10", "bid1Price": "64250.00", "ask1Price": "64250.20"}
				]},
				"retExtInfo": {}, "time": 1700000000124
			}`))
		})
		client := newTestClient(t, mux)

		ticker, err := client.Ticker(context.Background(), "btcusdt")
		require.NoError(t, err)
		assert.Equal(t, "BTCUSDT", ticker.Symbol)
		assert.Equal(t, "64250.10", ticker.LastPrice)
	})

	t.Run("unknown_symbol", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc(tickersPath, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"retCode": 0, "retMsg": "OK", "result": {"category": "spot", "list": []}, "time": 1}`))
		})
		client := newTestClient(t, mux)

		_, err := client.Ticker(context.Background(), "NOPEUSDT")
		assert.ErrorIs(t, err, exchange.ErrUnknownSymbol)
	})

	t.Run("empty_symbol", func(t *testing.T) {
		client := newTestClient(t, http.NewServeMux())
		_, err := client.Ticker(context.Background(), "  ")
		assert.Error(t, err)
		assert.Equal(t, exchange.KindConfiguration, exchange.KindOf(err))
	})
}
