package bybit

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spotsweep/pkg/exchange"
)

func TestAccountSnapshot(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc(walletBalancePath, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "UNIFIED", r.URL.Query().Get("accountType"))
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"retCode": 0, "retMsg": "OK",
				"result": {"list": [{
					"accountType": "UNIFIED",
					"totalAvailableBalance": "1523.77",
					"coin": [
						{"coin": "ETH", "walletBalance": "0.05", "usdValue": "150.0"},
						{"coin": "USDT", "walletBalance": "1000", "usdValue": "1000.0"}
					]
				}]},
				"retExtInfo": {}, "time": 1700000000124
			}`))
		})
		client := newTestClient(t, mux)

		snapshot, err := client.AccountSnapshot(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "1523.77", snapshot.TotalAvailableBalance)
		require.Len(t, snapshot.Holdings, 2)
		assert.Equal(t, "ETH", snapshot.Holdings[0].Coin)
		assert.Equal(t, "0.05", snapshot.Holdings[0].WalletBalance)
		assert.Equal(t, "150.0", snapshot.Holdings[0].USDValue)
		assert.Equal(t, "USDT", snapshot.Holdings[1].Coin)
	})

	t.Run("empty_list", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc(walletBalancePath, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"retCode": 0, "retMsg": "OK", "result": {"list": []}, "retExtInfo": {}, "time": 1}`))
		})
		client := newTestClient(t, mux)

		_, err := client.AccountSnapshot(context.Background())
		assert.ErrorIs(t, err, exchange.ErrNoAccountData)
	})

	t.Run("rejection", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc(walletBalancePath, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"retCode": 10003, "retMsg": "API key is invalid", "result": {}, "time": 1}`))
		})
		client := newTestClient(t, mux)

		_, err := client.AccountSnapshot(context.Background())
		assert.Error(t, err)
		assert.Equal(t, exchange.KindRejection, exchange.KindOf(err))
		assert.Contains(t, err.Error(), "API key is invalid")
	})
}
