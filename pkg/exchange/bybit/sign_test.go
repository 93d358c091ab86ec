package bybit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"spotsweep/pkg/exchange"
)

func TestSignFixedVectors(t *testing.T) {
	secret := []byte("test-secret")

	got, err := sign(secret, 1700000000123, "api-key", 5000, "accountType=UNIFIED")
	assert.NoError(t, err)
	assert.Equal(t, "8c88c074ef83280c4fb7567e29551e5cac58ea82bbc64ad532448ef3ed12d3a9", got)

	got, err = sign(secret, 1700000000123, "api-key", 5000, "")
	assert.NoError(t, err)
	assert.Equal(t, "b3d2573e7f60648ebc4b649b1c7bd8ba2f654d261161762957fdee7347f24cb0", got)
}

func TestSignDeterministic(t *testing.T) {
	secret := []byte("test-secret")

	first, err := sign(secret, 1700000000123, "api-key", 5000, "category=spot&symbol=BTCUSDT")
	assert.NoError(t, err)
	second, err := sign(secret, 1700000000123, "api-key", 5000, "category=spot&symbol=BTCUSDT")
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSignInputSensitivity(t *testing.T) {
	secret := []byte("test-secret")
	base, err := sign(secret, 1700000000123, "api-key", 5000, "accountType=UNIFIED")
	assert.NoError(t, err)

	t.Run("timestamp", func(t *testing.T) {
		got, err := sign(secret, 1700000000124, "api-key", 5000, "accountType=UNIFIED")
		assert.NoError(t, err)
		assert.NotEqual(t, base, got)
		assert.Equal(t, "f8107255c8cf17c532f28a57a5ab6c88a4e8c59b525a6bd0f7181e7d5a46a71b", got)
	})

	t.Run("api_key", func(t *testing.T) {
		got, err := sign(secret, 1700000000123, "other-key", 5000, "accountType=UNIFIED")
		assert.NoError(t, err)
		assert.NotEqual(t, base, got)
	})

	t.Run("recv_window", func(t *testing.T) {
		got, err := sign(secret, 1700000000123, "api-key", 6000, "accountType=UNIFIED")
		assert.NoError(t, err)
		assert.NotEqual(t, base, got)
	})

	t.Run("payload", func(t *testing.T) {
		got, err := sign(secret, 1700000000123, "api-key", 5000, "accountType=SPOT")
		assert.NoError(t, err)
		assert.NotEqual(t, base, got)
	})

	t.Run("secret", func(t *testing.T) {
		got, err := sign([]byte("other-secret"), 1700000000123, "api-key", 5000, "accountType=UNIFIED")
		assert.NoError(t, err)
		assert.NotEqual(t, base, got)
		assert.Equal(t, "6f95d5a1a1ba353a9af9377f8bc077b3a627155fdf8a8dd51cbd098fc4742735", got)
	})
}

func TestSignEmptySecret(t *testing.T) {
	_, err := sign(nil, 1700000000123, "api-key", 5000, "accountType=UNIFIED")
	assert.Error(t, err)
	assert.Equal(t, exchange.KindConfiguration, exchange.KindOf(err))
}
