package bybit

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"

	"spotsweep/pkg/exchange"
)

// sign computes the Bybit V5 request signature: lowercase hex HMAC-SHA256
// over the exact byte concatenation timestamp || apiKey || recvWindow ||
// payload, with no separators. payload is the literal query string for GET
// requests or the serialized JSON body for POST requests; the signed string
// and the transmitted string must be byte-identical.
//
// The signature is deterministic over its inputs (no nonce), so a retry must
// carry a freshly fetched timestamp or the venue rejects it as stale.
func sign(secret []byte, timestamp int64, apiKey string, recvWindow int64, payload string) (string, error) {
	if len(secret) == 0 {
		return "", &exchange.Error{
			Kind: exchange.KindConfiguration,
			Op:   "sign",
			Msg:  "empty API secret",
		}
	}

	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(strconv.FormatInt(timestamp, 10)))
	mac.Write([]byte(apiKey))
	mac.Write([]byte(strconv.FormatInt(recvWindow, 10)))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil)), nil
}
