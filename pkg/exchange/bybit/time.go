package bybit

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"spotsweep/pkg/exchange"
)

// ServerTime fetches the venue clock as a millisecond timestamp from the
// unauthenticated time endpoint. The result is never cached: recv-window
// validation is timestamp-sensitive, so every signed call refetches.
func (c *Client) ServerTime(ctx context.Context) (int64, error) {
	const op = "server-time"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+serverTimePath, nil)
	if err != nil {
		return 0, &exchange.Error{Kind: exchange.KindConfiguration, Op: op, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return 0, ctxErr
		}
		return 0, &exchange.Error{Kind: exchange.KindTransport, Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, &exchange.Error{Kind: exchange.KindTransport, Op: op, Err: err}
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= 300 {
		return 0, &exchange.Error{
			Kind:   exchange.KindUpstream,
			Op:     op,
			Status: resp.StatusCode,
			Msg:    string(body),
		}
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return 0, &exchange.Error{Kind: exchange.KindDecode, Op: op, Err: err}
	}
	if env.RetCode != 0 {
		return 0, &exchange.Error{
			Kind:   exchange.KindRejection,
			Op:     op,
			Status: resp.StatusCode,
			Code:   env.RetCode,
			Msg:    env.RetMsg,
		}
	}
	if env.Time <= 0 {
		return 0, &exchange.Error{Kind: exchange.KindDecode, Op: op, Msg: "missing server time"}
	}
	return env.Time, nil
}
