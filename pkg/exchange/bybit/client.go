package bybit

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"spotsweep/pkg/exchange"
)

const (
	mainnetBaseURL = "https://api.bybit.com"
	testnetBaseURL = "https://api-testnet.bybit.com"

	serverTimePath    = "/v5/market/time"
	walletBalancePath = "/v5/account/wallet-balance"
	tickersPath       = "/v5/market/tickers"
	orderCreatePath   = "/v5/order/create"

	defaultHTTPTimeout = 30 * time.Second
	defaultRecvWindow  = 5000

	headerSign       = "X-BAPI-SIGN"
	headerAPIKey     = "X-BAPI-API-KEY"
	headerSignType   = "X-BAPI-SIGN-TYPE"
	headerTimestamp  = "X-BAPI-TIMESTAMP"
	headerRecvWindow = "X-BAPI-RECV-WINDOW"

	signTypeHMAC = "2"
)

// Client coordinates signed requests against Bybit V5 spot endpoints.
//
// Every authenticated call refetches the venue's server time and signs with
// it; local wall-clock is never trusted, trading one extra round trip for
// immunity against clock drift.
type Client struct {
	baseURL    string
	httpClient *http.Client
	creds      exchange.Credentials
	recvWindow int64
	limiter    *rate.Limiter
	logger     *log.Logger
}

// ClientOption customises the Bybit client.
type ClientOption func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithBaseURL overrides the REST host (primarily for testing).
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithLogger attaches a custom logger (defaults to log.Default()).
func WithLogger(logger *log.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRecvWindow sets the signed recv window in milliseconds.
func WithRecvWindow(ms int64) ClientOption {
	return func(c *Client) {
		if ms > 0 {
			c.recvWindow = ms
		}
	}
}

// WithRateLimit caps authenticated calls at n per second. The venue
// rate-limits per API key, so one limiter guards the whole client.
func WithRateLimit(n float64) ClientOption {
	return func(c *Client) {
		if n > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(n), 1)
		}
	}
}

// NewClient constructs a Bybit spot trading client for the given credentials.
func NewClient(creds exchange.Credentials, isTestnet bool, opts ...ClientOption) (*Client, error) {
	if creds.APIKey == "" || creds.APISecret == "" {
		return nil, &exchange.Error{
			Kind: exchange.KindConfiguration,
			Op:   "new-client",
			Msg:  "API key and secret are required",
		}
	}

	client := &Client{
		baseURL:    mainnetBaseURL,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
		creds:      creds,
		recvWindow: defaultRecvWindow,
		logger:     log.Default(),
	}
	if isTestnet {
		client.baseURL = testnetBaseURL
	}
	for _, opt := range opts {
		opt(client)
	}
	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	if client.logger == nil {
		client.logger = log.Default()
	}
	return client, nil
}

// signedGet performs an authenticated GET. The encoded query string is built
// once and used for both the signature and the request URL, keeping the
// signed and transmitted bytes identical.
func (c *Client) signedGet(ctx context.Context, op, path string, query url.Values, result interface{}) error {
	if err := c.waitLimiter(ctx); err != nil {
		return err
	}
	serverTime, err := c.ServerTime(ctx)
	if err != nil {
		return err
	}

	qs := query.Encode()
	signature, err := sign([]byte(c.creds.APISecret), serverTime, c.creds.APIKey, c.recvWindow, qs)
	if err != nil {
		return err
	}

	target := c.baseURL + path
	if qs != "" {
		target += "?" + qs
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return &exchange.Error{Kind: exchange.KindConfiguration, Op: op, Err: err}
	}
	c.setAuthHeaders(req, serverTime, signature)

	return c.do(op, req, result)
}

// signedPost performs an authenticated POST. The body is marshalled once and
// the exact bytes are both signed and transmitted.
func (c *Client) signedPost(ctx context.Context, op, path string, body interface{}, result interface{}) error {
	if err := c.waitLimiter(ctx); err != nil {
		return err
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return &exchange.Error{Kind: exchange.KindConfiguration, Op: op, Err: err}
	}

	serverTime, err := c.ServerTime(ctx)
	if err != nil {
		return err
	}
	signature, err := sign([]byte(c.creds.APISecret), serverTime, c.creds.APIKey, c.recvWindow, string(payload))
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return &exchange.Error{Kind: exchange.KindConfiguration, Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	c.setAuthHeaders(req, serverTime, signature)

	return c.do(op, req, result)
}

func (c *Client) setAuthHeaders(req *http.Request, serverTime int64, signature string) {
	req.Header.Set(headerSign, signature)
	req.Header.Set(headerAPIKey, c.creds.APIKey)
	req.Header.Set(headerSignType, signTypeHMAC)
	req.Header.Set(headerTimestamp, strconv.FormatInt(serverTime, 10))
	req.Header.Set(headerRecvWindow, strconv.FormatInt(c.recvWindow, 10))
}

// do executes the request and decodes the shared response envelope. Failures
// surface as typed errors so callers can tell transport trouble, upstream
// unavailability, decode bugs and logical rejections apart.
func (c *Client) do(op string, req *http.Request, result interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := req.Context().Err(); ctxErr != nil {
			return ctxErr
		}
		return &exchange.Error{Kind: exchange.KindTransport, Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &exchange.Error{Kind: exchange.KindTransport, Op: op, Err: err}
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= 300 {
		return &exchange.Error{
			Kind:   exchange.KindUpstream,
			Op:     op,
			Status: resp.StatusCode,
			Msg:    string(body),
		}
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return &exchange.Error{Kind: exchange.KindDecode, Op: op, Err: err}
	}
	if env.RetCode != 0 {
		return &exchange.Error{
			Kind:   exchange.KindRejection,
			Op:     op,
			Status: resp.StatusCode,
			Code:   env.RetCode,
			Msg:    env.RetMsg,
		}
	}
	if result != nil && len(env.Result) > 0 {
		if err := json.Unmarshal(env.Result, result); err != nil {
			return &exchange.Error{Kind: exchange.KindDecode, Op: op, Err: err}
		}
	}
	return nil
}

func (c *Client) waitLimiter(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}

func (c *Client) logf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Printf(format, args...)
	}
}
