package exchange

import (
	"errors"
	"fmt"
)

// ErrorKind classifies gateway failures so callers can pick a recovery
// strategy without string-matching messages.
type ErrorKind string

const (
	// KindConfiguration marks invalid client setup (missing secret, bad
	// option). Fatal, never retryable.
	KindConfiguration ErrorKind = "configuration"
	// KindTransport marks network-level failures (DNS, TLS, connection).
	KindTransport ErrorKind = "transport"
	// KindUpstream marks non-2xx HTTP responses from the venue.
	KindUpstream ErrorKind = "upstream"
	// KindDecode marks response bodies that failed to parse. Treated as a
	// protocol-version bug, not retryable without investigation.
	KindDecode ErrorKind = "decode"
	// KindRejection marks a structured error returned inside a 2xx response
	// (envelope retCode != 0). Not retryable with the same parameters.
	KindRejection ErrorKind = "rejection"
)

// Error is the uniform failure type returned by gateway operations.
type Error struct {
	Kind   ErrorKind
	Op     string // gateway operation, e.g. "wallet-balance"
	Status int    // HTTP status, when one was received
	Code   int    // venue retCode, for rejections
	Msg    string
	Err    error
}

func (e *Error) Error() string {
	switch {
	case e.Kind == KindRejection:
		return fmt.Sprintf("exchange %s: rejected retCode=%d: %s", e.Op, e.Code, e.Msg)
	case e.Kind == KindUpstream:
		return fmt.Sprintf("exchange %s: upstream status %d: %s", e.Op, e.Status, e.Msg)
	case e.Err != nil:
		return fmt.Sprintf("exchange %s: %s: %v", e.Op, e.Kind, e.Err)
	default:
		return fmt.Sprintf("exchange %s: %s: %s", e.Op, e.Kind, e.Msg)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf extracts the error kind, or "" when err is not a gateway error.
func KindOf(err error) ErrorKind {
	var ee *Error
	if errors.As(err, &ee) {
		return ee.Kind
	}
	return ""
}

// IsRejection reports whether the venue parsed and declined the request.
func IsRejection(err error) bool { return KindOf(err) == KindRejection }

// IsRetryable reports whether an outer policy may retry the call with a
// freshly fetched timestamp. Configuration, decode and rejection failures
// stay non-retryable.
func IsRetryable(err error) bool {
	switch KindOf(err) {
	case KindTransport, KindUpstream:
		return true
	default:
		return false
	}
}

var (
	// ErrNoAccountData indicates the wallet-balance result list was empty.
	// The API contract guarantees at least one account for a valid key, so
	// this is a key/account-type mismatch, not a transient condition.
	ErrNoAccountData = errors.New("exchange: no account data returned")

	// ErrUnknownSymbol indicates the tickers result list was empty.
	ErrUnknownSymbol = errors.New("exchange: unknown symbol")
)
