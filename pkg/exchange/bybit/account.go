package bybit

import (
	"context"
	"net/url"

	"spotsweep/pkg/exchange"
)

// accountTypeUnified is the only account type this client trades against.
const accountTypeUnified = "UNIFIED"

// AccountSnapshot fetches a point-in-time view of the unified account.
//
// An empty result list is a key/account-type mismatch, not a transient
// condition: the API contract guarantees at least one account for a valid
// key, so it surfaces as ErrNoAccountData and must not be retried.
func (c *Client) AccountSnapshot(ctx context.Context) (*exchange.AccountSnapshot, error) {
	const op = "wallet-balance"

	query := url.Values{}
	query.Set("accountType", accountTypeUnified)

	var result walletBalanceResult
	if err := c.signedGet(ctx, op, walletBalancePath, query, &result); err != nil {
		return nil, err
	}
	if len(result.List) == 0 {
		return nil, exchange.ErrNoAccountData
	}

	account := result.List[0]
	snapshot := &exchange.AccountSnapshot{
		TotalAvailableBalance: account.TotalAvailableBalance,
		Holdings:              make([]exchange.CoinHolding, 0, len(account.Coin)),
	}
	for _, coin := range account.Coin {
		snapshot.Holdings = append(snapshot.Holdings, exchange.CoinHolding{
			Coin:          coin.Coin,
			WalletBalance: coin.WalletBalance,
			USDValue:      coin.USDValue,
		})
	}
	return snapshot, nil
}
