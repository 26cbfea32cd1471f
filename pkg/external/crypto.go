package external

import "context"

// FallbackBTCPrice is a rough BTC/USD estimate used when CoinGecko is down.
const FallbackBTCPrice = 65000.0

type coinGeckoResponse struct {
	Bitcoin struct {
		USD float64 `json:"usd"`
	} `json:"bitcoin"`
}

// BTCPrice returns the current BTC price in USD. Never cached.
func (c *Client) BTCPrice(ctx context.Context) Result[float64] {
	var resp coinGeckoResponse
	if err := c.getJSON(ctx, c.endpoints.Crypto+"/api/v3/simple/price?ids=bitcoin&vs_currencies=usd", &resp); err != nil {
		return settle(ctx, c, ProviderCrypto, fallback(FallbackBTCPrice, err))
	}
	if resp.Bitcoin.USD <= 0 {
		return settle(ctx, c, ProviderCrypto, fallback(FallbackBTCPrice, ErrEmptyResponse))
	}
	return settle(ctx, c, ProviderCrypto, live(resp.Bitcoin.USD))
}
