package sources

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// CoinGeckoResponse represents the simple/price API response.
type CoinGeckoResponse struct {
	Near struct {
		USD *float64 `json:"usd"`
	} `json:"near"`
}

// ParseCoinGecko extracts the NEAR/USD price nested under the "near" and
// "usd" keys.
func ParseCoinGecko(body []byte) (decimal.Decimal, error) {
	var response CoinGeckoResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	if response.Near.USD == nil {
		return decimal.Zero, fmt.Errorf("%w: near.usd", ErrMissingField)
	}

	return positivePrice(decimal.NewFromFloat(*response.Near.USD))
}

// positivePrice rejects a parsed price of zero or below, regardless of the
// source-specific parsing rule that produced it.
func positivePrice(price decimal.Decimal) (decimal.Decimal, error) {
	if price.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrNonPositivePrice, price.String())
	}
	return price, nil
}
