package sources

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// CoinbaseResponse represents the spot price API response.
type CoinbaseResponse struct {
	Data struct {
		Amount   string `json:"amount"`
		Base     string `json:"base"`
		Currency string `json:"currency"`
	} `json:"data"`
}

// ParseCoinbase extracts the spot price from the "data" object, where the
// amount is a string-encoded decimal.
func ParseCoinbase(body []byte) (decimal.Decimal, error) {
	var response CoinbaseResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	if response.Data.Amount == "" {
		return decimal.Zero, fmt.Errorf("%w: data.amount", ErrMissingField)
	}

	price, err := decimal.NewFromString(response.Data.Amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: data.amount %q", ErrInvalidResponse, response.Data.Amount)
	}

	return positivePrice(price)
}
