package sources

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// BinanceResponse represents the ticker/price API response.
type BinanceResponse struct {
	Symbol string `json:"symbol"`
	Price  string `json:"price"`
}

// ParseBinance extracts the top-level "price" field, a string-encoded decimal.
func ParseBinance(body []byte) (decimal.Decimal, error) {
	var response BinanceResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	if response.Price == "" {
		return decimal.Zero, fmt.Errorf("%w: price", ErrMissingField)
	}

	price, err := decimal.NewFromString(response.Price)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: price %q", ErrInvalidResponse, response.Price)
	}

	return positivePrice(price)
}
