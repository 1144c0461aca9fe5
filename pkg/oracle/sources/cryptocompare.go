package sources

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// CryptoCompareResponse represents the data/price API response, keyed by the
// quote currency code.
type CryptoCompareResponse struct {
	USD *float64 `json:"USD"`
}

// ParseCryptoCompare extracts the top-level "USD" field.
func ParseCryptoCompare(body []byte) (decimal.Decimal, error) {
	var response CryptoCompareResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	if response.USD == nil {
		return decimal.Zero, fmt.Errorf("%w: USD", ErrMissingField)
	}

	return positivePrice(decimal.NewFromFloat(*response.USD))
}
