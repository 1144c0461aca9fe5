package sources

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// KrakenTickerData represents ticker data for a single pair.
type KrakenTickerData struct {
	C []string `json:"c"` // Last trade closed [price, lot volume]
}

// KrakenResponse represents the public Ticker API response.
type KrakenResponse struct {
	Error  []string                    `json:"error"`
	Result map[string]KrakenTickerData `json:"result"`
}

// ParseKraken extracts the last close price. Kraken reports errors inside the
// payload: a non-empty "error" array fails immediately with its content.
// Otherwise "result" holds exactly one ticker entry keyed by Kraken's own
// pair naming, and field "c" is [price, lot volume]; element 0 is the price.
func ParseKraken(body []byte) (decimal.Decimal, error) {
	var response KrakenResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	if len(response.Error) > 0 {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrAPIError, response.Error)
	}

	if len(response.Result) == 0 {
		return decimal.Zero, fmt.Errorf("%w: result", ErrMissingField)
	}

	var ticker KrakenTickerData
	for _, entry := range response.Result {
		ticker = entry
		break
	}

	if len(ticker.C) == 0 || ticker.C[0] == "" {
		return decimal.Zero, fmt.Errorf("%w: result ticker field c", ErrMissingField)
	}

	price, err := decimal.NewFromString(ticker.C[0])
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: close price %q", ErrInvalidResponse, ticker.C[0])
	}

	return positivePrice(price)
}
