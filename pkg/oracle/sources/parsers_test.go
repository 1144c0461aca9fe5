package sources

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseCoinGecko(t *testing.T) {
	price, err := ParseCoinGecko([]byte(`{"near":{"usd":1.234}}`))
	if err != nil {
		t.Fatalf("ParseCoinGecko failed: %v", err)
	}
	if !price.Equal(decimal.NewFromFloat(1.234)) {
		t.Errorf("Expected 1.234, got %s", price)
	}
}

func TestParseCoinGecko_MissingField(t *testing.T) {
	_, err := ParseCoinGecko([]byte(`{"near":{}}`))
	if !errors.Is(err, ErrMissingField) {
		t.Errorf("Expected ErrMissingField, got %v", err)
	}
}

func TestParseCoinbase(t *testing.T) {
	payload := `{"data":{"amount":"1.015","base":"NEAR","currency":"USD"}}`
	price, err := ParseCoinbase([]byte(payload))
	if err != nil {
		t.Fatalf("ParseCoinbase failed: %v", err)
	}
	if !price.Equal(decimal.RequireFromString("1.015")) {
		t.Errorf("Expected 1.015, got %s", price)
	}
}

func TestParseCoinbase_BadAmount(t *testing.T) {
	_, err := ParseCoinbase([]byte(`{"data":{"amount":"not-a-number"}}`))
	if !errors.Is(err, ErrInvalidResponse) {
		t.Errorf("Expected ErrInvalidResponse, got %v", err)
	}
}

func TestParseBinance(t *testing.T) {
	price, err := ParseBinance([]byte(`{"symbol":"NEARUSDT","price":"1.01800000"}`))
	if err != nil {
		t.Fatalf("ParseBinance failed: %v", err)
	}
	if !price.Equal(decimal.RequireFromString("1.018")) {
		t.Errorf("Expected 1.018, got %s", price)
	}
}

func TestParseKraken(t *testing.T) {
	payload := `{"error":[],"result":{"NEARUSD":{"c":["1.01200","10.0"]}}}`
	price, err := ParseKraken([]byte(payload))
	if err != nil {
		t.Fatalf("ParseKraken failed: %v", err)
	}
	if !price.Equal(decimal.RequireFromString("1.012")) {
		t.Errorf("Expected 1.012, got %s", price)
	}
}

func TestParseKraken_APIError(t *testing.T) {
	_, err := ParseKraken([]byte(`{"error":["EQuery:Unknown asset pair"],"result":{}}`))
	if !errors.Is(err, ErrAPIError) {
		t.Errorf("Expected ErrAPIError, got %v", err)
	}
}

func TestParseKraken_MissingResult(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "empty result", payload: `{"error":[],"result":{}}`},
		{name: "no result key", payload: `{"error":[]}`},
		{name: "empty close field", payload: `{"error":[],"result":{"NEARUSD":{"c":[]}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseKraken([]byte(tt.payload))
			if !errors.Is(err, ErrMissingField) {
				t.Errorf("Expected ErrMissingField, got %v", err)
			}
		})
	}
}

func TestParseCryptoCompare(t *testing.T) {
	price, err := ParseCryptoCompare([]byte(`{"USD":1.1001}`))
	if err != nil {
		t.Fatalf("ParseCryptoCompare failed: %v", err)
	}
	if !price.Equal(decimal.NewFromFloat(1.1001)) {
		t.Errorf("Expected 1.1001, got %s", price)
	}
}

func TestParsers_RejectNonPositivePrices(t *testing.T) {
	tests := []struct {
		name    string
		parse   Parser
		payload string
	}{
		{name: "coingecko zero", parse: ParseCoinGecko, payload: `{"near":{"usd":0}}`},
		{name: "coingecko negative", parse: ParseCoinGecko, payload: `{"near":{"usd":-1.5}}`},
		{name: "coinbase zero", parse: ParseCoinbase, payload: `{"data":{"amount":"0"}}`},
		{name: "binance negative", parse: ParseBinance, payload: `{"price":"-0.5"}`},
		{name: "kraken zero", parse: ParseKraken, payload: `{"error":[],"result":{"NEARUSD":{"c":["0","1.0"]}}}`},
		{name: "cryptocompare negative", parse: ParseCryptoCompare, payload: `{"USD":-2}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.parse([]byte(tt.payload))
			if !errors.Is(err, ErrNonPositivePrice) {
				t.Errorf("Expected ErrNonPositivePrice, got %v", err)
			}
		})
	}
}

func TestParsers_RejectMalformedJSON(t *testing.T) {
	parsers := map[string]Parser{
		"coingecko":     ParseCoinGecko,
		"coinbase":      ParseCoinbase,
		"kraken":        ParseKraken,
		"cryptocompare": ParseCryptoCompare,
		"binance":       ParseBinance,
	}

	for name, parse := range parsers {
		t.Run(name, func(t *testing.T) {
			_, err := parse([]byte(`{"truncated":`))
			if !errors.Is(err, ErrInvalidResponse) {
				t.Errorf("Expected ErrInvalidResponse, got %v", err)
			}
		})
	}
}
