package sources

import (
	"fmt"
	"strings"
)

// Override customizes a built-in source by name.
type Override struct {
	Enabled *bool  // nil keeps the source enabled
	URL     string // empty keeps the default endpoint
}

// Defaults returns the built-in NEAR/USD source registry in registration
// order. Each entry pairs a public endpoint with its documented parsing rule.
func Defaults() []Source {
	return []Source{
		{
			Name:  "coingecko",
			URL:   "https://api.coingecko.com/api/v3/simple/price?ids=near&vs_currencies=usd",
			Parse: ParseCoinGecko,
		},
		{
			Name:  "coinbase",
			URL:   "https://api.coinbase.com/v2/prices/NEAR-USD/spot",
			Parse: ParseCoinbase,
		},
		{
			Name:  "kraken",
			URL:   "https://api.kraken.com/0/public/Ticker?pair=NEARUSD",
			Parse: ParseKraken,
		},
		{
			Name:  "cryptocompare",
			URL:   "https://min-api.cryptocompare.com/data/price?fsym=NEAR&tsyms=USD",
			Parse: ParseCryptoCompare,
		},
		{
			Name:  "binance",
			URL:   "https://api.binance.com/api/v3/ticker/price?symbol=NEARUSDT",
			Parse: ParseBinance,
		},
	}
}

// Build returns the active source list with overrides applied by name.
// Overrides referencing unknown sources are rejected.
func Build(overrides map[string]Override) ([]Source, error) {
	defaults := Defaults()

	known := make(map[string]bool, len(defaults))
	for _, src := range defaults {
		known[src.Name] = true
	}

	normalized := make(map[string]Override, len(overrides))
	for name, override := range overrides {
		lower := strings.ToLower(name)
		if !known[lower] {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSource, name)
		}
		normalized[lower] = override
	}

	active := make([]Source, 0, len(defaults))
	for _, src := range defaults {
		override, ok := normalized[src.Name]
		if ok {
			if override.Enabled != nil && !*override.Enabled {
				continue
			}
			if override.URL != "" {
				src.URL = override.URL
			}
		}
		active = append(active, src)
	}

	if len(active) == 0 {
		return nil, fmt.Errorf("%w", ErrNoSourcesEnabled)
	}

	return active, nil
}
