package sources

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimestampLayout is the UTC second-precision format used throughout the
// submission ("2026-02-22T00:00:00Z"). The trailing "Z" is part of the
// downstream schema contract.
const TimestampLayout = "2006-01-02T15:04:05Z"

// PriceScale is the number of decimal places recorded prices are rounded to.
const PriceScale = 6

// Parser extracts a single positive price from a source's raw response body.
type Parser func(body []byte) (decimal.Decimal, error)

// Source is one independent price-quote endpoint with its parsing rule.
// Sources are defined at process start and never mutated.
type Source struct {
	Name  string
	URL   string
	Parse Parser
}

// PricePoint is the result of one successful fetch.
type PricePoint struct {
	API       string  `json:"api"`
	Price     float64 `json:"price"`
	Timestamp string  `json:"timestamp"`
}

// FetchFailure records a failed fetch attempt. Failures are terminal within a
// run; no source is retried.
type FetchFailure struct {
	API string `json:"api"`
	Err string `json:"error"`
}

// NewPricePoint builds a PricePoint with the price rounded to PriceScale
// decimal places and the timestamp formatted in UTC.
func NewPricePoint(api string, price decimal.Decimal, at time.Time) PricePoint {
	return PricePoint{
		API:       api,
		Price:     price.Round(PriceScale).InexactFloat64(),
		Timestamp: UTCTimestamp(at),
	}
}

// UTCTimestamp formats t as a UTC second-precision timestamp ending in "Z".
func UTCTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
