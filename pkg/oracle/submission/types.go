package submission

import (
	"github.com/mastrophot/agent-wars-oracle/pkg/oracle/sources"
)

// MethodMedian is the only calculation method this tool emits. Downstream
// consumers match it literally.
const MethodMedian = "median"

// Record is the submission artifact. Field names are the wire contract and
// must be preserved verbatim.
type Record struct {
	MedianPriceUSD    float64              `json:"median_price_usd"`
	Sources           []sources.PricePoint `json:"sources"`
	CalculationMethod string               `json:"calculation_method"`
	CalculatedAt      string               `json:"calculated_at"`
	CodeOrLogs        string               `json:"code_or_logs"`
}
