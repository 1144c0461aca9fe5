package aggregator

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mastrophot/agent-wars-oracle/pkg/metrics"
	"github.com/mastrophot/agent-wars-oracle/pkg/oracle/sources"
	"github.com/mastrophot/agent-wars-oracle/pkg/oracle/submission"
)

// Build enforces the quorum and assembles the submission record from the
// successful price points. Every successful source is retained in the record,
// not only the ones nominally needed for quorum. Apart from the embedded
// creation timestamp the result is a pure function of its inputs.
func Build(points []sources.PricePoint, codeOrLogs string, minSources int) (*submission.Record, error) {
	if len(points) < minSources {
		metrics.RecordQuorumFailure()
		return nil, fmt.Errorf("%w: only %d source(s) succeeded, minimum required: %d",
			ErrQuorumNotMet, len(points), minSources)
	}

	// Point prices were already rounded at collection time; the median is
	// rounded again independently. The two-stage rounding matches the
	// documented output contract.
	median := medianPrice(points).Round(sources.PriceScale)

	return &submission.Record{
		MedianPriceUSD:    median.InexactFloat64(),
		Sources:           points,
		CalculationMethod: submission.MethodMedian,
		CalculatedAt:      sources.UTCTimestamp(time.Now()),
		CodeOrLogs:        codeOrLogs,
	}, nil
}

// medianPrice computes the standard statistical median: the middle value for
// an odd count, the mean of the two middle values for an even count.
func medianPrice(points []sources.PricePoint) decimal.Decimal {
	prices := make([]decimal.Decimal, len(points))
	for i, point := range points {
		prices[i] = decimal.NewFromFloat(point.Price)
	}

	sort.Slice(prices, func(i, j int) bool {
		return prices[i].LessThan(prices[j])
	})

	n := len(prices)
	if n%2 == 1 {
		return prices[n/2]
	}
	return prices[n/2-1].Add(prices[n/2]).Div(decimal.NewFromInt(2))
}
