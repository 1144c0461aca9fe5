// Package collector fans out one fetch per source and gathers the outcomes.
package collector

import (
	"context"
	"time"

	"github.com/mastrophot/agent-wars-oracle/pkg/logging"
	"github.com/mastrophot/agent-wars-oracle/pkg/metrics"
	"github.com/mastrophot/agent-wars-oracle/pkg/oracle/fetcher"
	"github.com/mastrophot/agent-wars-oracle/pkg/oracle/sources"
)

// Collector attempts every source exactly once per run. Sources are mutually
// independent: a failing source never aborts the others, and no source is
// retried. Every outcome is logged, one event per source; this log is the
// audit trail the submission's code_or_logs field points at.
type Collector struct {
	client *fetcher.Client
	logger *logging.Logger
}

// New creates a collector using the given fetch client and audit logger.
func New(client *fetcher.Client, logger *logging.Logger) *Collector {
	return &Collector{
		client: client,
		logger: logger,
	}
}

type outcome struct {
	point   *sources.PricePoint
	failure *sources.FetchFailure
}

// Collect runs fetch+parse for every source concurrently and splits the
// outcomes into successes and failures. Successes arrive in completion order,
// which carries no meaning downstream.
func (c *Collector) Collect(ctx context.Context, srcs []sources.Source) ([]sources.PricePoint, []sources.FetchFailure) {
	started := time.Now()

	results := make(chan outcome, len(srcs))
	for _, src := range srcs {
		go func(src sources.Source) {
			results <- c.attempt(ctx, src)
		}(src)
	}

	points := make([]sources.PricePoint, 0, len(srcs))
	failures := make([]sources.FetchFailure, 0)
	for range srcs {
		result := <-results
		if result.point != nil {
			points = append(points, *result.point)
		} else {
			failures = append(failures, *result.failure)
		}
	}

	metrics.RecordCollection(time.Since(started))
	return points, failures
}

// attempt performs one fetch and parse for a single source. Errors never
// escape; they become FetchFailure values.
func (c *Collector) attempt(ctx context.Context, src sources.Source) outcome {
	started := time.Now()

	result, err := c.client.Fetch(ctx, src.URL)
	if err != nil {
		return c.fail(src, started, err)
	}

	price, err := src.Parse(result.Body)
	if err != nil {
		return c.fail(src, started, err)
	}

	point := sources.NewPricePoint(src.Name, price, time.Now())
	latency := time.Since(started)

	c.logger.Info("api_call_success",
		"api", src.Name,
		"status", result.Status,
		"latency_ms", latencyMillis(latency),
		"bytes", result.Bytes,
		"price", price.StringFixed(8),
		"url", src.URL)
	metrics.RecordAPICall(src.Name, "success", latency)

	return outcome{point: &point}
}

func (c *Collector) fail(src sources.Source, started time.Time, err error) outcome {
	latency := time.Since(started)

	c.logger.Warn("api_call_failure",
		"api", src.Name,
		"latency_ms", latencyMillis(latency),
		"error", err.Error(),
		"url", src.URL)
	metrics.RecordAPICall(src.Name, "failure", latency)

	return outcome{failure: &sources.FetchFailure{API: src.Name, Err: err.Error()}}
}

func latencyMillis(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000.0
}
