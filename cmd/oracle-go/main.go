package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/mastrophot/agent-wars-oracle/pkg/config"
	"github.com/mastrophot/agent-wars-oracle/pkg/logging"
	"github.com/mastrophot/agent-wars-oracle/pkg/metrics"
	"github.com/mastrophot/agent-wars-oracle/pkg/oracle/aggregator"
	"github.com/mastrophot/agent-wars-oracle/pkg/oracle/collector"
	"github.com/mastrophot/agent-wars-oracle/pkg/oracle/fetcher"
	"github.com/mastrophot/agent-wars-oracle/pkg/oracle/sources"
	"github.com/mastrophot/agent-wars-oracle/pkg/oracle/submission"
	"github.com/mastrophot/agent-wars-oracle/pkg/version"
)

var (
	configFile = flag.String("config", "", "Path to configuration file (optional)")
	showVer    = flag.Bool("version", false, "Show version and exit")
	timeout    = flag.Duration("timeout", 0, "HTTP timeout per API request (overrides config)")
	minSources = flag.Int("min-sources", 0, "Minimum successful sources required (overrides config)")
	output     = flag.String("output", "", "Submission JSON path (overrides config)")
	logPath    = flag.String("log", "", "Execution log path with proof of API calls (overrides config)")
	codeOrLogs = flag.String("code-or-logs", "", "Value for submission field code_or_logs (overrides config)")
)

func main() {
	flag.Parse()

	if *showVer {
		fmt.Printf("agent-wars-oracle version %s\n", version.Version)
		os.Exit(0)
	}

	os.Exit(run())
}

func run() int {
	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	// Flag overrides
	if *timeout > 0 {
		cfg.Oracle.Timeout = config.Duration(*timeout)
	}
	if *minSources > 0 {
		cfg.Oracle.MinSources = *minSources
	}
	if *output != "" {
		cfg.Oracle.Output = *output
	}
	if *logPath != "" {
		cfg.Logging.Output = *logPath
	}
	if *codeOrLogs != "" {
		cfg.Oracle.CodeOrLogs = *codeOrLogs
	}

	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		return 1
	}

	logger, err := logging.Init(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		return 1
	}

	if cfg.Metrics.Enabled {
		metrics.Init()
		go func() {
			logger.Info("Starting metrics server", "addr", cfg.Metrics.Addr)
			if err := metrics.ServeHTTP(cfg.Metrics.Addr, cfg.Metrics.Path); err != nil {
				logger.Error("Metrics server failed", "error", err)
			}
		}()
	}

	overrides := make(map[string]sources.Override, len(cfg.Sources))
	for _, sourceCfg := range cfg.Sources {
		overrides[sourceCfg.Name] = sources.Override{
			Enabled: sourceCfg.Enabled,
			URL:     sourceCfg.URL,
		}
	}

	srcs, err := sources.Build(overrides)
	if err != nil {
		logger.Error("oracle_run_failed", "error", err.Error())
		return 1
	}

	requestTimeout := cfg.Oracle.Timeout.ToDuration()
	logger.Info("oracle_run_started",
		"version", version.Version,
		"source_count", len(srcs),
		"timeout", requestTimeout.String(),
		"min_sources", cfg.Oracle.MinSources)

	ctx := context.Background()
	client := fetcher.New(requestTimeout)
	points, failures := collector.New(client, logger).Collect(ctx, srcs)

	logger.Info("oracle_collection_finished",
		"success", len(points),
		"failed", len(failures))

	record, err := aggregator.Build(points, cfg.Oracle.CodeOrLogs, cfg.Oracle.MinSources)
	if err != nil {
		metrics.RecordSubmission("quorum_failed")
		logger.Error("oracle_run_failed", "error", err.Error())
		return 1
	}

	if err := submission.Validate(record, cfg.Oracle.MinSources); err != nil {
		metrics.RecordSubmission("schema_failed")
		logger.Error("oracle_run_failed", "error", err.Error())
		return 1
	}

	if err := submission.Write(cfg.Oracle.Output, record); err != nil {
		metrics.RecordSubmission("write_failed")
		logger.Error("oracle_run_failed", "error", err.Error())
		return 1
	}

	metrics.RecordSubmission("success")
	logger.Info("oracle_submission_written",
		"output", cfg.Oracle.Output,
		"median_price_usd", record.MedianPriceUSD,
		"successful_sources", len(record.Sources))

	printRecord(record)
	return 0
}

// printRecord echoes the validated submission to stdout, matching the file
// contents byte for byte.
func printRecord(record *submission.Record) {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return
	}
	fmt.Println(string(data))
}
