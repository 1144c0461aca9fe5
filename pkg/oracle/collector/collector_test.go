package collector

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mastrophot/agent-wars-oracle/pkg/logging"
	"github.com/mastrophot/agent-wars-oracle/pkg/oracle/fetcher"
	"github.com/mastrophot/agent-wars-oracle/pkg/oracle/sources"
)

func jsonServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestCollect_SplitsSuccessesAndFailures(t *testing.T) {
	okCoingecko := jsonServer(t, `{"near":{"usd":1.234}}`)
	okBinance := jsonServer(t, `{"price":"1.018"}`)
	badKraken := jsonServer(t, `{"error":["EService:Unavailable"],"result":{}}`)

	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	downURL := down.URL
	down.Close()

	srcs := []sources.Source{
		{Name: "coingecko", URL: okCoingecko.URL, Parse: sources.ParseCoinGecko},
		{Name: "binance", URL: okBinance.URL, Parse: sources.ParseBinance},
		{Name: "kraken", URL: badKraken.URL, Parse: sources.ParseKraken},
		{Name: "cryptocompare", URL: downURL, Parse: sources.ParseCryptoCompare},
	}

	var buf bytes.Buffer
	logger := logging.NewWriterLogger(&buf)
	c := New(fetcher.New(2*time.Second), logger)

	points, failures := c.Collect(context.Background(), srcs)

	if len(points) != 2 {
		t.Fatalf("Expected 2 successes, got %d: %+v", len(points), points)
	}
	if len(failures) != 2 {
		t.Fatalf("Expected 2 failures, got %d: %+v", len(failures), failures)
	}

	byAPI := make(map[string]sources.PricePoint, len(points))
	for _, point := range points {
		byAPI[point.API] = point
	}
	if byAPI["coingecko"].Price != 1.234 {
		t.Errorf("Unexpected coingecko price: %v", byAPI["coingecko"].Price)
	}
	if byAPI["binance"].Price != 1.018 {
		t.Errorf("Unexpected binance price: %v", byAPI["binance"].Price)
	}
	for _, point := range points {
		if !strings.HasSuffix(point.Timestamp, "Z") {
			t.Errorf("Timestamp missing Z suffix: %s", point.Timestamp)
		}
	}

	failedAPIs := make(map[string]string, len(failures))
	for _, failure := range failures {
		if failure.Err == "" {
			t.Errorf("Failure for %s has empty error", failure.API)
		}
		failedAPIs[failure.API] = failure.Err
	}
	if _, ok := failedAPIs["kraken"]; !ok {
		t.Error("Expected kraken among failures")
	}
	if _, ok := failedAPIs["cryptocompare"]; !ok {
		t.Error("Expected cryptocompare among failures")
	}
}

func TestCollect_AuditLogOneEventPerSource(t *testing.T) {
	ok := jsonServer(t, `{"USD":1.1001}`)
	bad := jsonServer(t, `{"USD":0}`)

	srcs := []sources.Source{
		{Name: "cryptocompare", URL: ok.URL, Parse: sources.ParseCryptoCompare},
		{Name: "coingecko", URL: bad.URL, Parse: sources.ParseCoinGecko},
	}

	var buf bytes.Buffer
	c := New(fetcher.New(2*time.Second), logging.NewWriterLogger(&buf))
	c.Collect(context.Background(), srcs)

	logged := buf.String()
	if strings.Count(logged, "api_call_success") != 1 {
		t.Errorf("Expected exactly one api_call_success event, log: %s", logged)
	}
	if strings.Count(logged, "api_call_failure") != 1 {
		t.Errorf("Expected exactly one api_call_failure event, log: %s", logged)
	}
	for _, field := range []string{`"api"`, `"latency_ms"`, `"url"`, `"status"`, `"bytes"`, `"price"`} {
		if !strings.Contains(logged, field) {
			t.Errorf("Audit log missing field %s: %s", field, logged)
		}
	}
}

func TestCollect_OneOutcomePerSource(t *testing.T) {
	ok := jsonServer(t, `{"price":"2.5"}`)

	srcs := []sources.Source{
		{Name: "binance", URL: ok.URL, Parse: sources.ParseBinance},
	}

	c := New(fetcher.New(time.Second), logging.NewNoopLogger())
	points, failures := c.Collect(context.Background(), srcs)

	if len(points)+len(failures) != len(srcs) {
		t.Fatalf("Expected one outcome per source, got %d successes and %d failures",
			len(points), len(failures))
	}
}
