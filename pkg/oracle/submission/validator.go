package submission

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// requiredFields are the top-level keys every submission must carry.
var requiredFields = []string{
	"median_price_usd",
	"sources",
	"calculation_method",
	"calculated_at",
	"code_or_logs",
}

// sourceEntryKeys are the keys every source entry must carry.
var sourceEntryKeys = []string{"api", "price", "timestamp"}

// Validate re-checks a built record against the submission schema. It is a
// second, independent pass: the record is round-tripped through JSON and
// verified field by field, so an aggregator bug cannot slip through on the
// strength of Go's type system alone.
func Validate(record *Record, minSources int) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("failed to decode record: %w", err)
	}

	return ValidatePayload(payload, minSources)
}

// ValidatePayload verifies an arbitrary decoded payload against the
// submission schema. It makes no assumption about who built the payload, so
// externally supplied or tampered records are caught too. Validation mutates
// nothing and is idempotent.
func ValidatePayload(payload map[string]interface{}, minSources int) error {
	var missing []string
	for _, field := range requiredFields {
		if _, ok := payload[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", "))
	}

	if payload["calculation_method"] != MethodMedian {
		return fmt.Errorf("%w: got %v", ErrBadCalculationMethod, payload["calculation_method"])
	}

	entries, ok := payload["sources"].([]interface{})
	if !ok || len(entries) < minSources {
		return fmt.Errorf("%w: %d", ErrTooFewSources, minSources)
	}

	seen := make(map[string]bool, len(entries))
	for _, raw := range entries {
		entry, ok := raw.(map[string]interface{})
		if !ok {
			return fmt.Errorf("%w: %v", ErrInvalidSourceEntry, raw)
		}

		for _, key := range sourceEntryKeys {
			if _, ok := entry[key]; !ok {
				return fmt.Errorf("%w: %s", ErrSourceEntryMissingKey, key)
			}
		}

		api := fmt.Sprintf("%v", entry["api"])
		if seen[api] {
			return fmt.Errorf("%w: %s", ErrDuplicateAPI, api)
		}
		seen[api] = true

		price, err := numericValue(entry["price"])
		if err != nil || price <= 0 {
			return fmt.Errorf("%w: %s", ErrInvalidPrice, api)
		}

		timestamp := fmt.Sprintf("%v", entry["timestamp"])
		if !strings.HasSuffix(timestamp, "Z") {
			return fmt.Errorf("%w: %s", ErrInvalidTimestamp, api)
		}
	}

	return nil
}

// numericValue coerces a decoded JSON value to float64. String-encoded
// numbers are accepted, matching the lenient price coercion of the schema.
func numericValue(v interface{}) (float64, error) {
	switch value := v.(type) {
	case float64:
		return value, nil
	case json.Number:
		return value.Float64()
	case string:
		return strconv.ParseFloat(value, 64)
	default:
		return 0, fmt.Errorf("not a number: %v", v)
	}
}
