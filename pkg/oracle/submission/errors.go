// Package submission defines the submission record, its schema validator and
// the JSON writer.
package submission

import "errors"

// Schema validation errors. Any of these is fatal to the run: a record that
// fails validation is never treated as the canonical output.
var (
	// ErrMissingFields indicates absent required top-level fields.
	ErrMissingFields = errors.New("submission missing required fields")
	// ErrBadCalculationMethod indicates a calculation_method other than "median".
	ErrBadCalculationMethod = errors.New("calculation_method must be 'median'")
	// ErrTooFewSources indicates a sources list shorter than the quorum.
	ErrTooFewSources = errors.New("sources must contain at least the minimum number of entries")
	// ErrInvalidSourceEntry indicates a source entry that is not an object.
	ErrInvalidSourceEntry = errors.New("source entry must be an object")
	// ErrSourceEntryMissingKey indicates a source entry missing api, price or timestamp.
	ErrSourceEntryMissingKey = errors.New("source entry missing key")
	// ErrDuplicateAPI indicates two source entries sharing the same api name.
	ErrDuplicateAPI = errors.New("duplicate API source")
	// ErrInvalidPrice indicates a source price that is not a positive number.
	ErrInvalidPrice = errors.New("invalid non-positive price for source")
	// ErrInvalidTimestamp indicates a source timestamp not ending with "Z".
	ErrInvalidTimestamp = errors.New("timestamp must be UTC ISO string ending with 'Z'")
)
