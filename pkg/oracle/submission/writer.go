package submission

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Write persists the record as indented JSON at path, creating parent
// directories as needed.
func Write(path string, record *Record) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write submission: %w", err)
	}

	return nil
}
