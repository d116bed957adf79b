package export

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteFile serializes v as indented JSON to path. The file is the whole
// interface to the downstream visualizer, so the layout is fixed: 2-space
// indentation, UTF-8.
func WriteFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
