package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// printJSON writes a result record to stdout for piping into other
// tools.
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}
