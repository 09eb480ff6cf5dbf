package metadata

import (
	"encoding/json"
	"fmt"
)

// Parse decodes the JSON document printed by `cargo metadata --format-version 1`.
func Parse(data []byte) (*Metadata, error) {
	var m Metadata
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing metadata JSON: %w", err)
	}
	return &m, nil
}
