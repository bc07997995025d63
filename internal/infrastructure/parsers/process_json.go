package parsers

import (
	"encoding/json"
	"fmt"
	"io"
)

// ProcessJSON parses process records from the nested JSON export format: a
// top-level array of per-object records.
type ProcessJSON struct{}

// Parse reads JSON from the reader and returns the process records.
func (p *ProcessJSON) Parse(r io.Reader) ([]ProcessRecord, error) {
	var records []ProcessRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding process records: %w", err)
	}
	for i, rec := range records {
		if rec.ObjectID == "" {
			return nil, fmt.Errorf("record %d: missing object id", i)
		}
	}
	return records, nil
}

// Dedup collapses records sharing an object id. The last record for an id
// wins, but the position of its first occurrence is kept, matching the
// loader this format was exported for.
func Dedup(records []ProcessRecord) []ProcessRecord {
	byID := make(map[string]ProcessRecord, len(records))
	order := make([]string, 0, len(records))
	for _, rec := range records {
		if _, seen := byID[rec.ObjectID]; !seen {
			order = append(order, rec.ObjectID)
		}
		byID[rec.ObjectID] = rec
	}
	out := make([]ProcessRecord, 0, len(order))
	for _, id := range order {
		out = append(out, byID[id])
	}
	return out
}
