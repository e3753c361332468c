// internal/commonality/commonality.go
//
// Word-commonality lookup for the solver's scoring heuristic.
//
// The solver treats commonality as a single-method capability
// (word -> score); this package provides the two shippable backends:
//   - Static: an in-memory table, built from embedded or file data.
//   - DB: a SQLite-backed table for full-size frequency corpora (sqlite.go).
//
// Scores follow a zipf-style scale (higher is more common). Unknown words
// score 0 in every backend.

package commonality

import (
	"fmt"
	"strconv"
	"strings"
)

// Static is an in-memory commonality table. Lookups for unknown words
// return 0.
type Static map[string]float64

// Score returns the stored zipf score for word, or 0 when unknown.
func (s Static) Score(word string) float64 {
	return s[strings.ToLower(strings.TrimSpace(word))]
}

// ParseLines builds a Static table from "word zipf" lines, the same format
// the SQLite importer consumes. Blank lines and '#' comments are skipped.
func ParseLines(lines []string) (Static, error) {
	table := make(Static, len(lines))
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word, zipf, err := parsePair(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		table[word] = zipf
	}
	return table, nil
}

// parsePair splits one "word zipf" line.
func parsePair(line string) (string, float64, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return "", 0, fmt.Errorf("want \"word zipf\", got %q", line)
	}
	zipf, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return "", 0, fmt.Errorf("bad zipf value %q: %w", fields[1], err)
	}
	return strings.ToLower(fields[0]), zipf, nil
}
