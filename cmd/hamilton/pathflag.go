package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/hamilton/grid"
	"github.com/katalvlaran/hamilton/verify"
)

// parsePath parses a "(row,col);(row,col);..." path literal, a compact
// coordinate-pair format for dumping or replaying a single path.
func parsePath(s string) (verify.PathRecord, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty path")
	}

	var path verify.PathRecord
	for _, pair := range strings.Split(s, ";") {
		pair = strings.TrimSpace(pair)
		pair = strings.TrimPrefix(pair, "(")
		pair = strings.TrimSuffix(pair, ")")

		parts := strings.SplitN(pair, ",", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("malformed coordinate %q", pair)
		}

		row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("malformed row in %q: %w", pair, err)
		}
		col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("malformed column in %q: %w", pair, err)
		}

		path = append(path, grid.Coord{Row: row, Col: col})
	}

	return path, nil
}
