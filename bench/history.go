package bench

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// History persists Reports to a SQLite database for longitudinal
// comparison across runs, grounded on the pack's read/write-only-sqlite
// datasource style.
type History struct {
	db *sql.DB
}

// OpenHistory opens (creating if absent) a SQLite database at path and
// ensures its schema exists.
func OpenHistory(path string) (*History, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("bench: opening history database: %w", err)
	}

	const schema = `
		CREATE TABLE IF NOT EXISTS runs (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			recorded_at    DATETIME NOT NULL,
			grid_width     INTEGER NOT NULL,
			grid_height    INTEGER NOT NULL,
			path_count     INTEGER NOT NULL,
			iterations     INTEGER NOT NULL,
			total_seconds  REAL NOT NULL,
			mean_seconds   REAL NOT NULL,
			stddev_seconds REAL NOT NULL
		)
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("bench: creating history schema: %w", err)
	}

	return &History{db: db}, nil
}

// Record inserts one Report row, tagged with the grid's dimensions.
func (h *History) Record(width, height int, r Report) error {
	_, err := h.db.Exec(
		`INSERT INTO runs (recorded_at, grid_width, grid_height, path_count, iterations, total_seconds, mean_seconds, stddev_seconds)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC(), width, height, r.Count, r.Iterations, r.TotalSeconds, r.MeanSeconds, r.StdDevSeconds,
	)
	if err != nil {
		return fmt.Errorf("bench: recording history: %w", err)
	}

	return nil
}

// Close closes the underlying database connection.
func (h *History) Close() error {
	return h.db.Close()
}
