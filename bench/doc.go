// Package bench times the counting driver over repeated iterations and
// summarizes the samples as a statistics-bearing library function rather
// than a single printed number.
//
// What:
//   - Run times iterations runs of pathcount.Sequential.Count (after one
//     untimed run that yields the count) and returns a Report (count,
//     iterations, and the total, mean and standard deviation of the
//     per-iteration seconds; the individual samples are not kept).
//   - History optionally persists Reports to a SQLite database for
//     longitudinal comparison across runs (the CLI's -bench-history flag).
//
// Errors:
//
//	ErrNoIterations - iterations is not positive.
package bench
