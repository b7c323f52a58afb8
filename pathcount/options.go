package pathcount

import "github.com/katalvlaran/hamilton/grid"

// Driver is the common contract both Sequential and Parallel satisfy.
type Driver interface {
	Count(g *grid.Grid) (uint64, error)
}

// Options configures a counting driver.
type Options struct {
	// Workers bounds Parallel's goroutine count. Zero or negative selects
	// runtime.GOMAXPROCS(0). Ignored by Sequential.
	Workers int

	// ProgressFunc, if set, is called once per completed row with the row
	// index, total row count, and the number of surviving configurations
	// — useful for a CLI progress bar or the visualize TUI. Never called
	// concurrently, even from Parallel.
	ProgressFunc func(row, rows, states int)
}

// DefaultOptions returns the zero-value Options: Workers 0 (GOMAXPROCS(0)
// for Parallel, ignored by Sequential), no progress reporting.
func DefaultOptions() Options {
	return Options{}
}
