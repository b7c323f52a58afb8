// Package pathcount is the top-level row-by-row counting driver: it
// maintains a configuration → multiplicity map and advances it across the
// grid's rows using package transition.
//
// What:
//
//   - Sequential.Count is the direct map-reduce form: one map, advanced row
//     by row, no concurrency.
//   - Parallel.Count shards the current row's map across a worker pool
//     (golang.org/x/sync/errgroup), exploiting the naturally-parallel
//     structure each row's independent configuration expansions have.
//
// Why:
//
//   - Counting instead of enumerating is what makes exponentially many
//     Hamiltonian paths tractable; this package is where that reduction
//     happens, reducing a row's worth of branching to one addition per
//     surviving successor.
//
// Errors:
//
//   - ErrNilGrid: Count was called with a nil *grid.Grid.
package pathcount
