// Package grid parses and represents the rectangular, optionally-blocked
// grid that the Hamiltonian-path counter runs over, adapted from the
// teacher's gridgraph package to a Hamiltonian-path cell model instead of
// a land/water one.
//
// What:
//
//   - Grid wraps a W×H rectangle of CellCodes (Open, Blocked, Start, End).
//   - TargetDegree(row, col) gives the cell's required path-incidence count.
//   - RowSetup(row) derives the per-column target degree and forward-or-down
//     neighbor availability that package transition consumes.
//
// Why:
//
//   - The counting driver never touches raw cell codes; it only needs, per
//     row, the target degree and the "can I go right" / "can I go down"
//     facts. Deriving those once per row up front (rather than re-deriving
//     adjacency per branch) keeps the enumerator's hot loop allocation-free.
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular, ErrBadCellCode, ErrEndpointCount: all
//     detected at parse time, never during counting.
package grid
