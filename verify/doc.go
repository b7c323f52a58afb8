// Package verify checks a concrete Hamiltonian path against a Grid and
// renders it as ASCII art. It is a diagnostic collaborator only: nothing
// in package pathcount calls it, and counting never materializes a path.
//
// What:
//   - Check reports whether a candidate path starts/ends at the grid's
//     start/end cells, visits every open cell exactly once, and only ever
//     steps along grid-adjacent cells.
//   - Render draws the path as a box-and-pipe grid, one line of "+-+-+"
//     horizontal segments and one line of "| |" vertical segments per row.
//
// Errors:
//
//	ErrEmptyPath - path has zero cells.
package verify
