// Package hamilton counts, verifies, and benchmarks Hamiltonian paths
// through rectangular grid graphs.
//
// What is hamilton?
//
//	A row-by-row dynamic program that counts Hamiltonian paths through a
//	W×H grid (optionally with blocked cells and a fixed start/end) without
//	ever enumerating the paths themselves. It tracks, one row at a time,
//	every way the partial path segments crossing the row boundary could
//	pair up — a "configuration" — and folds equivalent configurations
//	together as it sweeps down the grid.
//
// Under the hood, everything is organized under a handful of subpackages:
//
//	configuration/ — the partner-array connectivity state and its transitions
//	transition/     — row-by-row successor enumeration over configurations
//	pathcount/      — the sequential and parallel map-reduce counting drivers
//	grid/           — grid parsing, cell codes, and per-row neighbor derivation
//	verify/         — independent path validity checking and ASCII rendering
//	bench/          — timing harness and optional sqlite history
//	visualize/      — an interactive row-by-row viewer and single-path SVG export
//	core/, bfs/     — the small adjacency graph and breadth-first reachability
//	  search that grid and verify build on
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	a 2×2 grid with all four cells open, A as start and C as end, has
//	exactly one Hamiltonian path: A→B→D→C.
package hamilton
