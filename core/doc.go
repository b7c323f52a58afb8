// Package core provides Graph, a small thread-safe undirected adjacency
// structure. It is not a general-purpose graph library: no directed
// edges, weights, multi-edges, or self-loops, because the grid adjacency
// and single-path rendering this repo builds never need them.
//
// What:
//
//   - AddVertex/AddEdge build a Graph from a grid's cells and their
//     orthogonal links.
//   - HasEdge/NeighborIDs answer the two questions callers ask of it:
//     "are these cells linked" (path verification) and "what's linked to
//     this cell" (bfs.BFS's connectivity check).
package core
