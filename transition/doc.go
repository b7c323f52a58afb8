// Package transition enumerates, for one grid row, every legal successor
// configuration reachable from an incoming configuration.Config, using
// recursive backtracking over shared, mutated-then-undone scratch buffers
// and a callback/visitor form rather than a generator.
//
// What:
//
//   - ForEachSuccessor walks every combination of forward/downward edges
//     each column may take (bounded by residual degree), backtracking on
//     overcommitted or cycle-forming branches, and invokes visit once per
//     surviving outgoing configuration.
//
// Why:
//
//   - The number of successor configurations can be large; materializing
//     them as a slice before handing them to the counting driver would
//     double the hot-path allocation. The callback form lets pathcount
//     fold multiplicities directly into its next-row map.
//
// Complexity:
//
//   - Exponential in the worst case (2 choices per column), but pruned
//     aggressively by residual degree and the no-cycle rule; in practice
//     bounded by the grid's target-degree structure.
package transition
