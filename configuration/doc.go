// Package configuration implements the connectivity state ("configuration")
// that the row-by-row Hamiltonian-path counter carries across a horizontal
// cut between two grid rows.
//
// What:
//
//   - Config encodes, for each column, whether a vertical edge crosses the
//     cut, and if so, which other column (if any) it is paired with.
//   - Link records a new horizontal/vertical connection between two columns.
//   - Mask discards endpoints whose downward edge was not chosen.
//   - AsTuple / String produce the canonical, hashable display form.
//
// Why:
//
//   - The number of Hamiltonian paths in a grid grows exponentially with
//     its area, so the counting driver (package pathcount) never tracks
//     individual paths — only how many ways reach each distinct
//     connectivity state. Config is that state, kept as compact and
//     allocation-light as possible since it sits on the hottest loop in
//     the program.
//
// Representation:
//
//   - A "partner array": partner[c] holds the column paired with c, c
//     itself for an unpaired (single-ended) subpath, or emptyPartner for no
//     connection at all. This avoids the heap allocation and aliasing that
//     a shared mutable end-record representation would require, and makes
//     Copy a plain slice copy.
//
// Complexity:
//
//   - Link, Mask, WouldClose, Copy: O(W) or better, no allocation on Link/
//     WouldClose; Mask and Copy allocate one W-length slice.
//   - AsTuple: O(W).
//
// Errors:
//
//   - ErrDuplicateID: a display-form id appears more than twice.
//   - ErrNegativeID: a display-form id is negative.
//   - ErrInvalidDisplay: a display string contains a non-base-36 character.
//
// Internal invariants (checked after every mutator via invariant()):
//
//   - Symmetry: partner[partner[c]] == c whenever partner[c] is not empty.
//   - No dangling partner: partner[c] always indexes within [0, len).
package configuration
