package transition

import (
	"github.com/katalvlaran/hamilton/configuration"
	"github.com/katalvlaran/hamilton/grid"
)

// Scratch holds the mutable hmask/vmask/residual buffers the enumerator
// needs for one row, reused across every incoming configuration of that
// row (and across rows, via reset) to keep the hot loop allocation-free.
// Not safe for concurrent use; package pathcount gives each worker its
// own Scratch.
type Scratch struct {
	hmask    []bool
	vmask    []bool
	residual []int
}

// NewScratch allocates a Scratch sized for the given grid width.
func NewScratch(width int) *Scratch {
	s := &Scratch{}
	s.reset(width)

	return s
}

// reset sizes s's buffers for width, reusing the backing arrays when
// they are already large enough.
func (s *Scratch) reset(width int) {
	if cap(s.hmask) < width {
		s.hmask = make([]bool, width)
		s.vmask = make([]bool, width)
		s.residual = make([]int, width)
	} else {
		s.hmask = s.hmask[:width]
		s.vmask = s.vmask[:width]
		s.residual = s.residual[:width]
		for i := range s.hmask {
			s.hmask[i] = false
			s.vmask[i] = false
		}
	}
}

// ForEachSuccessor enumerates every legal outgoing configuration.Config
// reachable from in at the given row, given the row's per-column target
// degrees and forward-or-down neighbor availability (both as returned by
// grid.Grid.RowSetup). visit is called once per surviving successor, with
// possible repeats across distinct branches — package pathcount sums
// these repeats onto its successor map.
func ForEachSuccessor(
	s *Scratch,
	in configuration.Config,
	targetDegrees []int,
	next []grid.Neighbors,
	visit func(configuration.Config),
) {
	width := in.Len()
	s.reset(width)

	for col := 0; col < width; col++ {
		used := 0
		if in.Occupied(col) {
			used = 1
		}
		s.residual[col] = targetDegrees[col] - used
	}

	var recurse func(col int)
	recurse = func(col int) {
		if col == width {
			commit(in, s.hmask, s.vmask, visit)
			return
		}
		if s.residual[col] < 0 {
			return // pruned: this cell already has too many edges
		}

		chooseMoves(s, col, next[col], s.residual[col], func() {
			recurse(col + 1)
		})
	}
	recurse(0)
}

// chooseMoves enumerates every way column col can pick exactly k of its
// at-most-two forward-or-down moves, invoking do once per valid choice
// with s.hmask[col]/s.vmask[col] set accordingly. Forward also reserves
// one unit of col+1's residual degree for the duration of do, restored on
// return (backtracking). A k outside [0, available count] has no valid
// choice and do is never called, pruning the branch.
func chooseMoves(s *Scratch, col int, avail grid.Neighbors, k int, do func()) {
	switch k {
	case 0:
		s.hmask[col] = false
		s.vmask[col] = false
		do()

	case 1:
		if avail.Forward {
			s.hmask[col], s.vmask[col] = true, false
			s.residual[col+1]--
			do()
			s.residual[col+1]++
		}
		if avail.Down {
			s.hmask[col], s.vmask[col] = false, true
			do()
		}

	case 2:
		if avail.Forward && avail.Down {
			s.hmask[col], s.vmask[col] = true, true
			s.residual[col+1]--
			do()
			s.residual[col+1]++
		}
	}
	// k < 0 or k > 2: no combination of size k exists among at most two
	// moves, so the branch is silently abandoned (do is never invoked).
}

// commit applies the end-of-row decisions in hmask/vmask to a copy of in
// with a single left-to-right scan: a run of
// consecutive hmask columns [start..idx] becomes one horizontal link; a
// lone vmask column outside any run becomes a straight vertical
// continuation. A link that would close a cycle discards the branch
// (visit is not called). The trailing Mask(vmask) call drops any
// endpoint whose column was not carried down.
func commit(in configuration.Config, hmask, vmask []bool, visit func(configuration.Config)) {
	out := in.Copy()
	start := 0

	for idx := range hmask {
		switch {
		case hmask[idx] && (idx == 0 || !hmask[idx-1]):
			start = idx

		case !hmask[idx] && idx > 0 && hmask[idx-1]:
			if out.WouldClose(start, idx) {
				return // cycle-forming link: reject this configuration
			}
			out.Link(start, idx)

		case vmask[idx]:
			out.Link(idx, idx)
		}
	}

	out.Mask(vmask)
	visit(out)
}
