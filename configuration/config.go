package configuration

import (
	"fmt"
	"strconv"
	"strings"
)

// emptyPartner marks a column with no vertical edge crossing the cut.
const emptyPartner = -1

// Config is the connectivity state of one horizontal cut. Values are
// passed and returned by value; the underlying partner slice is only
// shared between a Config and copies taken before a mutator is called on
// one of them, never between a Config and its own Copy.
type Config struct {
	partner []int
}

// New returns the all-empty configuration of the given width — the state
// of the cut above row 0, before any edges have been chosen.
func New(width int) Config {
	p := make([]int, width)
	for i := range p {
		p[i] = emptyPartner
	}

	return Config{partner: p}
}

// FromDisplay builds a Config from a canonical display-form sequence: 0
// marks an empty column, and a positive id appearing once marks an
// unpaired endpoint, appearing twice marks a paired subpath's two ends.
// Returns ErrNegativeID or ErrDuplicateID on malformed input.
func FromDisplay(ids []int) (Config, error) {
	counts := make(map[int]int, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if id < 0 {
			return Config{}, fmt.Errorf("%w: %d", ErrNegativeID, id)
		}
		counts[id]++
		if counts[id] > 2 {
			return Config{}, fmt.Errorf("%w: id %d", ErrDuplicateID, id)
		}
	}

	partner := make([]int, len(ids))
	for i := range partner {
		partner[i] = emptyPartner
	}

	firstSeen := make(map[int]int, len(counts))
	for col, id := range ids {
		if id == 0 {
			continue
		}
		if first, ok := firstSeen[id]; ok {
			partner[first] = col
			partner[col] = first
		} else {
			firstSeen[id] = col
		}
	}
	// ids seen exactly once remain unpaired: self-partnered.
	for col, id := range ids {
		if id != 0 && partner[col] == emptyPartner {
			partner[col] = col
		}
	}

	c := Config{partner: partner}
	invariant(c.sanityCheck(), "FromDisplay produced an asymmetric partner array")

	return c, nil
}

// FromDisplayString parses a compact display string, one base-36 digit per
// column (0-9 then a-z for ids 10-35), matching Config.String's output
// format. Base-36 carries subpath ids up to 35; AsTuple and counting never
// go through a string at all, so they have no such limit.
func FromDisplayString(s string) (Config, error) {
	ids := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		v, err := strconv.ParseInt(string(s[i]), 36, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %q", ErrInvalidDisplay, string(s[i]))
		}
		ids[i] = int(v)
	}

	return FromDisplay(ids)
}

// Copy returns an independent clone; mutations on the clone never affect
// the original, and vice versa.
func (c Config) Copy() Config {
	p := make([]int, len(c.partner))
	copy(p, c.partner)

	return Config{partner: p}
}

// Len returns the configuration's width.
func (c Config) Len() int {
	return len(c.partner)
}

// Occupied reports whether a vertical edge from the previous row already
// crosses the cut at col — i.e. whether col carries an endpoint, paired
// or unpaired. Used by package transition to compute residual degree.
func (c Config) Occupied(col int) bool {
	return c.partner[col] != emptyPartner
}

// Link records that a horizontal or vertical move connects columns a and
// b in the new row (a <= b is required; a == b spawns an unpaired endpoint
// at an empty column a, and leaves an occupied column a unchanged).
// Mutates c's backing array in place.
func (c Config) Link(a, b int) {
	invariant(a >= 0 && a <= b && b < len(c.partner), "Link: require 0 <= a <= b < width")

	partner := c.partner
	partnerA, partnerB := partner[a], partner[b]

	switch {
	case partnerA == emptyPartner && partnerB == emptyPartner:
		// split (a != b): a fresh horizontal/vertical edge spawns a new
		// paired subpath. spawn unpaired (a == b): a lone vertical edge
		// creates a loose end. Both cases are the same assignment.
		partner[a] = b
		partner[b] = a

	case a == b:
		// column a already carries an endpoint (paired or unpaired);
		// this link only consumes a's residual degree, no state change.

	case a == partnerB: // equivalently b == partnerA, by the symmetry invariant
		// close: both ends of the same paired subpath meet, and the
		// subpath is removed. Package transition consults WouldClose
		// before every horizontal link, so counting never reaches here.
		partner[a] = emptyPartner
		partner[b] = emptyPartner

	case partnerA == emptyPartner:
		// extend: b's existing end moves to a.
		adjustEnd(partner, partnerB, b, a)

	case partnerB == emptyPartner:
		// extend: a's existing end moves to b.
		adjustEnd(partner, partnerA, a, b)

	default:
		// merge: two distinct subpaths, joined at a and b, become one.
		mergePaths(partner, a, b, partnerA, partnerB)
	}

	invariant(c.sanityCheck(), "Link produced an asymmetric partner array")
}

// adjustEnd moves the end of a subpath from column from to column to.
// p is the partner that from currently points at (p == from for an
// unpaired subpath).
func adjustEnd(partner []int, p, from, to int) {
	partner[from] = emptyPartner
	if p == from {
		partner[to] = to
	} else {
		partner[p] = to
		partner[to] = p
	}
}

// mergePaths joins the subpaths ending at a (partnered with partnerA) and
// at b (partnered with partnerB) into a single subpath.
func mergePaths(partner []int, a, b, partnerA, partnerB int) {
	partner[partnerA] = partnerB
	partner[partnerB] = partnerA
	partner[a] = emptyPartner
	partner[b] = emptyPartner
	if partnerA == a {
		// a's side was an unpaired subpath; the merged result is unpaired at partnerB.
		partner[partnerB] = partnerB
	} else if partnerB == b {
		// symmetric case on b's side.
		partner[partnerA] = partnerA
	}
}

// Mask drops any endpoint whose column has vmask[col] == false. If both
// ends of a paired subpath are dropped, the subpath disappears entirely;
// if only one end is dropped, the subpath becomes unpaired at the
// surviving column. Applying Mask twice with the same vmask is idempotent.
func (c Config) Mask(vmask []bool) {
	invariant(len(vmask) == len(c.partner), "Mask: vmask length must equal width")

	// next must read and write the same evolving slice, in ascending
	// column order, so that masking both ends of one subpath correctly
	// clears it rather than leaving a dangling self-reference.
	next := make([]int, len(c.partner))
	copy(next, c.partner)

	for col := range next {
		if vmask[col] {
			continue
		}
		partner := next[col]
		next[col] = emptyPartner
		if partner >= 0 && partner != col {
			next[partner] = partner
		}
	}

	copy(c.partner, next)

	invariant(c.sanityCheck(), "Mask produced an asymmetric partner array")
}

// WouldClose reports whether Link(a, b) would close a paired subpath into
// a cycle. Requires a < b.
func (c Config) WouldClose(a, b int) bool {
	invariant(a < b && b < len(c.partner), "WouldClose: require a < b < width")

	return c.partner[b] == a
}

// AsTuple returns the canonical display-form tuple: subpaths numbered
// 1, 2, 3, ... in left-to-right order of first appearance, 0 for empty
// columns. This is the hash/equality key for a configuration.
func (c Config) AsTuple() []int {
	out := make([]int, len(c.partner))
	next := 1
	for col, partner := range c.partner {
		if partner == emptyPartner {
			continue
		}
		if partner < col {
			out[col] = out[partner]
		} else {
			out[col] = next
			next++
		}
	}

	return out
}

// String renders the canonical display tuple as one base-36 digit per
// column (see FromDisplayString). Intended for debugging and the
// visualize package only; AsTuple is the form used for keying and has no
// digit-count limit.
func (c Config) String() string {
	tuple := c.AsTuple()
	var sb strings.Builder
	sb.Grow(len(tuple))
	for _, v := range tuple {
		sb.WriteString(strconv.FormatInt(int64(v), 36))
	}

	return sb.String()
}

// Key returns a hashable, comma-separated encoding of the canonical tuple,
// suitable as a map key in the counting driver. Unlike String, Key is not
// limited to the printable base-36 digit range.
func (c Config) Key() string {
	tuple := c.AsTuple()
	var sb strings.Builder
	for i, v := range tuple {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}

	return sb.String()
}

// sanityCheck verifies the partner-array symmetry invariant. Cheap enough
// (O(W)) to run unconditionally after every mutator, unlike the source
// tool's per-call sanity_check which additionally re-derived end-record
// identity.
func (c Config) sanityCheck() bool {
	for i, p := range c.partner {
		if p == emptyPartner {
			continue
		}
		if p < 0 || p >= len(c.partner) || c.partner[p] != i {
			return false
		}
	}

	return true
}

// invariant panics if cond is false. Reserved for internal bugs (broken
// symmetry, dangling partner, precondition violation by this package's own
// callers), never for malformed external input — see package grid for
// that failure path.
func invariant(cond bool, msg string) {
	if !cond {
		panic("configuration: invariant violated: " + msg)
	}
}
