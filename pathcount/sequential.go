package pathcount

import (
	"github.com/katalvlaran/hamilton/configuration"
	"github.com/katalvlaran/hamilton/grid"
	"github.com/katalvlaran/hamilton/transition"
)

// entry pairs a canonical configuration with its current multiplicity.
type entry struct {
	cfg   configuration.Config
	count uint64
}

// Sequential is the reference row-by-row map-reduce driver: single map,
// no concurrency, advanced one row at a time.
type Sequential struct {
	Options Options
}

// NewSequential returns a Sequential driver with the given options.
func NewSequential(opts Options) *Sequential {
	return &Sequential{Options: opts}
}

// Count returns the number of Hamiltonian paths g's start-to-end cells
// admit. Deterministic; zero Hamiltonian paths is a valid, non-error
// result.
func (d *Sequential) Count(g *grid.Grid) (uint64, error) {
	if g == nil {
		return 0, ErrNilGrid
	}

	width := g.Width()
	cur := map[string]entry{}
	start := configuration.New(width)
	cur[start.Key()] = entry{cfg: start, count: 1}

	scratch := transition.NewScratch(width)

	for row := 0; row < g.Height(); row++ {
		targetDegrees, next := g.RowSetup(row)
		nxt := make(map[string]entry, len(cur))

		for _, live := range cur {
			n := live.count
			transition.ForEachSuccessor(scratch, live.cfg, targetDegrees, next, func(out configuration.Config) {
				key := out.Key()
				e := nxt[key]
				e.cfg = out
				e.count += n
				nxt[key] = e
			})
		}

		cur = nxt
		if d.Options.ProgressFunc != nil {
			d.Options.ProgressFunc(row, g.Height(), len(cur))
		}
	}

	var total uint64
	for _, e := range cur {
		total += e.count
	}

	return total, nil
}
