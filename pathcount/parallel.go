package pathcount

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hamilton/configuration"
	"github.com/katalvlaran/hamilton/grid"
	"github.com/katalvlaran/hamilton/transition"
)

// Parallel shards the current row's configuration→multiplicity map across
// a worker pool and merges per-worker partial maps: row transitions are
// naturally parallelizable since each incoming configuration expands
// independently of every other. Grounded on the errgroup.WithContext +
// SetLimit + Go + Wait pattern used for sharded work elsewhere in the
// example corpus.
type Parallel struct {
	Options Options
}

// NewParallel returns a Parallel driver with the given options.
func NewParallel(opts Options) *Parallel {
	return &Parallel{Options: opts}
}

// Count returns the number of Hamiltonian paths g's start-to-end cells
// admit, computed with up to Options.Workers concurrent goroutines per
// row. Produces the same result as Sequential.Count for the same grid.
func (d *Parallel) Count(g *grid.Grid) (uint64, error) {
	if g == nil {
		return 0, ErrNilGrid
	}

	workers := d.Options.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	width := g.Width()
	cur := map[string]entry{}
	start := configuration.New(width)
	cur[start.Key()] = entry{cfg: start, count: 1}

	for row := 0; row < g.Height(); row++ {
		targetDegrees, next := g.RowSetup(row)

		keys := make([]string, 0, len(cur))
		for k := range cur {
			keys = append(keys, k)
		}

		shards := workers
		if shards > len(keys) {
			shards = len(keys)
		}
		if shards < 1 {
			shards = 1
		}

		partials := make([]map[string]entry, shards)

		eg, ctx := errgroup.WithContext(context.Background())
		eg.SetLimit(workers)

		for s := 0; s < shards; s++ {
			s := s
			eg.Go(func() error {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}

				local := make(map[string]entry)
				scratch := transition.NewScratch(width)
				for i := s; i < len(keys); i += shards {
					live := cur[keys[i]]
					n := live.count
					transition.ForEachSuccessor(scratch, live.cfg, targetDegrees, next, func(out configuration.Config) {
						key := out.Key()
						e := local[key]
						e.cfg = out
						e.count += n
						local[key] = e
					})
				}
				partials[s] = local

				return nil
			})
		}

		if err := eg.Wait(); err != nil {
			return 0, err
		}

		merged := make(map[string]entry, len(keys))
		for _, p := range partials {
			for k, e := range p {
				m := merged[k]
				m.cfg = e.cfg
				m.count += e.count
				merged[k] = m
			}
		}
		cur = merged

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
