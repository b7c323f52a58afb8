package bench

import (
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/hamilton/grid"
	"github.com/katalvlaran/hamilton/pathcount"
)

// Report summarizes iterations timed runs of the counting driver over one
// grid, with mean/standard-deviation statistics across the samples.
type Report struct {
	// Count is the Hamiltonian path count, computed once.
	Count uint64
	// Iterations is the number of timed repetitions.
	Iterations int
	// TotalSeconds is the sum of all per-iteration durations.
	TotalSeconds float64
	// MeanSeconds is the arithmetic mean of per-iteration durations.
	MeanSeconds float64
	// StdDevSeconds is the sample standard deviation of per-iteration
	// durations (0 when Iterations == 1).
	StdDevSeconds float64
}

// Run times pathcount.Sequential.Count over g, repeated iterations times,
// and returns a Report. The count itself is computed once; only repeated
// timing runs measure duration, matching the ported time() function's
// "benchmark the algorithm" contract.
func Run(g *grid.Grid, iterations int) (Report, error) {
	if iterations <= 0 {
		return Report{}, ErrNoIterations
	}

	driver := pathcount.NewSequential(pathcount.DefaultOptions())

	count, err := driver.Count(g)
	if err != nil {
		return Report{}, err
	}

	samples := make([]float64, iterations)
	for i := 0; i < iterations; i++ {
		start := time.Now()
		if _, err := driver.Count(g); err != nil {
			return Report{}, err
		}
		samples[i] = time.Since(start).Seconds()
	}

	var total float64
	for _, s := range samples {
		total += s
	}

	mean, stddev := stat.MeanStdDev(samples, nil)
	if iterations == 1 {
		stddev = 0
	}

	return Report{
		Count:         count,
		Iterations:    iterations,
		TotalSeconds:  total,
		MeanSeconds:   mean,
		StdDevSeconds: stddev,
	}, nil
}
