package bench_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hamilton/bench"
	"github.com/katalvlaran/hamilton/grid"
)

func smallGrid(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(strings.NewReader("2 2 2 3 0 0"))
	require.NoError(t, err)
	return g
}

func TestRun_ReportsCountAndStats(t *testing.T) {
	g := smallGrid(t)

	r, err := bench.Run(g, 5)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), r.Count)
	assert.Equal(t, 5, r.Iterations)
	assert.GreaterOrEqual(t, r.TotalSeconds, 0.0)
	assert.GreaterOrEqual(t, r.MeanSeconds, 0.0)
	assert.GreaterOrEqual(t, r.StdDevSeconds, 0.0)
}

func TestRun_SingleIterationHasZeroStdDev(t *testing.T) {
	g := smallGrid(t)

	r, err := bench.Run(g, 1)
	require.NoError(t, err)
	assert.Zero(t, r.StdDevSeconds)
}

func TestRun_RejectsNonPositiveIterations(t *testing.T) {
	g := smallGrid(t)

	_, err := bench.Run(g, 0)
	require.ErrorIs(t, err, bench.ErrNoIterations)

	_, err = bench.Run(g, -3)
	require.ErrorIs(t, err, bench.ErrNoIterations)
}

func TestHistory_RecordsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.sqlite")

	h, err := bench.OpenHistory(dbPath)
	require.NoError(t, err)
	defer h.Close()

	g := smallGrid(t)
	r, err := bench.Run(g, 2)
	require.NoError(t, err)

	require.NoError(t, h.Record(g.Width(), g.Height(), r))

	_, err = os.Stat(dbPath)
	require.NoError(t, err)
}
