package pathcount_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/katalvlaran/hamilton/grid"
	"github.com/katalvlaran/hamilton/pathcount"
)

// bruteForceCount enumerates every simple path from g's Start to its End
// cell by exhaustive backtracking over orthogonal moves, independent of
// the configuration/transition machinery under test.
func bruteForceCount(g *grid.Grid) uint64 {
	width, height := g.Width(), g.Height()
	visited := make([][]bool, height)
	for r := range visited {
		visited[r] = make([]bool, width)
	}

	open := 0
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			if g.Code(r, c) != grid.Blocked {
				open++
			}
		}
	}

	var count uint64
	var walk func(pos grid.Coord, visitedCount int)
	walk = func(pos grid.Coord, visitedCount int) {
		if pos == g.End() {
			if visitedCount == open {
				count++
			}
			return
		}

		deltas := [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
		for _, d := range deltas {
			nr, nc := pos.Row+d[0], pos.Col+d[1]
			if !g.InBounds(nr, nc) {
				continue
			}
			if g.Code(nr, nc) == grid.Blocked || visited[nr][nc] {
				continue
			}
			visited[nr][nc] = true
			walk(grid.Coord{Row: nr, Col: nc}, visitedCount+1)
			visited[nr][nc] = false
		}
	}

	visited[g.Start().Row][g.Start().Col] = true
	walk(g.Start(), 1)

	return count
}

// randomSmallGrid draws a small rectangular grid (capped to keep the
// brute-force oracle above fast) with random blocked cells and exactly
// one start and one end cell.
func randomSmallGrid(t *rapid.T) *grid.Grid {
	width := rapid.IntRange(1, 3).Draw(t, "width")
	height := rapid.IntRange(1, 3).Draw(t, "height")
	if width*height < 2 {
		height = 2
	}

	n := width * height
	start := rapid.IntRange(0, n-1).Draw(t, "start")
	end := rapid.IntRange(0, n-1).Draw(t, "end")
	for end == start {
		end = rapid.IntRange(0, n-1).Draw(t, "end_retry")
	}

	codes := make([]grid.CellCode, n)
	for i := range codes {
		if i == start {
			codes[i] = grid.Start
			continue
		}
		if i == end {
			codes[i] = grid.End
			continue
		}
		if rapid.Bool().Draw(t, "blocked") {
			codes[i] = grid.Blocked
		} else {
			codes[i] = grid.Open
		}
	}

	g, err := grid.NewGrid(width, height, codes)
	require.NoError(t, err)

	return g
}

// TestProperty_CountMatchesBruteForce covers invariant 5: the counting
// driver's final total equals the number of Hamiltonian paths found by
// brute-force enumeration, on small random grids.
func TestProperty_CountMatchesBruteForce(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := randomSmallGrid(t)

		want := bruteForceCount(g)

		got, err := pathcount.NewSequential(pathcount.DefaultOptions()).Count(g)
		require.NoError(t, err)
		require.Equal(t, want, got)

		gotParallel, err := pathcount.NewParallel(pathcount.Options{Workers: 2}).Count(g)
		require.NoError(t, err)
		require.Equal(t, want, gotParallel)
	})
}
