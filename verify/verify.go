package verify

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/hamilton/core"
	"github.com/katalvlaran/hamilton/grid"
)

// PathRecord is a concrete, ordered Hamiltonian path through a Grid: one
// entry per visited cell, start to end. Used only by Check/Render, never
// by the counting driver.
type PathRecord []grid.Coord

// Check reports whether path is a valid Hamiltonian path through g: it
// must start at g.Start, end at g.End, visit every non-blocked cell
// exactly once, and step only between grid-adjacent cells. On the first
// violation found, Check returns false and a single explanatory reason.
func Check(g *grid.Grid, path PathRecord) (bool, []string) {
	if len(path) == 0 {
		return false, []string{ErrEmptyPath.Error()}
	}
	if path[0] != g.Start() {
		return false, []string{fmt.Sprintf("does not start at starting cell %v", g.Start())}
	}
	if path[len(path)-1] != g.End() {
		return false, []string{fmt.Sprintf("does not end at ending cell %v", g.End())}
	}

	wantCount := 0
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			if g.Code(row, col) != grid.Blocked {
				wantCount++
			}
		}
	}
	if len(path) != wantCount {
		return false, []string{fmt.Sprintf("not long enough to cover all cells: got %d, want %d", len(path), wantCount)}
	}

	seen := make(map[grid.Coord]bool, len(path))
	for _, c := range path {
		if g.Code(c.Row, c.Col) == grid.Blocked {
			return false, []string{fmt.Sprintf("visits blocked cell %v", c)}
		}
		seen[c] = true
	}
	if len(seen) != wantCount {
		return false, []string{"does not cover all cells (revisits at least one)"}
	}

	adj := g.Adjacency()
	for i := 1; i < len(path); i++ {
		u, v := path[i-1], path[i]
		if !adj.HasEdge(grid.CellID(u.Row, u.Col), grid.CellID(v.Row, v.Col)) {
			return false, []string{fmt.Sprintf("edge %v->%v does not exist", u, v)}
		}
	}

	return true, nil
}

// Render draws path over g as two text lines per row: a "+-+-+" line for
// horizontal connections and a "| |" line for vertical connections into
// the next row.
func Render(g *grid.Grid, path PathRecord) (string, error) {
	if len(path) == 0 {
		return "", ErrEmptyPath
	}

	pathEdges := core.NewGraph()
	for i := 1; i < len(path); i++ {
		u, v := path[i-1], path[i]
		_ = pathEdges.AddVertex(grid.CellID(u.Row, u.Col))
		_ = pathEdges.AddVertex(grid.CellID(v.Row, v.Col))
		_ = pathEdges.AddEdge(grid.CellID(u.Row, u.Col), grid.CellID(v.Row, v.Col))
	}

	var sb strings.Builder
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			if col+1 < g.Width() && pathEdges.HasEdge(grid.CellID(row, col), grid.CellID(row, col+1)) {
				sb.WriteString("+-")
			} else {
				sb.WriteString("+ ")
			}
		}
		sb.WriteString("+\n")

		for col := 0; col < g.Width(); col++ {
			if row+1 < g.Height() && pathEdges.HasEdge(grid.CellID(row, col), grid.CellID(row+1, col)) {
				sb.WriteString("| ")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteString("\n")
	}

	return sb.String(), nil
}
