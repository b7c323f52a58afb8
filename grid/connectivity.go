package grid

import (
	"strconv"

	"github.com/katalvlaran/hamilton/bfs"
	"github.com/katalvlaran/hamilton/core"
)

// cellID gives the grid cell (row, col) a stable core.Graph vertex ID.
func cellID(row, col int) string {
	return strconv.Itoa(row) + "," + strconv.Itoa(col)
}

// CellID gives the grid cell (row, col) a stable core.Graph vertex ID,
// shared by every package that builds a core.Graph over this grid.
func CellID(row, col int) string {
	return cellID(row, col)
}

// Adjacency builds the core.Graph of orthogonal adjacency between the
// grid's non-Blocked cells.
func (g *Grid) Adjacency() *core.Graph {
	adj := core.NewGraph()
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			if g.Code(row, col) == Blocked {
				continue
			}
			_ = adj.AddVertex(cellID(row, col))
		}
	}
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			if g.Code(row, col) == Blocked {
				continue
			}
			if col+1 < g.width && g.Code(row, col+1) != Blocked {
				_ = adj.AddEdge(cellID(row, col), cellID(row, col+1))
			}
			if row+1 < g.height && g.Code(row+1, col) != Blocked {
				_ = adj.AddEdge(cellID(row, col), cellID(row+1, col))
			}
		}
	}
	return adj
}

// Connected reports whether every non-Blocked cell is reachable from
// Start by orthogonal moves. A disconnected grid can never admit a
// Hamiltonian path, so callers can use this to short-circuit counting
// on obviously-impossible inputs instead of running the full row-by-row
// driver down to a zero result.
func (g *Grid) Connected() (bool, error) {
	open := 0
	for _, c := range g.codes {
		if c != Blocked {
			open++
		}
	}

	res, err := bfs.BFS(g.Adjacency(), cellID(g.start.Row, g.start.Col))
	if err != nil {
		return false, err
	}

	return len(res.Order) == open, nil
}
