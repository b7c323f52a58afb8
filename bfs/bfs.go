// Package bfs runs breadth-first reachability search over a core.Graph.
//
// It answers exactly the question grid.Grid.Connected needs — which
// vertices are reachable from a start vertex — and nothing more: no
// depth limiting, hooks, or weighted-edge handling, since the grid
// adjacency graph it runs over is always unweighted.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hamilton/core"
)

// ErrGraphNil is returned when BFS is called with a nil graph.
var ErrGraphNil = errors.New("bfs: graph is nil")

// ErrStartVertexNotFound is returned when the start id is absent from g.
var ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

// Result holds the vertices reachable from BFS's start vertex, in the
// order they were visited.
type Result struct {
	Order []string
}

// BFS explores g breadth-first from startID and returns every vertex
// reachable from it.
func BFS(g *core.Graph, startID string) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	visited := map[string]bool{startID: true}
	queue := []string{startID}
	order := make([]string, 0, len(queue))

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, id)

		neighbors, err := g.NeighborIDs(id)
		if err != nil {
			return nil, fmt.Errorf("bfs: neighbors of %q: %w", id, err)
		}
		for _, n := range neighbors {
			if !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}

	return &Result{Order: order}, nil
}
