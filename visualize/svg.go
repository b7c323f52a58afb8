package visualize

import (
	"fmt"
	"io"

	"github.com/ajstarks/svgo"

	"github.com/katalvlaran/hamilton/grid"
	"github.com/katalvlaran/hamilton/verify"
)

const (
	cellSize   = 48
	margin     = 16
	dotRadius  = 6
	lineWidth  = 3
	fontSize   = 11
	colorOpen  = "#f4f4f4"
	colorBlock = "#333333"
	colorEdge  = "#2f7bd1"
	colorEnds  = "#d12f2f"
	colorText  = "#888888"
)

// ExportSVG draws g's cells and path as an SVG image: blocked cells are
// filled dark squares, the start/end cells are marked with red dots, and
// every step of path is drawn as a connecting line.
func ExportSVG(w io.Writer, g *grid.Grid, path verify.PathRecord) error {
	width := margin*2 + g.Width()*cellSize
	height := margin*2 + g.Height()*cellSize

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:white")

	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			x, y := margin+col*cellSize, margin+row*cellSize
			fill := colorOpen
			if g.Code(row, col) == grid.Blocked {
				fill = colorBlock
			}
			canvas.Rect(x, y, cellSize, cellSize, fmt.Sprintf("fill:%s;stroke:#999999;stroke-width:1", fill))
		}
	}

	for i := 1; i < len(path); i++ {
		u, v := path[i-1], path[i]
		x1, y1 := margin+u.Col*cellSize+cellSize/2, margin+u.Row*cellSize+cellSize/2
		x2, y2 := margin+v.Col*cellSize+cellSize/2, margin+v.Row*cellSize+cellSize/2
		canvas.Line(x1, y1, x2, y2, fmt.Sprintf("stroke:%s;stroke-width:%d", colorEdge, lineWidth))
	}

	for _, c := range []grid.Coord{g.Start(), g.End()} {
		cx, cy := margin+c.Col*cellSize+cellSize/2, margin+c.Row*cellSize+cellSize/2
		canvas.Circle(cx, cy, dotRadius, fmt.Sprintf("fill:%s", colorEnds))
	}

	canvas.Text(margin, height-4, fmt.Sprintf("%d x %d grid, %d-step path", g.Width(), g.Height(), len(path)),
		fmt.Sprintf("fill:%s;font-size:%dpx;font-family:monospace", colorText, fontSize))

	canvas.End()

	return nil
}
