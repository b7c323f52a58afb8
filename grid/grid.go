package grid

// CellCode is the raw per-cell code read from a grid file.
type CellCode int

const (
	// Open is an interior cell requiring target degree 2.
	Open CellCode = iota
	// Blocked is excluded from the grid graph entirely (target degree 0).
	Blocked
	// Start is the Hamiltonian path's first cell (target degree 1).
	Start
	// End is the Hamiltonian path's last cell (target degree 1).
	End
)

// Coord is a (row, col) cell position, row increasing downward.
type Coord struct {
	Row, Col int
}

// Neighbors records, for one cell, which of its two forward-or-downward
// moves are available: Forward is the same-row right neighbor (row,
// col+1); Down is the next-row same-column neighbor (row+1, col). Each is
// false when that neighbor is off the grid or blocked, and both are false
// for a blocked cell.
type Neighbors struct {
	Forward bool
	Down    bool
}

// Grid is an immutable W×H rectangle of CellCodes with exactly one Start
// and one End cell. Deep-copied on construction so callers can't mutate
// the codes slice out from under a Grid in use.
type Grid struct {
	width, height int
	codes         []CellCode // row-major: codes[row*width+col]
	start, end    Coord
}

// NewGrid builds a Grid from a flat, row-major slice of codes (position k
// maps to cell (row, col) = (k/width, k%width), per the external grid file
// format). Returns ErrEmptyGrid, ErrNonRectangular, or ErrEndpointCount.
func NewGrid(width, height int, codes []CellCode) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	if len(codes) != width*height {
		return nil, ErrNonRectangular
	}

	cp := make([]CellCode, len(codes))
	copy(cp, codes)

	var starts, ends int
	var start, end Coord
	for i, c := range cp {
		row, col := i/width, i%width
		switch c {
		case Start:
			starts++
			start = Coord{Row: row, Col: col}
		case End:
			ends++
			end = Coord{Row: row, Col: col}
		}
	}
	if starts != 1 || ends != 1 {
		return nil, ErrEndpointCount
	}

	return &Grid{width: width, height: height, codes: cp, start: start, end: end}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Start returns the unique start cell.
func (g *Grid) Start() Coord { return g.start }

// End returns the unique end cell.
func (g *Grid) End() Coord { return g.end }

// InBounds reports whether (row, col) lies within the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// Code returns the raw cell code at (row, col).
func (g *Grid) Code(row, col int) CellCode {
	return g.codes[row*g.width+col]
}

// TargetDegree returns the required path-incidence count of (row, col):
// 2 for Open, 1 for Start/End, 0 for Blocked.
func (g *Grid) TargetDegree(row, col int) int {
	switch g.Code(row, col) {
	case Open:
		return 2
	case Start, End:
		return 1
	default: // Blocked
		return 0
	}
}

// RowSetup derives the per-column target degree and forward-or-down
// neighbor availability for row, grounded on configs.py's row_setup. A
// blocked cell contributes target degree 0 and no neighbors in either
// direction.
func (g *Grid) RowSetup(row int) (targetDegrees []int, next []Neighbors) {
	targetDegrees = make([]int, g.width)
	next = make([]Neighbors, g.width)

	for col := 0; col < g.width; col++ {
		if g.Code(row, col) == Blocked {
			continue
		}
		targetDegrees[col] = g.TargetDegree(row, col)

		var n Neighbors
		if col+1 < g.width && g.Code(row, col+1) != Blocked {
			n.Forward = true
		}
		if row+1 < g.height && g.Code(row+1, col) != Blocked {
			n.Down = true
		}
		next[col] = n
	}

	return targetDegrees, next
}
