package grid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Parse reads the grid file format from r: whitespace-separated
// non-negative integers, first "W H" then W*H per-cell codes in row-major
// order. Returns ErrBadCellCode for any code outside {0,1,2,3}, and the
// errors NewGrid returns for dimension or endpoint-count problems.
func Parse(r io.Reader) (*Grid, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	scanner.Split(bufio.ScanWords)

	nextInt := func() (int, bool) {
		if !scanner.Scan() {
			return 0, false
		}
		v, err := strconv.Atoi(scanner.Text())
		if err != nil {
			return 0, false
		}

		return v, true
	}

	width, ok := nextInt()
	if !ok {
		return nil, fmt.Errorf("%w: missing width", ErrNonRectangular)
	}
	height, ok := nextInt()
	if !ok {
		return nil, fmt.Errorf("%w: missing height", ErrNonRectangular)
	}
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}

	codes := make([]CellCode, width*height)
	for i := range codes {
		v, ok := nextInt()
		if !ok {
			return nil, fmt.Errorf("%w: got %d codes, want %d", ErrNonRectangular, i, width*height)
		}
		if v < int(Open) || v > int(End) {
			return nil, fmt.Errorf("%w: %d", ErrBadCellCode, v)
		}
		codes[i] = CellCode(v)
	}

	return NewGrid(width, height, codes)
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}
