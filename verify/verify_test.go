package verify_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hamilton/grid"
	"github.com/katalvlaran/hamilton/verify"
)

func twoByTwoAdjacent(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(strings.NewReader("2 2 2 0 3 0"))
	require.NoError(t, err)
	return g
}

func TestCheck_ValidPath(t *testing.T) {
	g := twoByTwoAdjacent(t)
	path := verify.PathRecord{
		{Row: 0, Col: 0},
		{Row: 0, Col: 1},
		{Row: 1, Col: 1},
		{Row: 1, Col: 0},
	}

	ok, reasons := verify.Check(g, path)
	assert.True(t, ok)
	assert.Empty(t, reasons)
}

func TestCheck_WrongStart(t *testing.T) {
	g := twoByTwoAdjacent(t)
	path := verify.PathRecord{
		{Row: 0, Col: 1},
		{Row: 0, Col: 0},
		{Row: 1, Col: 0},
		{Row: 1, Col: 1},
	}

	ok, reasons := verify.Check(g, path)
	assert.False(t, ok)
	require.Len(t, reasons, 1)
	assert.Contains(t, reasons[0], "starting cell")
}

func TestCheck_MissingCell(t *testing.T) {
	g := twoByTwoAdjacent(t)
	path := verify.PathRecord{
		{Row: 0, Col: 0},
		{Row: 0, Col: 1},
		{Row: 1, Col: 0},
	}

	ok, reasons := verify.Check(g, path)
	assert.False(t, ok)
	require.Len(t, reasons, 1)
	assert.Contains(t, reasons[0], "not long enough")
}

func TestCheck_NonAdjacentStep(t *testing.T) {
	g := twoByTwoAdjacent(t)
	path := verify.PathRecord{
		{Row: 0, Col: 0},
		{Row: 1, Col: 1}, // diagonal, not a real grid edge
		{Row: 0, Col: 1},
		{Row: 1, Col: 0},
	}

	ok, reasons := verify.Check(g, path)
	assert.False(t, ok)
	require.Len(t, reasons, 1)
	assert.Contains(t, reasons[0], "does not exist")
}

func TestCheck_EmptyPath(t *testing.T) {
	g := twoByTwoAdjacent(t)
	ok, reasons := verify.Check(g, nil)
	assert.False(t, ok)
	require.Len(t, reasons, 1)
}

func TestRender_ProducesPipesForValidPath(t *testing.T) {
	g := twoByTwoAdjacent(t)
	path := verify.PathRecord{
		{Row: 0, Col: 0},
		{Row: 0, Col: 1},
		{Row: 1, Col: 1},
		{Row: 1, Col: 0},
	}

	out, err := verify.Render(g, path)
	require.NoError(t, err)
	assert.Contains(t, out, "+-+")
	assert.Contains(t, out, "|")
}

func TestRender_EmptyPath(t *testing.T) {
	g := twoByTwoAdjacent(t)
	_, err := verify.Render(g, nil)
	require.ErrorIs(t, err, verify.ErrEmptyPath)
}
