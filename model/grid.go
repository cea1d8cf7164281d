package model

import (
	"math"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

const (
	cellDead  uint8 = 0
	cellAlive uint8 = 1
)

// neighborOffsets are the 8 compass directions as (row, col) deltas
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Grid is a fixed-size Game of Life board with hard edges.
// Cells are stored row-major, 0 for dead and 1 for alive.
// A Grid is not safe for concurrent use.
type Grid struct {
	rows  int
	cols  int
	cells []uint8
	next  []uint8 // scratch buffer for Advance
}

// NewGrid creates a rows x cols grid where every cell is independently alive
// with the given probability. The probability is clamped to [0, 1]. A nil
// source uses NewSource.
func NewGrid(rows, cols int, aliveProbability float64, src Source) (*Grid, error) {
	g, err := newEmptyGrid(rows, cols)
	if err != nil {
		return nil, errors.Wrap(err, "[NewGrid] invalid dimensions")
	}
	if src == nil {
		src = NewSource()
	}
	g.Randomize(aliveProbability, src)
	return g, nil
}

// NewBlankGrid creates a rows x cols grid with every cell dead
func NewBlankGrid(rows, cols int) (*Grid, error) {
	g, err := newEmptyGrid(rows, cols)
	if err != nil {
		return nil, errors.Wrap(err, "[NewBlankGrid] invalid dimensions")
	}
	return g, nil
}

func newEmptyGrid(rows, cols int) (*Grid, error) {
	if err := checkDimensions(rows, cols); err != nil {
		return nil, err
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]uint8, rows*cols),
		next:  make([]uint8, rows*cols),
	}, nil
}

func checkDimensions(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return errors.Errorf("grid must have positive dimensions, got %dx%d", rows, cols)
	}
	return nil
}

// ClampProbability limits p to [0, 1], mapping NaN to 0
func ClampProbability(p float64) float64 {
	if math.IsNaN(p) || p < 0 {
		return 0
	}
	return math.Min(p, 1)
}

// Rows returns the number of rows
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns
func (g *Grid) Cols() int {
	return g.cols
}

// index maps (row, col) to the flat cell index. Out-of-range coordinates are a
// programming error and panic.
func (g *Grid) index(row, col int) int {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		panic(errors.Errorf("cell (%d, %d) outside %dx%d grid", row, col, g.rows, g.cols))
	}
	return row*g.cols + col
}

// Contains reports whether (row, col) lies on the grid
func (g *Grid) Contains(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Cell returns the raw state of a cell, 0 or 1
func (g *Grid) Cell(row, col int) uint8 {
	return g.cells[g.index(row, col)]
}

// Alive reports whether the cell at (row, col) is alive
func (g *Grid) Alive(row, col int) bool {
	return g.Cell(row, col) == cellAlive
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(row, col int, alive bool) {
	idx := g.index(row, col)
	if alive {
		g.cells[idx] = cellAlive
	} else {
		g.cells[idx] = cellDead
	}
}

// Toggle flips the state of a single cell
func (g *Grid) Toggle(row, col int) {
	g.cells[g.index(row, col)] ^= cellAlive
}

// Cells exposes the current generation in row-major order. Callers must not
// modify the slice and must not retain it across Advance.
func (g *Grid) Cells() []uint8 {
	return g.cells
}

// NeighborCount counts live cells in the 8 surrounding positions. Positions
// off the grid count as dead; the grid does not wrap.
func (g *Grid) NeighborCount(row, col int) int {
	g.index(row, col)

	count := 0
	for _, off := range neighborOffsets {
		r, c := row+off[0], col+off[1]
		if r < 0 || r >= g.rows || c < 0 || c >= g.cols {
			continue
		}
		count += int(g.cells[r*g.cols+c])
	}
	return count
}

// Advance moves the grid to the next generation. Every next state is computed
// from the current generation before the buffers are swapped.
func (g *Grid) Advance() {
	for row := range g.rows {
		for col := range g.cols {
			idx := row*g.cols + col
			g.next[idx] = rules.NextState(g.NeighborCount(row, col), g.cells[idx])
		}
	}
	g.cells, g.next = g.next, g.cells
}

// Population returns the number of living cells
func (g *Grid) Population() (count int) {
	for _, c := range g.cells {
		count += int(c)
	}
	return
}

// Clear kills every cell
func (g *Grid) Clear() {
	clear(g.cells)
}

// Randomize replaces every cell with an independent draw that is alive with
// the given probability
func (g *Grid) Randomize(aliveProbability float64, src Source) {
	p := ClampProbability(aliveProbability)
	for i := range g.cells {
		if src.Float64() < p {
			g.cells[i] = cellAlive
		} else {
			g.cells[i] = cellDead
		}
	}
}

// reset resizes the grid in place, reusing buffers when they are large enough
func (g *Grid) reset(rows, cols int) {
	n := rows * cols
	if cap(g.cells) < n {
		g.cells = make([]uint8, n)
		g.next = make([]uint8, n)
	} else {
		g.cells = g.cells[:n]
		g.next = g.next[:n]
		clear(g.cells)
	}
	g.rows = rows
	g.cols = cols
}
