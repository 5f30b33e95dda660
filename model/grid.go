package model

import (
	"errors"
	"fmt"
	"math"

	"github.com/harbdog/raycaster-go/geom"
)

// -- grid

// Cell is a single maze tile. Open is walkable, any other byte is a wall whose
// value selects its material.
type Cell byte

const (
	Open Cell = ' '
	Exit Cell = 'E'
)

var (
	ErrEmptyGrid  = errors.New("grid has no cells")
	ErrRaggedGrid = errors.New("grid rows differ in length")
	ErrOpenBorder = errors.New("grid border must be solid")
)

func (c Cell) IsWall() bool {
	return c != Open
}

type Grid struct {
	cells    [][]Cell
	cellSize float64
}

// NewGrid builds a grid from rows of cells. Every row must have the same width
// and the outer border must be wall, so that rays can never leave the grid.
func NewGrid(rows []string, cellSize float64) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if cellSize <= 0 {
		return nil, fmt.Errorf("invalid cell size %v", cellSize)
	}

	width := len(rows[0])
	cells := make([][]Cell, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(row), width, ErrRaggedGrid)
		}
		cells[y] = make([]Cell, width)
		for x := 0; x < width; x++ {
			cells[y][x] = Cell(row[x])
		}
	}

	g := &Grid{cells: cells, cellSize: cellSize}
	for x := 0; x < width; x++ {
		if !cells[0][x].IsWall() || !cells[len(rows)-1][x].IsWall() {
			return nil, fmt.Errorf("column %d: %w", x, ErrOpenBorder)
		}
	}
	for y := range cells {
		if !cells[y][0].IsWall() || !cells[y][width-1].IsWall() {
			return nil, fmt.Errorf("row %d: %w", y, ErrOpenBorder)
		}
	}

	return g, nil
}

func (g *Grid) Width() int        { return len(g.cells[0]) }
func (g *Grid) Height() int       { return len(g.cells) }
func (g *Grid) CellSize() float64 { return g.cellSize }

func (g *Grid) InBounds(gx, gy int) bool {
	return gx >= 0 && gy >= 0 && gy < len(g.cells) && gx < len(g.cells[gy])
}

// At returns the cell at grid coordinates, false when outside the grid.
func (g *Grid) At(gx, gy int) (Cell, bool) {
	if !g.InBounds(gx, gy) {
		return Open, false
	}
	return g.cells[gy][gx], true
}

// IsWall treats anything outside the grid as solid.
func (g *Grid) IsWall(gx, gy int) bool {
	c, ok := g.At(gx, gy)
	return !ok || c.IsWall()
}

// CellAtWorld returns the cell containing the world point.
func (g *Grid) CellAtWorld(x, y float64) (Cell, bool) {
	return g.At(WorldToGrid(x, y, g.cellSize))
}

// IsWalkable reports whether a world point lies on an open cell. Points outside
// the grid are never walkable.
func (g *Grid) IsWalkable(x, y float64) bool {
	c, ok := g.CellAtWorld(x, y)
	return ok && c == Open
}

// OpenCells lists the grid coordinates of every open cell, row by row.
func (g *Grid) OpenCells() [][2]int {
	open := [][2]int{}
	for y, row := range g.cells {
		for x, c := range row {
			if c == Open {
				open = append(open, [2]int{x, y})
			}
		}
	}
	return open
}

// WallNear reports whether any wall lies within radius cells (square
// neighbourhood) of the given cell.
func (g *Grid) WallNear(gx, gy, radius int) bool {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if c, ok := g.At(gx+dx, gy+dy); ok && c.IsWall() {
				return true
			}
		}
	}
	return false
}

// Rows returns a copy of the grid as strings.
func (g *Grid) Rows() []string {
	rows := make([]string, len(g.cells))
	for y, row := range g.cells {
		b := make([]byte, len(row))
		for x, c := range row {
			b[x] = byte(c)
		}
		rows[y] = string(b)
	}
	return rows
}

// WorldToGrid converts world coordinates to grid coordinates. It floors rather
// than truncating so negative coordinates land outside the grid instead of on
// row or column zero.
func WorldToGrid(x, y, cellSize float64) (int, int) {
	return int(math.Floor(x / cellSize)), int(math.Floor(y / cellSize))
}

// GridToWorld returns the world position of the centre of a cell.
func GridToWorld(gx, gy int, cellSize float64) geom.Vector2 {
	return geom.Vector2{
		X: (float64(gx) + 0.5) * cellSize,
		Y: (float64(gy) + 0.5) * cellSize,
	}
}
