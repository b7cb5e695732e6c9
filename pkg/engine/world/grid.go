package world

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

// ErrPerimeterDoor is reported by Validate when a door sits on the outer ring.
var ErrPerimeterDoor = errors.New("door on grid perimeter")

// WallMask is a set of directions, one bit per Direction.
type WallMask uint8

// Has reports whether dir is in the mask
func (m WallMask) Has(dir Direction) bool {
	return m&dir.Bit() != 0
}

// Grid is the level map: a row-major array of optional occupants plus the
// viewport size renderers should use when drawing it.
type Grid struct {
	cells        []Occupant
	width        int
	height       int
	renderWidth  int
	renderHeight int
}

// NewGrid allocates an empty (all floor) grid
func NewGrid(width, height, renderWidth, renderHeight int) *Grid {
	if width <= 0 || height <= 0 {
		panic("Grid dimensions must be positive")
	}
	return &Grid{
		cells:        make([]Occupant, width*height),
		width:        width,
		height:       height,
		renderWidth:  renderWidth,
		renderHeight: renderHeight,
	}
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.height
}

// RenderWidth returns the viewport width requested at creation
func (g *Grid) RenderWidth() int {
	return g.renderWidth
}

// RenderHeight returns the viewport height requested at creation
func (g *Grid) RenderHeight() int {
	return g.renderHeight
}

// IsValidPosition checks if an x/y position is within grid bounds
func (g *Grid) IsValidPosition(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsOnPerimeter checks if a position is on the outermost ring of the grid
func (g *Grid) IsOnPerimeter(x, y int) bool {
	if !g.IsValidPosition(x, y) {
		return false
	}
	return x == 0 || y == 0 || x == g.width-1 || y == g.height-1
}

func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// Get returns the occupant at x/y, or nil for floor and out-of-bounds cells
func (g *Grid) Get(x, y int) Occupant {
	if !g.IsValidPosition(x, y) {
		return nil
	}
	return g.cells[g.index(x, y)]
}

// At is Get addressed by Point
func (g *Grid) At(p Point) Occupant {
	return g.Get(p.X, p.Y)
}

// Set places o at x/y, replacing what was there. Passing nil clears the cell.
// Returns false if out of bounds.
func (g *Grid) Set(x, y int, o Occupant) bool {
	if !g.IsValidPosition(x, y) {
		return false
	}
	g.cells[g.index(x, y)] = o
	return true
}

// Clear empties the cell at x/y. Returns false if out of bounds.
func (g *Grid) Clear(x, y int) bool {
	return g.Set(x, y, nil)
}

// Neighbor returns the occupant one step from x/y in dir
func (g *Grid) Neighbor(x, y int, dir Direction) Occupant {
	dx, dy := dir.Delta()
	return g.Get(x+dx, y+dy)
}

// MakeRoom draws a one-cell-thick wall outline on the rectangle spanned by the
// two corners (inclusive). The interior is left untouched.
func (g *Grid) MakeRoom(corner1, corner2 Point) {
	minX, maxX := min(corner1.X, corner2.X), max(corner1.X, corner2.X)
	minY, maxY := min(corner1.Y, corner2.Y), max(corner1.Y, corner2.Y)

	for x := minX; x <= maxX; x++ {
		g.Set(x, minY, Wall{})
		g.Set(x, maxY, Wall{})
	}
	for y := minY; y <= maxY; y++ {
		g.Set(minX, y, Wall{})
		g.Set(maxX, y, Wall{})
	}
}

// WallMask returns the directions in which the cell at x/y has a neighbour
// that connects to walls. Cells outside the grid never connect.
func (g *Grid) WallMask(x, y int) WallMask {
	var mask WallMask
	for _, dir := range AllDirections() {
		if ConnectsToWall(g.Neighbor(x, y, dir)) {
			mask |= dir.Bit()
		}
	}
	return mask
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(x, y int, o Occupant)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(x, y, g.cells[g.index(x, y)])
		}
	}
}

// ForEachPerimeterCell visits every cell of the outermost ring exactly once
func (g *Grid) ForEachPerimeterCell(fn func(x, y int, o Occupant)) {
	g.ForEachCell(func(x, y int, o Occupant) {
		if g.IsOnPerimeter(x, y) {
			fn(x, y, o)
		}
	})
}

// Doors returns the positions of every door in row-major order
func (g *Grid) Doors() []Point {
	var doors []Point
	g.ForEachCell(func(x, y int, o Occupant) {
		if _, ok := AsDoor(o); ok {
			doors = append(doors, Pt(x, y))
		}
	})
	return doors
}

// FloodFill counts the passable cells reachable from start by orthogonal steps.
// Returns 0 when start is out of bounds or blocked.
func (g *Grid) FloodFill(start Point) int {
	if !g.IsValidPosition(start.X, start.Y) || !IsPassable(g.At(start)) {
		return 0
	}

	visited := mapset.New[Point]()
	q := queue.New[Point]()
	visited.Put(start)
	q.Enqueue(start)

	for !q.Empty() {
		current := q.Dequeue()
		for _, dir := range AllDirections() {
			next := current.Add(dir)
			if !g.IsValidPosition(next.X, next.Y) || visited.Has(next) {
				continue
			}
			if !IsPassable(g.At(next)) {
				continue
			}
			visited.Put(next)
			q.Enqueue(next)
		}
	}

	return visited.Size()
}

// Equal reports whether both grids have the same size and cell contents.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.width != other.width || g.height != other.height ||
		g.renderWidth != other.renderWidth || g.renderHeight != other.renderHeight {
		return false
	}
	for i := range g.cells {
		if symbolOf(g.cells[i]) != symbolOf(other.cells[i]) {
			return false
		}
	}
	return true
}

// Validate checks the grid for structural issues
func (g *Grid) Validate() error {
	if g.width <= 0 || g.height <= 0 || len(g.cells) != g.width*g.height {
		return fmt.Errorf("grid has invalid dimensions %dx%d", g.width, g.height)
	}

	var err error
	g.ForEachPerimeterCell(func(x, y int, o Occupant) {
		if _, ok := AsDoor(o); ok && err == nil {
			err = fmt.Errorf("%w at %v", ErrPerimeterDoor, Pt(x, y))
		}
	})
	return err
}

// String renders the grid one row per line: '#' wall, '+' closed door,
// '/' open door, '.' floor.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			b.WriteRune(symbolOf(g.cells[g.index(x, y)]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
