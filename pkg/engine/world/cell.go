// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

import "fmt"

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p moved one step in dir.
func (p Point) Add(dir Direction) Point {
	dx, dy := dir.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Occupant is whatever stands in a grid cell. A nil Occupant is open floor.
// Games may add their own occupant types (players, monsters, items).
type Occupant interface {
	// ConnectsToWall reports whether renderers should join this occupant
	// visually to neighbouring walls.
	ConnectsToWall() bool
	// Symbol is the single-rune form used by dumps and tests.
	Symbol() rune
}

// Wall is a solid, impassable cell.
type Wall struct{}

// ConnectsToWall is always true for walls
func (Wall) ConnectsToWall() bool {
	return true
}

// Symbol returns the dump symbol for a wall
func (Wall) Symbol() rune {
	return '#'
}

// ConnectsToWall reports whether o joins visually to walls. Empty cells do not.
func ConnectsToWall(o Occupant) bool {
	return o != nil && o.ConnectsToWall()
}

// IsWall returns true if o is a wall
func IsWall(o Occupant) bool {
	_, ok := o.(Wall)
	return ok
}

// AsDoor returns the door in o, if any.
func AsDoor(o Occupant) (*Door, bool) {
	d, ok := o.(*Door)
	return d, ok && d != nil
}

// IsPassable reports whether a walker can enter a cell holding o: open floor
// or any door.
func IsPassable(o Occupant) bool {
	if o == nil {
		return true
	}
	_, isDoor := AsDoor(o)
	return isDoor
}

// symbolOf returns the dump symbol for o, '.' for floor.
func symbolOf(o Occupant) rune {
	if o == nil {
		return '.'
	}
	return o.Symbol()
}
