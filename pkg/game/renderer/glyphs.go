// Package renderer turns generated grids into glyphs. It only reads the grid:
// each cell's occupant plus whether its neighbours connect to walls.
package renderer

import (
	"warrengen/pkg/engine/world"
)

// Icons for non-wall cells
const (
	IconFloor      = '·'
	IconVoid       = ' '
	IconDoorClosed = '▣'
	IconDoorOpen   = '□'
	IconUnknown    = '?'
)

// wallGlyphs maps a WallMask (Up=1, Right=2, Down=4, Left=8) to a box-drawing rune
var wallGlyphs = [16]rune{
	'■', // isolated
	'│', // up
	'─', // right
	'└', // up right
	'│', // down
	'│', // up down
	'┌', // right down
	'├', // up right down
	'─', // left
	'┘', // up left
	'─', // right left
	'┴', // up right left
	'┐', // down left
	'┤', // up down left
	'┬', // right down left
	'┼', // all
}

// WallGlyph returns the box-drawing rune for a wall with the given connections
func WallGlyph(mask world.WallMask) rune {
	return wallGlyphs[mask&0x0f]
}

// CellGlyph picks the rune and style for one cell. Cells outside the grid are void.
func CellGlyph(grid *world.Grid, x, y int) (rune, TextStyle) {
	if !grid.IsValidPosition(x, y) {
		return IconVoid, StyleNormal
	}

	o := grid.Get(x, y)
	switch {
	case o == nil:
		return IconFloor, StyleFloor
	case world.IsWall(o):
		return WallGlyph(grid.WallMask(x, y)), StyleWall
	}

	if door, ok := world.AsDoor(o); ok {
		if door.Open {
			return IconDoorOpen, StyleDoorOpen
		}
		return IconDoorClosed, StyleDoor
	}
	return IconUnknown, StyleNormal
}

// ViewportSize returns the render size clamped to the grid
func ViewportSize(grid *world.Grid) (width, height int) {
	width = min(max(grid.RenderWidth(), 1), grid.Width())
	height = min(max(grid.RenderHeight(), 1), grid.Height())
	return width, height
}

// CenteredOrigin returns the top-left cell of a viewport centred on focus,
// kept inside the grid.
func CenteredOrigin(grid *world.Grid, focus world.Point) world.Point {
	width, height := ViewportSize(grid)
	x := min(max(focus.X-width/2, 0), grid.Width()-width)
	y := min(max(focus.Y-height/2, 0), grid.Height()-height)
	return world.Pt(x, y)
}
