package renderer

import (
	"warrengen/pkg/engine/world"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleWall
	StyleDoor
	StyleDoorOpen
	StyleFloor
	StyleSubtle
	StyleTitle
	StyleDenied
)

// Renderer defines the interface for level rendering backends
type Renderer interface {
	// Init initializes the renderer (colors, fonts, etc.)
	Init()

	// RenderGrid draws the part of the grid visible from origin, sized by the
	// grid's render dimensions, one line per row.
	RenderGrid(grid *world.Grid, origin world.Point) string

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// RenderGrid renders the grid with the current renderer, or plain symbols
// when none is set
func RenderGrid(grid *world.Grid, origin world.Point) string {
	if Current != nil {
		return Current.RenderGrid(grid, origin)
	}
	return grid.String()
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}

// FormatText formats a message with markup
func FormatText(msg string, args ...any) string {
	if Current != nil {
		return Current.FormatText(msg, args...)
	}
	return msg
}
