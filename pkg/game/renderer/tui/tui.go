package tui

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"warrengen/pkg/engine/world"
	"warrengen/pkg/game/renderer"
)

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = gotext.Get

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorWall     color.Style
	colorDoor     color.Style
	colorDoorOpen color.Style
	colorFloor    color.Style
	colorSubtle   color.Style
	colorTitle    color.Style
	colorDenied   color.Style

	// Plain disables ANSI styling, for pipes and dumps
	Plain bool

	regexpStringFunctions *regexp.Regexp
}

// New creates a new TUI renderer
func New() *TUIRenderer {
	return &TUIRenderer{}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorWall = color.Style{color.FgGray}
	t.colorDoor = color.Style{color.FgYellow, color.OpBold}
	t.colorDoorOpen = color.Style{color.FgGreen}
	t.colorFloor = color.Style{color.FgDarkGray}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorTitle = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}

	t.regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:]+)}`)
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	if t.Plain {
		return text
	}
	switch style {
	case renderer.StyleWall:
		return t.colorWall.Sprint(text)
	case renderer.StyleDoor:
		return t.colorDoor.Sprint(text)
	case renderer.StyleDoorOpen:
		return t.colorDoorOpen.Sprint(text)
	case renderer.StyleFloor:
		return t.colorFloor.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleTitle:
		return t.colorTitle.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system: GT{KEY} translates,
// TITLE{text} and NUM{text} apply styles.
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)

	if t.regexpStringFunctions == nil {
		return ret
	}

	matches := t.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "TITLE":
			val = t.StyleText(operand, renderer.StyleTitle)
		case "NUM":
			val = t.StyleText(operand, renderer.StyleSubtle)
		default:
			val = t.StyleText(fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand), renderer.StyleDenied)
		}

		ret = strings.Replace(ret, match[0], val, 1)
	}

	return ret
}

// RenderGrid draws the viewport starting at origin. Runs of cells sharing a
// style are coloured together to keep escape sequences short.
func (t *TUIRenderer) RenderGrid(grid *world.Grid, origin world.Point) string {
	width, height := renderer.ViewportSize(grid)

	var b strings.Builder
	for y := origin.Y; y < origin.Y+height; y++ {
		var run strings.Builder
		runStyle := renderer.StyleNormal

		for x := origin.X; x < origin.X+width; x++ {
			glyph, style := renderer.CellGlyph(grid, x, y)
			if style != runStyle && run.Len() > 0 {
				b.WriteString(t.StyleText(run.String(), runStyle))
				run.Reset()
			}
			runStyle = style
			run.WriteRune(glyph)
		}
		b.WriteString(t.StyleText(run.String(), runStyle))
		b.WriteByte('\n')
	}
	return b.String()
}
