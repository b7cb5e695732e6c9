package devtools

import (
	"fmt"
	"html"
	"os"
	"strings"
	"time"

	"warrengen/pkg/engine/world"
	"warrengen/pkg/game/renderer"
)

// styleClasses maps renderer styles to the CSS classes below
var styleClasses = map[renderer.TextStyle]string{
	renderer.StyleWall:     "wall",
	renderer.StyleDoor:     "door-closed",
	renderer.StyleDoorOpen: "door-open",
	renderer.StyleFloor:    "floor",
	renderer.StyleNormal:   "void",
}

// GridHTML renders the whole grid as a standalone HTML page
func GridHTML(grid *world.Grid, title string) string {
	var page strings.Builder

	page.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>` + html.EscapeString(title) + `</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row {
            white-space: pre;
            line-height: 1.2;
            font-size: 16px;
        }
        .wall { color: #666; }
        .floor { color: #444; }
        .door-closed { color: #ffff00; font-weight: bold; }
        .door-open { color: #00aa00; }
        .void { color: #1a1a2e; }
    </style>
</head>
<body>
`)

	page.WriteString(fmt.Sprintf(`    <div class="header">%s (%dx%d)</div>`+"\n",
		html.EscapeString(title), grid.Width(), grid.Height()))
	page.WriteString(`    <div class="map-container">` + "\n")

	for y := 0; y < grid.Height(); y++ {
		page.WriteString(`        <div class="map-row">`)
		for x := 0; x < grid.Width(); x++ {
			glyph, style := renderer.CellGlyph(grid, x, y)
			class, ok := styleClasses[style]
			if !ok {
				class = "void"
			}
			page.WriteString(fmt.Sprintf(`<span class="%s">%s</span>`, class, html.EscapeString(string(glyph))))
		}
		page.WriteString("</div>\n")
	}

	page.WriteString("    </div>\n</body>\n</html>\n")
	return page.String()
}

// SaveScreenshotHTML writes GridHTML to a timestamped file and returns its name
func SaveScreenshotHTML(grid *world.Grid, title string) (string, error) {
	timestamp := time.Now().Format("20060102-150405")
	filename := fmt.Sprintf("screenshot-%s.html", timestamp)

	if err := os.WriteFile(filename, []byte(GridHTML(grid, title)), 0o644); err != nil {
		return "", err
	}
	return filename, nil
}
