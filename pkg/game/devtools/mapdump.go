// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"warrengen/pkg/engine/world"
	"warrengen/pkg/game/generator"
)

const mapDumpFilename = "map.txt"

// DumpInfo is the metadata written alongside a grid
type DumpInfo struct {
	Level     int
	Seed      byte
	Generator string
	Summary   generator.Summary
}

// DumpGrid writes a debug dump: metadata, legend, the full map, and a door
// list. Format is human-readable (sections, key: value).
func DumpGrid(w io.Writer, grid *world.Grid, info DumpInfo) error {
	if grid == nil {
		return fmt.Errorf("no grid")
	}

	ew := &errWriter{w: w}

	// --- Metadata ---
	ew.printf("=== MAP DUMP (level layout) ===\n\n")
	ew.printf("--- Metadata ---\n")
	ew.printf("level: %d\n", info.Level)
	ew.printf("seed: %d\n", info.Seed)
	ew.printf("generator: %s\n", info.Generator)
	ew.printf("grid_width: %d\n", grid.Width())
	ew.printf("grid_height: %d\n", grid.Height())
	ew.printf("render_width: %d\n", grid.RenderWidth())
	ew.printf("render_height: %d\n", grid.RenderHeight())
	ew.printf("coordinate_system: x,y (0-based, x=horizontal, y=vertical, y grows down)\n")
	ew.printf("rooms: %d\n", info.Summary.Leaves)
	ew.printf("tree_depth: %d\n", info.Summary.Depth)
	ew.printf("doors: %d\n", info.Summary.Doors)
	ew.printf("perimeter_doors_removed: %d\n", info.Summary.PerimeterDoors)
	ew.printf("room_groups: %d\n\n", info.Summary.Groups)

	// --- Legend ---
	ew.printf("--- Legend (cell symbols) ---\n")
	ew.printf(". = floor  # = wall  + = closed door  / = open door\n\n")

	// --- Map ---
	ew.printf("--- Map ---\n")
	ew.printf("%s\n", grid.String())

	// --- Doors ---
	ew.printf("--- Doors ---\n")
	for _, p := range grid.Doors() {
		door, _ := world.AsDoor(grid.At(p))
		ew.printf("  x: %d y: %d open: %v\n", p.X, p.Y, door.Open)
	}

	// --- Reachability ---
	ew.printf("\n--- Reachability ---\n")
	passable := 0
	grid.ForEachCell(func(x, y int, o world.Occupant) {
		if world.IsPassable(o) {
			passable++
		}
	})
	ew.printf("passable_cells: %d\n", passable)
	ew.printf("reachable_from_1_1: %d\n", grid.FloodFill(world.Pt(1, 1)))

	return ew.err
}

// DumpGridToFile writes DumpGrid output to map.txt in the working directory
// and returns its absolute path.
func DumpGridToFile(grid *world.Grid, info DumpInfo) (string, error) {
	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}

	// A failed dump leaves no partial map behind
	if err := DumpGrid(f, grid, info); err != nil {
		f.Close()
		os.Remove(absPath)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(absPath)
		return "", err
	}
	return absPath, nil
}

// errWriter remembers the first write error so callers check once
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
