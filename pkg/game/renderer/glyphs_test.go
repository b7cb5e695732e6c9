package renderer

import (
	"testing"

	"warrengen/pkg/engine/world"
)

func TestWallGlyphCorners(t *testing.T) {
	g := world.NewGrid(5, 5, 5, 5)
	g.MakeRoom(world.Pt(0, 0), world.Pt(4, 4))
	g.Set(2, 0, world.NewDoor())

	cases := []struct {
		x, y int
		want rune
	}{
		{0, 0, '┌'},
		{4, 0, '┐'},
		{0, 4, '└'},
		{4, 4, '┘'},
		{1, 0, '─'}, // closed door keeps the line joined
		{0, 2, '│'},
	}
	for _, tc := range cases {
		if got, style := CellGlyph(g, tc.x, tc.y); got != tc.want || style != StyleWall {
			t.Errorf("CellGlyph(%d,%d) = %q/%v, want %q/wall", tc.x, tc.y, got, style, tc.want)
		}
	}
}

func TestOpenDoorBreaksWallLine(t *testing.T) {
	g := world.NewGrid(5, 5, 5, 5)
	g.MakeRoom(world.Pt(0, 0), world.Pt(4, 4))
	g.Set(2, 0, &world.Door{Open: true})

	if got, _ := CellGlyph(g, 1, 0); got != '─' {
		t.Errorf("wall beside open door = %q, want '─' (left neighbour still joins)", got)
	}
	if got, _ := CellGlyph(g, 3, 0); got != '─' {
		t.Errorf("wall beside open door = %q, want '─'", got)
	}
	if got, style := CellGlyph(g, 2, 0); got != IconDoorOpen || style != StyleDoorOpen {
		t.Errorf("open door glyph = %q/%v", got, style)
	}
}

func TestCellGlyphFloorAndVoid(t *testing.T) {
	g := world.NewGrid(3, 3, 3, 3)
	if got, style := CellGlyph(g, 1, 1); got != IconFloor || style != StyleFloor {
		t.Errorf("floor glyph = %q/%v", got, style)
	}
	if got, _ := CellGlyph(g, -1, 0); got != IconVoid {
		t.Errorf("out of bounds glyph = %q, want void", got)
	}
}

func TestCenteredOriginClamps(t *testing.T) {
	g := world.NewGrid(50, 30, 20, 10)
	cases := []struct {
		focus, want world.Point
	}{
		{world.Pt(0, 0), world.Pt(0, 0)},
		{world.Pt(25, 15), world.Pt(15, 10)},
		{world.Pt(49, 29), world.Pt(30, 20)},
	}
	for _, tc := range cases {
		if got := CenteredOrigin(g, tc.focus); got != tc.want {
			t.Errorf("CenteredOrigin(%v) = %v, want %v", tc.focus, got, tc.want)
		}
	}

	small := world.NewGrid(5, 5, 80, 24)
	if w, h := ViewportSize(small); w != 5 || h != 5 {
		t.Errorf("ViewportSize = %dx%d, want clamped 5x5", w, h)
	}
}
