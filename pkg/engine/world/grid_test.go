package world

import (
	"errors"
	"strings"
	"testing"
)

func TestNewGridIsEmpty(t *testing.T) {
	g := NewGrid(4, 3, 80, 24)
	if g.Width() != 4 || g.Height() != 3 {
		t.Fatalf("size = %dx%d, want 4x3", g.Width(), g.Height())
	}
	if g.RenderWidth() != 80 || g.RenderHeight() != 24 {
		t.Errorf("render size = %dx%d, want 80x24", g.RenderWidth(), g.RenderHeight())
	}
	g.ForEachCell(func(x, y int, o Occupant) {
		if o != nil {
			t.Errorf("cell (%d,%d) = %v, want floor", x, y, o)
		}
	})
}

func TestNewGridPanicsOnBadDimensions(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewGrid(0, 5) did not panic")
		}
	}()
	NewGrid(0, 5, 1, 1)
}

func TestGetSetOutOfBounds(t *testing.T) {
	g := NewGrid(3, 3, 3, 3)
	if g.Set(3, 0, Wall{}) {
		t.Error("Set out of bounds returned true")
	}
	if g.Get(-1, 0) != nil {
		t.Error("Get out of bounds returned non-nil")
	}
	if !g.Set(1, 2, NewDoor()) {
		t.Fatal("Set in bounds returned false")
	}
	if _, ok := AsDoor(g.Get(1, 2)); !ok {
		t.Errorf("Get(1,2) = %v, want door", g.Get(1, 2))
	}
	g.Clear(1, 2)
	if g.Get(1, 2) != nil {
		t.Error("Clear left an occupant behind")
	}
}

func TestMakeRoomDrawsOutlineOnly(t *testing.T) {
	g := NewGrid(7, 6, 7, 6)
	g.MakeRoom(Pt(5, 4), Pt(1, 1))

	want := strings.Join([]string{
		".......",
		".#####.",
		".#...#.",
		".#...#.",
		".#####.",
		".......",
	}, "\n") + "\n"
	if got := g.String(); got != want {
		t.Errorf("MakeRoom outline:\n%s\nwant:\n%s", got, want)
	}
}

func TestConnectsToWall(t *testing.T) {
	cases := []struct {
		name string
		o    Occupant
		want bool
	}{
		{"floor", nil, false},
		{"wall", Wall{}, true},
		{"closed door", &Door{}, true},
		{"open door", &Door{Open: true}, false},
	}
	for _, tc := range cases {
		if got := ConnectsToWall(tc.o); got != tc.want {
			t.Errorf("%s: ConnectsToWall = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestWallMask(t *testing.T) {
	g := NewGrid(3, 3, 3, 3)
	g.Set(1, 0, Wall{})
	g.Set(0, 1, &Door{})
	g.Set(2, 1, &Door{Open: true})

	mask := g.WallMask(1, 1)
	if !mask.Has(Up) || !mask.Has(Left) {
		t.Errorf("mask %04b missing Up or Left", mask)
	}
	if mask.Has(Right) || mask.Has(Down) {
		t.Errorf("mask %04b has Right or Down", mask)
	}
	if corner := g.WallMask(0, 0); corner != Right.Bit()|Down.Bit() {
		t.Errorf("corner mask = %04b, want Right|Down", corner)
	}
}

func TestFloodFillStopsAtWalls(t *testing.T) {
	g := NewGrid(9, 5, 9, 5)
	g.MakeRoom(Pt(0, 0), Pt(4, 4))
	g.MakeRoom(Pt(4, 0), Pt(8, 4))

	if got := g.FloodFill(Pt(2, 2)); got != 9 {
		t.Errorf("FloodFill in closed room = %d, want 9", got)
	}

	g.Set(4, 2, NewDoor())
	if got := g.FloodFill(Pt(2, 2)); got != 19 {
		t.Errorf("FloodFill through door = %d, want 19", got)
	}
	if got := g.FloodFill(Pt(0, 0)); got != 0 {
		t.Errorf("FloodFill from wall = %d, want 0", got)
	}
}

func TestValidateRejectsPerimeterDoor(t *testing.T) {
	g := NewGrid(5, 5, 5, 5)
	g.MakeRoom(Pt(0, 0), Pt(4, 4))
	if err := g.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	g.Set(0, 2, NewDoor())
	if err := g.Validate(); !errors.Is(err, ErrPerimeterDoor) {
		t.Errorf("Validate() = %v, want ErrPerimeterDoor", err)
	}
}

func TestDoorsAndEqual(t *testing.T) {
	a := NewGrid(5, 5, 5, 5)
	b := NewGrid(5, 5, 5, 5)
	a.Set(2, 2, NewDoor())
	b.Set(2, 2, NewDoor())

	if !a.Equal(b) {
		t.Error("identical grids not Equal")
	}
	if doors := a.Doors(); len(doors) != 1 || doors[0] != Pt(2, 2) {
		t.Errorf("Doors() = %v, want [(2,2)]", doors)
	}

	door, _ := AsDoor(b.Get(2, 2))
	door.Toggle()
	if a.Equal(b) {
		t.Error("grids with differently open doors reported Equal")
	}
}

func TestDoorOpenClose(t *testing.T) {
	d := NewDoor()
	if d.Open || !d.ConnectsToWall() || d.Symbol() != '+' {
		t.Fatalf("NewDoor() = %+v, want closed", d)
	}
	d.OpenDoor()
	if !d.Open || d.ConnectsToWall() || d.Symbol() != '/' {
		t.Errorf("after OpenDoor: open=%v connects=%v symbol=%q", d.Open, d.ConnectsToWall(), d.Symbol())
	}
	d.OpenDoor()
	if !d.Open {
		t.Error("OpenDoor on an open door closed it")
	}
	d.CloseDoor()
	if d.Open || !d.ConnectsToWall() || d.Symbol() != '+' {
		t.Errorf("after CloseDoor: open=%v connects=%v symbol=%q", d.Open, d.ConnectsToWall(), d.Symbol())
	}
	if !d.Toggle() || d.Toggle() {
		t.Error("Toggle did not alternate open/closed")
	}
}

func TestNilDoorIsClosed(t *testing.T) {
	var d *Door
	if d.ConnectsToWall() {
		t.Error("nil door connects to wall")
	}
	if d.Symbol() != '+' {
		t.Errorf("nil door symbol = %q, want '+'", d.Symbol())
	}

	g := NewGrid(3, 1, 3, 1)
	g.Set(1, 0, d)
	if got := g.String(); got != ".+.\n" {
		t.Errorf("String() = %q, want %q", got, ".+.\n")
	}
	if !g.Equal(g) {
		t.Error("grid with nil door not Equal to itself")
	}
}

func TestIsOnPerimeter(t *testing.T) {
	g := NewGrid(4, 4, 4, 4)
	count := 0
	g.ForEachPerimeterCell(func(x, y int, o Occupant) {
		count++
	})
	if count != 12 {
		t.Errorf("perimeter cells = %d, want 12", count)
	}
	if g.IsOnPerimeter(1, 1) {
		t.Error("(1,1) reported on perimeter")
	}
	if g.IsOnPerimeter(4, 0) {
		t.Error("out of bounds cell reported on perimeter")
	}
}
