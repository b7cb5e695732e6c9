package generator

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"warrengen/pkg/engine/world"
)

// assembleRooms outlines every leaf in walls
func assembleRooms(grid *world.Grid, t *regionTree, leaves []int) {
	for _, idx := range leaves {
		r := &t.regions[idx]
		grid.MakeRoom(world.Pt(r.x.start, r.y.start), world.Pt(r.x.end, r.y.end))
	}
}

// doorPosition returns the midpoint of the border shared by the edge's two
// leaves, rounding down. A zero-length border means pruning let through a
// pair that does not touch, which is a bug.
func doorPosition(t *regionTree, e edge) world.Point {
	l, c := &t.regions[e.from], &t.regions[e.to]

	if e.dir.Vertical() {
		low, high := max(l.x.start, c.x.start), min(l.x.end, c.x.end)
		if high <= low {
			panic(fmt.Sprintf("adjacent regions %d and %d share no border along x (%d..%d)", e.from, e.to, low, high))
		}
		row := l.y.start
		if e.dir == world.Down {
			row = l.y.end
		}
		return world.Pt((low+high)/2, row)
	}

	low, high := max(l.y.start, c.y.start), min(l.y.end, c.y.end)
	if high <= low {
		panic(fmt.Sprintf("adjacent regions %d and %d share no border along y (%d..%d)", e.from, e.to, low, high))
	}
	col := l.x.start
	if e.dir == world.Right {
		col = l.x.end
	}
	return world.Pt(col, (low+high)/2)
}

// placeDoors writes one closed door per edge and returns the distinct cells used
func placeDoors(grid *world.Grid, t *regionTree, edges []edge) mapset.Set[world.Point] {
	placed := mapset.New[world.Point]()
	for _, e := range edges {
		p := doorPosition(t, e)
		grid.Set(p.X, p.Y, world.NewDoor())
		placed.Put(p)
	}
	return placed
}

// removePerimeterDoors turns any door on the outer ring back into wall and
// returns how many were converted.
func removePerimeterDoors(grid *world.Grid) int {
	converted := 0
	grid.ForEachPerimeterCell(func(x, y int, o world.Occupant) {
		if _, ok := world.AsDoor(o); ok {
			grid.Set(x, y, world.Wall{})
			converted++
		}
	})
	return converted
}
