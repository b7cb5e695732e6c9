package devtools

import (
	"warrengen/pkg/engine/world"
)

// DevGrid returns a hard-coded 21x11 grid with every occupant kind and wall
// junction the renderer has to handle: two rooms split by a wall with a
// closed door, an open door into a third room, and a lone wall post.
func DevGrid(renderWidth, renderHeight int) *world.Grid {
	grid := world.NewGrid(21, 11, renderWidth, renderHeight)

	grid.MakeRoom(world.Pt(0, 0), world.Pt(10, 10))
	grid.MakeRoom(world.Pt(10, 0), world.Pt(20, 5))
	grid.MakeRoom(world.Pt(10, 5), world.Pt(20, 10))

	grid.Set(10, 2, world.NewDoor())
	grid.Set(10, 7, &world.Door{Open: true})
	grid.Set(15, 5, world.NewDoor())

	// Free-standing post
	grid.Set(5, 5, world.Wall{})

	return grid
}
