package generator

// GridGenerator is an interface for map generation algorithms
type GridGenerator interface {
	// Generate validates the dimensions and starts building a grid in the
	// background. The returned task yields the finished grid.
	Generate(width, height, renderWidth, renderHeight int) (*Task, error)
	Name() string
}

// Available generators
var (
	BSP = NewBSP(DefaultConfig())
)

// DefaultGenerator is the default map generator
var DefaultGenerator GridGenerator = BSP

// Generate starts a level on the default generator
func Generate(width, height, renderWidth, renderHeight int) (*Task, error) {
	return DefaultGenerator.Generate(width, height, renderWidth, renderHeight)
}

// Summary describes a finished level. It carries counts only; the region
// tree used to build the level is never kept.
type Summary struct {
	Leaves         int // Rooms in the partition
	Depth          int // Levels in the partition tree
	Edges          int // Retained adjacencies, counted from both sides
	Doors          int // Distinct door cells left in the grid
	PerimeterDoors int // Doors converted back to wall on the outer ring
	Groups         int // Sets of rooms joined by doors; 1 when fully connected
}
