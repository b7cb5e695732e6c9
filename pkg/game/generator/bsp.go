package generator

import (
	"github.com/sirupsen/logrus"
	"github.com/spakin/disjoint"
	"github.com/zyedidia/generic/mapset"

	"warrengen/pkg/engine/world"
	"warrengen/pkg/logger"
)

// BSPGenerator builds levels by binary space partitioning: the map is split
// into walled rooms on an interval-aligned lattice and every pair of rooms
// sharing a wall gets one door.
type BSPGenerator struct {
	Config Config
}

// NewBSP returns a generator using cfg
func NewBSP(cfg Config) *BSPGenerator {
	return &BSPGenerator{Config: cfg}
}

// Name returns the name of this generator
func (g *BSPGenerator) Name() string {
	return "BSP Tree"
}

// Generate checks the dimensions and starts a level build in the background
func (g *BSPGenerator) Generate(width, height, renderWidth, renderHeight int) (*Task, error) {
	cfg := g.Config
	if err := cfg.CheckDimensions(width, height, renderWidth, renderHeight); err != nil {
		return nil, err
	}

	return startTask(func() (*world.Grid, Summary, error) {
		grid, summary := buildLevel(cfg, width, height, renderWidth, renderHeight)
		return grid, summary, grid.Validate()
	}), nil
}

// buildLevel runs the whole pipeline synchronously
func buildLevel(cfg Config, width, height, renderWidth, renderHeight int) (*world.Grid, Summary) {
	// The last row and column are the far walls of the rightmost and lowest rooms
	tree := buildTree(extent{0, width - 1}, extent{0, height - 1}, cfg)
	leaves := tree.resolveAdjacency()
	edges := tree.edges(leaves)

	grid := world.NewGrid(width, height, renderWidth, renderHeight)
	assembleRooms(grid, tree, leaves)
	placed := placeDoors(grid, tree, edges)
	removed := removePerimeterDoors(grid)

	summary := Summary{
		Leaves:         len(leaves),
		Depth:          tree.depth(),
		Edges:          len(edges),
		Doors:          placed.Size() - removed,
		PerimeterDoors: removed,
		Groups:         roomGroups(leaves, edges),
	}

	logger.Component("generator").WithFields(logrus.Fields{
		"width":  width,
		"height": height,
		"leaves": summary.Leaves,
		"depth":  summary.Depth,
		"doors":  summary.Doors,
		"groups": summary.Groups,
	}).Debug("level generated")

	return grid, summary
}

// roomGroups counts the sets of leaves joined through retained edges
func roomGroups(leaves []int, edges []edge) int {
	sets := make(map[int]*disjoint.Element, len(leaves))
	for _, idx := range leaves {
		sets[idx] = disjoint.NewElement()
	}
	for _, e := range edges {
		disjoint.Union(sets[e.from], sets[e.to])
	}

	roots := mapset.New[*disjoint.Element]()
	for _, el := range sets {
		roots.Put(el.Find())
	}
	return roots.Size()
}
