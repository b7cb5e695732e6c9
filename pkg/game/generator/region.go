package generator

import (
	"fmt"

	"warrengen/pkg/engine/rng"
	"warrengen/pkg/engine/world"
)

// noRegion marks a missing child index
const noRegion = -1

// extent is a half-open interval [start, end) on one axis
type extent struct {
	start, end int
}

func (e extent) length() int {
	return e.end - e.start
}

// overlaps reports whether c shares any span with e: c must not end at or
// before e starts, nor start at or after e ends.
func (e extent) overlaps(c extent) bool {
	if c.end <= e.start {
		return false
	}
	if c.start >= e.end {
		return false
	}
	return true
}

// region is one node of the partition tree. Internal nodes have two children
// and no adjacency; leaves have no children and one candidate list per direction.
type region struct {
	x, y     extent
	children [2]int
	adjacent [4][]int // indexed by world.Direction
}

func (r *region) isLeaf() bool {
	return r.children[0] == noRegion
}

func (r *region) sameBounds(other *region) bool {
	return r.x == other.x && r.y == other.y
}

// regionTree is an arena of regions. Index 0 is the root; relationships are
// stored as indexes so sibling leaves can reference each other freely.
type regionTree struct {
	regions  []region
	interval int
	minSize  int
	src      *rng.Source
}

// buildTree partitions the given area into a binary tree of regions
func buildTree(x, y extent, cfg Config) *regionTree {
	t := &regionTree{
		interval: cfg.Interval,
		minSize:  cfg.MinRoomSize,
		src:      cfg.source(),
	}
	root := t.add(x, y)
	t.subdivide(root)
	return t
}

func (t *regionTree) add(x, y extent) int {
	t.regions = append(t.regions, region{
		x:        x,
		y:        y,
		children: [2]int{noRegion, noRegion},
	})
	return len(t.regions) - 1
}

// subdivide splits a region in two and recurses into both halves. A region
// becomes a leaf when it is too small to split or when the chosen split would
// leave a half below the minimum size; there is no second attempt.
func (t *regionTree) subdivide(idx int) {
	r := t.regions[idx]

	// Split across the longer axis, with a 1 in 64 chance of the other one
	splitX := r.x.length() >= r.y.length()
	if t.src.Random()&0x3f == 0 {
		splitX = !splitX
	}

	axis := r.y
	if splitX {
		axis = r.x
	}

	if axis.length() <= t.minSize {
		return
	}

	numSplits := axis.length()/t.interval - 2
	if numSplits <= 0 {
		return
	}

	offset := int(t.src.Random())%numSplits + 1
	at := axis.start + offset*t.interval

	low := extent{axis.start, at}
	high := extent{at, axis.end}
	if low.length() < t.minSize || high.length() < t.minSize {
		return
	}

	var first, second int
	if splitX {
		first = t.add(low, r.y)
		second = t.add(high, r.y)
	} else {
		first = t.add(r.x, low)
		second = t.add(r.x, high)
	}
	t.regions[idx].children = [2]int{first, second}

	t.subdivide(first)
	t.subdivide(second)
}

// leaves returns leaf indexes in depth-first order
func (t *regionTree) leaves() []int {
	var out []int
	t.collectLeaves(0, &out)
	return out
}

func (t *regionTree) collectLeaves(idx int, out *[]int) {
	r := &t.regions[idx]
	if r.isLeaf() {
		*out = append(*out, idx)
		return
	}
	t.collectLeaves(r.children[0], out)
	t.collectLeaves(r.children[1], out)
}

// depth returns the number of levels in the tree; a lone root is depth 1
func (t *regionTree) depth() int {
	return t.depthFrom(0)
}

func (t *regionTree) depthFrom(idx int) int {
	r := &t.regions[idx]
	if r.isLeaf() {
		return 1
	}
	return 1 + max(t.depthFrom(r.children[0]), t.depthFrom(r.children[1]))
}

// checkPartition verifies that every internal node's children tile it exactly
// along one axis. It returns a description of the first violation found.
func (t *regionTree) checkPartition(idx int) error {
	r := &t.regions[idx]
	if r.isLeaf() {
		if r.children[1] != noRegion {
			return fmt.Errorf("region %d has a single child", idx)
		}
		return nil
	}

	for _, dir := range world.AllDirections() {
		if len(r.adjacent[dir]) != 0 {
			return fmt.Errorf("internal region %d has %v adjacency", idx, dir)
		}
	}

	a, b := &t.regions[r.children[0]], &t.regions[r.children[1]]
	switch {
	case a.y == r.y && b.y == r.y:
		if a.x.start != r.x.start || a.x.end != b.x.start || b.x.end != r.x.end {
			return fmt.Errorf("region %d: x children %v %v do not tile %v", idx, a.x, b.x, r.x)
		}
	case a.x == r.x && b.x == r.x:
		if a.y.start != r.y.start || a.y.end != b.y.start || b.y.end != r.y.end {
			return fmt.Errorf("region %d: y children %v %v do not tile %v", idx, a.y, b.y, r.y)
		}
	default:
		return fmt.Errorf("region %d: children split both axes", idx)
	}

	if err := t.checkPartition(r.children[0]); err != nil {
		return err
	}
	return t.checkPartition(r.children[1])
}
