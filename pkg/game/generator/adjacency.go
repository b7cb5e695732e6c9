package generator

import "warrengen/pkg/engine/world"

// seedAdjacency hands every leaf under idx the same candidate list in all four
// directions. Pruning replaces the lists, so sharing the backing slice is safe.
func (t *regionTree) seedAdjacency(idx int, candidates []int) {
	r := &t.regions[idx]
	if !r.isLeaf() {
		t.seedAdjacency(r.children[0], candidates)
		t.seedAdjacency(r.children[1], candidates)
		return
	}
	for _, dir := range world.AllDirections() {
		r.adjacent[dir] = candidates
	}
}

// pruneAdjacency drops every candidate that does not share a border with its leaf
func (t *regionTree) pruneAdjacency(leaves []int) {
	for _, idx := range leaves {
		l := &t.regions[idx]
		for _, dir := range world.AllDirections() {
			kept := make([]int, 0, 2)
			for _, c := range l.adjacent[dir] {
				if borders(l, &t.regions[c], dir) {
					kept = append(kept, c)
				}
			}
			l.adjacent[dir] = kept
		}
	}
}

// resolveAdjacency seeds and prunes adjacency for the whole tree, returning
// the leaves in depth-first order.
func (t *regionTree) resolveAdjacency() []int {
	leaves := t.leaves()
	t.seedAdjacency(0, leaves)
	t.pruneAdjacency(leaves)
	return leaves
}

// borders reports whether candidate c lies against leaf l on the dir side
func borders(l, c *region, dir world.Direction) bool {
	if l.sameBounds(c) {
		return false
	}

	switch dir {
	case world.Up:
		return l.y.start == c.y.end && l.x.overlaps(c.x)
	case world.Down:
		return l.y.end == c.y.start && l.x.overlaps(c.x)
	case world.Left:
		return l.x.start == c.x.end && l.y.overlaps(c.y)
	case world.Right:
		return l.x.end == c.x.start && l.y.overlaps(c.y)
	default:
		return false
	}
}

// edge is one retained adjacency: leaf `from` borders leaf `to` on side dir
type edge struct {
	from, to int
	dir      world.Direction
}

// edges lists every retained adjacency. Each shared border appears twice,
// once from each side.
func (t *regionTree) edges(leaves []int) []edge {
	var out []edge
	for _, idx := range leaves {
		l := &t.regions[idx]
		for _, dir := range world.AllDirections() {
			for _, c := range l.adjacent[dir] {
				out = append(out, edge{from: idx, to: c, dir: dir})
			}
		}
	}
	return out
}
