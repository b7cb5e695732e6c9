package generator

import (
	"testing"

	"warrengen/pkg/engine/world"
)

func leaf(x0, x1, y0, y1 int) region {
	return region{
		x:        extent{x0, x1},
		y:        extent{y0, y1},
		children: [2]int{noRegion, noRegion},
	}
}

func TestBorders(t *testing.T) {
	l := leaf(10, 20, 10, 20)
	cases := []struct {
		name string
		c    region
		dir  world.Direction
		want bool
	}{
		{"self", leaf(10, 20, 10, 20), world.Up, false},
		{"above", leaf(10, 20, 0, 10), world.Up, true},
		{"above, offset overlap", leaf(15, 30, 0, 10), world.Up, true},
		{"above, touching corner only", leaf(20, 30, 0, 10), world.Up, false},
		{"above, ends at start", leaf(0, 10, 0, 10), world.Up, false},
		{"above, checked as down", leaf(10, 20, 0, 10), world.Down, false},
		{"below", leaf(0, 30, 20, 30), world.Down, true},
		{"left", leaf(0, 10, 15, 25), world.Left, true},
		{"left, corner only", leaf(0, 10, 20, 30), world.Left, false},
		{"right", leaf(20, 30, 5, 15), world.Right, true},
		{"right, gap", leaf(25, 35, 10, 20), world.Right, false},
		{"invalid direction", leaf(10, 20, 0, 10), world.Direction(7), false},
	}
	for _, tc := range cases {
		if got := borders(&l, &tc.c, tc.dir); got != tc.want {
			t.Errorf("%s: borders = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestResolveAdjacency_2x2(t *testing.T) {
	tree := treeFor(0, 21, 21)
	leaves := tree.resolveAdjacency()
	if len(leaves) != 4 {
		t.Fatalf("got %d leaves, want 4", len(leaves))
	}

	for _, idx := range leaves {
		r := tree.regions[idx]
		total := 0
		for _, dir := range world.AllDirections() {
			total += len(r.adjacent[dir])
			for _, c := range r.adjacent[dir] {
				if !borders(&r, &tree.regions[c], dir) {
					t.Errorf("leaf %d keeps non-bordering %d on %v", idx, c, dir)
				}
			}
		}
		if total != 2 {
			t.Errorf("leaf %v x %v has %d neighbours, want 2", r.x, r.y, total)
		}
	}

	if n := len(tree.edges(leaves)); n != 8 {
		t.Errorf("edges = %d, want 8 (4 borders seen from both sides)", n)
	}
}

func TestResolveAdjacency_Symmetric(t *testing.T) {
	tree := treeFor(7, 101, 61)
	leaves := tree.resolveAdjacency()
	for _, idx := range leaves {
		for _, dir := range world.AllDirections() {
			for _, c := range tree.regions[idx].adjacent[dir] {
				found := false
				for _, back := range tree.regions[c].adjacent[dir.Opposite()] {
					if back == idx {
						found = true
					}
				}
				if !found {
					t.Errorf("leaf %d lists %d on %v but not the reverse", idx, c, dir)
				}
			}
		}
	}
}

func TestSeedAdjacencySkipsInternalNodes(t *testing.T) {
	tree := treeFor(10, 21, 21)
	tree.seedAdjacency(0, tree.leaves())
	root := tree.regions[0]
	for _, dir := range world.AllDirections() {
		if len(root.adjacent[dir]) != 0 {
			t.Errorf("root seeded with %v candidates", dir)
		}
	}
	for _, idx := range tree.leaves() {
		if got := len(tree.regions[idx].adjacent[world.Left]); got != 2 {
			t.Errorf("leaf %d seeded with %d candidates, want all 2 leaves", idx, got)
		}
	}
}
