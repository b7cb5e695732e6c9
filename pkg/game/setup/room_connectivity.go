// Package setup checks where things can be placed into a generated level
// without cutting it apart.
package setup

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"warrengen/pkg/engine/world"
)

// StillConnectedIfBlocked returns true if, after treating blockedCell as
// impassable, every passable cell that was reachable from another stays
// reachable. Used before dropping furniture or a locked door onto a cell.
// Cells that are already blocked never disconnect anything.
func StillConnectedIfBlocked(grid *world.Grid, blockedCell world.Point) bool {
	if !grid.IsValidPosition(blockedCell.X, blockedCell.Y) || !world.IsPassable(grid.At(blockedCell)) {
		return true
	}

	// Neighbours of the blocked cell are the only cells whose reachability can change.
	var neighbours []world.Point
	for _, dir := range world.AllDirections() {
		n := blockedCell.Add(dir)
		if grid.IsValidPosition(n.X, n.Y) && world.IsPassable(grid.At(n)) {
			neighbours = append(neighbours, n)
		}
	}
	if len(neighbours) <= 1 {
		return true
	}

	blocked := mapset.New[world.Point]()
	blocked.Put(blockedCell)
	reached := reachable(grid, neighbours[0], blocked)
	for _, n := range neighbours[1:] {
		if !reached.Has(n) {
			return false
		}
	}
	return true
}

// Chokepoints lists the doors whose blocking would split the level.
func Chokepoints(grid *world.Grid) []world.Point {
	var points []world.Point
	for _, p := range grid.Doors() {
		if !StillConnectedIfBlocked(grid, p) {
			points = append(points, p)
		}
	}
	return points
}

// reachable returns the passable cells reachable from start without entering blocked.
func reachable(grid *world.Grid, start world.Point, blocked mapset.Set[world.Point]) mapset.Set[world.Point] {
	visited := mapset.New[world.Point]()
	visited.Put(start)
	q := queue.New[world.Point]()
	q.Enqueue(start)
	for !q.Empty() {
		current := q.Dequeue()
		for _, dir := range world.AllDirections() {
			next := current.Add(dir)
			if !grid.IsValidPosition(next.X, next.Y) || visited.Has(next) || blocked.Has(next) {
				continue
			}
			if !world.IsPassable(grid.At(next)) {
				continue
			}
			visited.Put(next)
			q.Enqueue(next)
		}
	}
	return visited
}
