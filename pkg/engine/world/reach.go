package world

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

// Reachable collects every open cell reachable from start via N/E/S/W moves using BFS.
// An empty set is returned if start itself is not open.
func Reachable(g *Grid, start Coord) mapset.Set[Coord] {
	visited := mapset.New[Coord]()
	if g == nil || !g.IsOpenAt(start) {
		return visited
	}

	q := queue.New[Coord]()
	q.Enqueue(start)
	visited.Put(start)

	for !q.Empty() {
		current := q.Dequeue()
		for _, dir := range AllDirections() {
			next := current.Step(dir, 1)
			if g.IsOpenAt(next) && !visited.Has(next) {
				visited.Put(next)
				q.Enqueue(next)
			}
		}
	}

	return visited
}

// PathExists reports whether goal can be reached from start through open cells
func PathExists(g *Grid, start, goal Coord) bool {
	return ShortestPath(g, start, goal) != nil
}

// ShortestPath returns the cells of a shortest open path from start to goal,
// both ends included, or nil if there is none.
func ShortestPath(g *Grid, start, goal Coord) []Coord {
	if g == nil || !g.IsOpenAt(start) || !g.IsOpenAt(goal) {
		return nil
	}

	cameFrom := map[Coord]Coord{start: start}
	q := queue.New[Coord]()
	q.Enqueue(start)

	for !q.Empty() {
		current := q.Dequeue()
		if current == goal {
			var path []Coord
			for c := goal; c != start; c = cameFrom[c] {
				path = append(path, c)
			}
			path = append(path, start)
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}

		for _, dir := range AllDirections() {
			next := current.Step(dir, 1)
			if _, seen := cameFrom[next]; seen || !g.IsOpenAt(next) {
				continue
			}
			cameFrom[next] = current
			q.Enqueue(next)
		}
	}

	return nil
}
