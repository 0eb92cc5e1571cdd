// Package path answers route questions over the tile graph induced by the
// unified grid's wall occupancy. Searches are plain BFS: the graph is
// unweighted, boards are small, and every call reads the live grid rather
// than a cache, so answers are always exact for the current occupancy.
package path

import "github.com/HuXin0817/pawns-and-walls/pkg/models/quoridor"

// Unreachable is the length reported when no route exists.
const Unreachable = -1

type Finder struct {
	grid *quoridor.Grid
}

func NewFinder(grid *quoridor.Grid) *Finder {
	return &Finder{grid: grid}
}

// bfs expands from start until target says stop, returning the parent map,
// the tile that satisfied target and whether any tile did. Pawn occupancy is
// invisible here: only wall material blocks steps.
func (f *Finder) bfs(start quoridor.Tile, target func(quoridor.Tile) bool) (map[quoridor.Tile]quoridor.Tile, quoridor.Tile, bool) {
	parents := map[quoridor.Tile]quoridor.Tile{start: start}
	queue := []quoridor.Tile{start}

	for len(queue) > 0 {
		now := queue[0]
		queue = queue[1:]

		if target(now) {
			return parents, now, true
		}

		adjacent, err := f.grid.AdjacentTiles(now)
		if err != nil {
			return parents, 0, false
		}
		for _, next := range adjacent {
			if _, seen := parents[next]; seen {
				continue
			}
			parents[next] = now
			queue = append(queue, next)
		}
	}
	return parents, 0, false
}

func (f *Finder) backtrace(parents map[quoridor.Tile]quoridor.Tile, end quoridor.Tile) []quoridor.Tile {
	route := []quoridor.Tile{end}
	for parents[end] != end {
		end = parents[end]
		route = append(route, end)
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
	return route
}

func (f *Finder) PathExists(from, to quoridor.Tile) bool {
	if !f.grid.IsValidTile(from) || !f.grid.IsValidTile(to) {
		return false
	}
	_, _, found := f.bfs(from, func(t quoridor.Tile) bool { return t == to })
	return found
}

// ShortestPath returns the ordered tile sequence from from to to inclusive,
// or nil when unreachable.
func (f *Finder) ShortestPath(from, to quoridor.Tile) []quoridor.Tile {
	if !f.grid.IsValidTile(from) || !f.grid.IsValidTile(to) {
		return nil
	}
	parents, end, found := f.bfs(from, func(t quoridor.Tile) bool { return t == to })
	if !found {
		return nil
	}
	return f.backtrace(parents, end)
}

// ShortestPathLength counts steps, not tiles: adjacent tiles are 1 apart.
func (f *Finder) ShortestPathLength(from, to quoridor.Tile) int {
	route := f.ShortestPath(from, to)
	if route == nil {
		return Unreachable
	}
	return len(route) - 1
}

// HasPathToGoal reports whether any tile on the pawn's full goal edge is
// still reachable.
func (f *Finder) HasPathToGoal(p *quoridor.Pawn) bool {
	return f.DistanceToGoal(p) != Unreachable
}

// DistanceToGoal is the shortest step count from the pawn's position to the
// nearest tile of its goal edge, found by a single multi-target BFS.
func (f *Finder) DistanceToGoal(p *quoridor.Pawn) int {
	if !f.grid.IsValidTile(p.Position) {
		return Unreachable
	}

	goal := make(map[quoridor.Tile]struct{})
	for _, t := range f.grid.EdgeTiles(p.Goal()) {
		goal[t] = struct{}{}
	}

	parents, end, found := f.bfs(p.Position, func(t quoridor.Tile) bool {
		_, c := goal[t]
		return c
	})
	if !found {
		return Unreachable
	}
	return len(f.backtrace(parents, end)) - 1
}
