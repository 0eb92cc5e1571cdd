package quoridor

import (
	"errors"
	"fmt"
)

// ErrInvalidCoordinate reports a tile request outside the board. It marks a
// programmer error, not an illegal game action.
var ErrInvalidCoordinate = errors.New("quoridor: coordinate out of range")

// Grid is the single source of truth for occupancy in the unified coordinate
// space: an N-tile board stored as a (2N−1)×(2N−1) square of cells. Tile
// cells hold pawn presence, gap and intersection cells hold wall material.
type Grid struct {
	size     int
	span     int
	occupied [][]bool
}

func NewGrid(size int) *Grid {
	if size < 2 {
		panic(fmt.Sprintf("quoridor: grid size %d too small", size))
	}
	span := size*2 - 1
	occupied := make([][]bool, span)
	for i := range occupied {
		occupied[i] = make([]bool, span)
	}
	return &Grid{
		size:     size,
		span:     span,
		occupied: occupied,
	}
}

func (g *Grid) Size() int { return g.size }

func (g *Grid) Span() int { return g.span }

func (g *Grid) InBounds(c Cell) bool {
	return c.X() >= 0 && c.X() < g.span && c.Y() >= 0 && c.Y() < g.span
}

// IsOccupied is fail-closed: out-of-range cells read as occupied, so edge
// logic never has to special-case the border.
func (g *Grid) IsOccupied(c Cell) bool {
	if !g.InBounds(c) {
		return true
	}
	return g.occupied[c.X()][c.Y()]
}

func (g *Grid) SetOccupied(c Cell, occupied bool) {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("quoridor: SetOccupied out of range at %s", c))
	}
	g.occupied[c.X()][c.Y()] = occupied
}

func (g *Grid) IsValidTile(t Tile) bool {
	return t.X() >= 0 && t.X() < g.size && t.Y() >= 0 && t.Y() < g.size
}

func (g *Grid) TileOccupied(t Tile) (bool, error) {
	if !g.IsValidTile(t) {
		return false, fmt.Errorf("%w: tile %s", ErrInvalidCoordinate, t)
	}
	return g.occupied[t.X()*2][t.Y()*2], nil
}

func (g *Grid) SetTileOccupied(t Tile, occupied bool) error {
	if !g.IsValidTile(t) {
		return fmt.Errorf("%w: tile %s", ErrInvalidCoordinate, t)
	}
	g.occupied[t.X()*2][t.Y()*2] = occupied
	return nil
}

var neighborOffsets = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// AdjacentTiles returns the in-bounds neighbors of t whose connecting gap is
// free of wall material. Pawn occupancy of the neighbor never blocks the
// enumeration.
func (g *Grid) AdjacentTiles(t Tile) ([]Tile, error) {
	if !g.IsValidTile(t) {
		return nil, fmt.Errorf("%w: tile %s", ErrInvalidCoordinate, t)
	}

	adjacent := make([]Tile, 0, 4)
	for _, off := range neighborOffsets {
		nx := t.X() + off[0]
		ny := t.Y() + off[1]
		if nx < 0 || nx >= g.size || ny < 0 || ny >= g.size {
			continue
		}
		gap := NewCell(t.X()*2+off[0], t.Y()*2+off[1])
		if g.IsOccupied(gap) {
			continue
		}
		adjacent = append(adjacent, NewTile(nx, ny))
	}
	return adjacent, nil
}

func (g *Grid) WallInBounds(w Wall) bool {
	for _, c := range w.Cells() {
		if !g.InBounds(c) {
			return false
		}
	}
	return true
}

// OccupyWall writes all 3 wall cells together. Callers are responsible for
// legality; an out-of-bounds wall is a programmer error.
func (g *Grid) OccupyWall(w Wall) {
	if !g.WallInBounds(w) {
		panic(fmt.Sprintf("quoridor: OccupyWall out of range for %s", w))
	}
	for _, c := range w.Cells() {
		g.occupied[c.X()][c.Y()] = true
	}
}

func (g *Grid) ReleaseWall(w Wall) {
	if !g.WallInBounds(w) {
		panic(fmt.Sprintf("quoridor: ReleaseWall out of range for %s", w))
	}
	for _, c := range w.Cells() {
		g.occupied[c.X()][c.Y()] = false
	}
}

// WithTentativeWall occupies the wall's cells, runs fn and reverts the cells
// again no matter how fn exits. Simulated placements go through here so a
// failure mid-evaluation can never leave occupancy half-mutated.
func (g *Grid) WithTentativeWall(w Wall, fn func()) {
	g.OccupyWall(w)
	defer g.ReleaseWall(w)
	fn()
}

// ClearAllWalls resets every gap and intersection cell. Tile occupancy is
// untouched.
func (g *Grid) ClearAllWalls() {
	for x := 0; x < g.span; x++ {
		for y := 0; y < g.span; y++ {
			if x%2 == 0 && y%2 == 0 {
				continue
			}
			g.occupied[x][y] = false
		}
	}
}

// EdgeTiles enumerates the full row or column of tiles along one board side.
func (g *Grid) EdgeTiles(s Side) (tiles []Tile) {
	for i := 0; i < g.size; i++ {
		switch s {
		case SideBottom:
			tiles = append(tiles, NewTile(i, 0))
		case SideTop:
			tiles = append(tiles, NewTile(i, g.size-1))
		case SideLeft:
			tiles = append(tiles, NewTile(0, i))
		case SideRight:
			tiles = append(tiles, NewTile(g.size-1, i))
		}
	}
	return
}
