package quoridor

import "fmt"

const (
	D         = 8
	coordMod  = 1 << D
	coordMask = coordMod - 1
)

// Tile is a board cell a pawn can occupy, packed as (x<<D)+y.
type Tile int

func NewTile(x, y int) Tile {
	return Tile((x << D) + y)
}

func (t Tile) X() int {
	return int(t) >> D
}

func (t Tile) Y() int {
	return int(t) & coordMask
}

func (t Tile) String() string {
	return fmt.Sprintf("(%d, %d)", t.X(), t.Y())
}

// Cell maps the tile into the unified coordinate space.
func (t Tile) Cell() Cell {
	return NewCell(t.X()*2, t.Y()*2)
}

func (t Tile) ManhattanDistance(o Tile) int {
	return abs(t.X()-o.X()) + abs(t.Y()-o.Y())
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
