package quoridor

import "fmt"

// Cell is a coordinate in the unified grid space covering tiles, the gaps
// between them and the intersections where gaps cross. Tile (x, y) sits at
// unified (2x, 2y); the odd/even combination of a cell classifies it.
type Cell int

func NewCell(x, y int) Cell {
	return Cell((x << D) + y)
}

func (c Cell) X() int {
	return int(c) >> D
}

func (c Cell) Y() int {
	return int(c) & coordMask
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.X(), c.Y())
}

type CellKind int8

const (
	KindTile CellKind = iota
	KindVerticalGap
	KindHorizontalGap
	KindIntersection
)

func (k CellKind) String() string {
	switch k {
	case KindTile:
		return "Tile"
	case KindVerticalGap:
		return "VerticalGap"
	case KindHorizontalGap:
		return "HorizontalGap"
	case KindIntersection:
		return "Intersection"
	}
	return ""
}

func (c Cell) Kind() CellKind {
	xOdd := c.X()%2 != 0
	yOdd := c.Y()%2 != 0
	switch {
	case xOdd && yOdd:
		return KindIntersection
	case xOdd:
		return KindVerticalGap
	case yOdd:
		return KindHorizontalGap
	}
	return KindTile
}

// Tile converts an even/even cell back to its tile. The second return is
// false for gap and intersection cells, which have no tile form.
func (c Cell) Tile() (Tile, bool) {
	if c.Kind() != KindTile {
		return 0, false
	}
	return NewTile(c.X()/2, c.Y()/2), true
}
