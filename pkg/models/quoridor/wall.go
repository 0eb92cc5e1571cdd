package quoridor

import "fmt"

type Orientation int8

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	}
	return ""
}

// Wall is two gap cells plus the intersection between them. Anchored at tile
// (x, y): a horizontal wall runs along the gap above the anchor row, a
// vertical wall along the gap right of the anchor column. The shared
// intersection cell is what makes crossing walls collide while leaving
// T-junctions legal.
type Wall struct {
	Orientation Orientation `json:"Orientation"`
	X           int         `json:"X"`
	Y           int         `json:"Y"`
}

func NewWall(o Orientation, x, y int) Wall {
	return Wall{Orientation: o, X: x, Y: y}
}

func (w Wall) Anchor() Tile {
	return NewTile(w.X, w.Y)
}

// Cells returns the 3 unified cells the wall occupies. Cells()[1] is always
// the intersection.
func (w Wall) Cells() [3]Cell {
	cx := w.X * 2
	cy := w.Y * 2
	if w.Orientation == Horizontal {
		return [3]Cell{
			NewCell(cx, cy+1),
			NewCell(cx+1, cy+1),
			NewCell(cx+2, cy+1),
		}
	}
	return [3]Cell{
		NewCell(cx+1, cy),
		NewCell(cx+1, cy+1),
		NewCell(cx+1, cy+2),
	}
}

func (w Wall) Intersection() Cell {
	return w.Cells()[1]
}

func (w Wall) String() string {
	return fmt.Sprintf("%s(%d, %d)", w.Orientation, w.X, w.Y)
}
