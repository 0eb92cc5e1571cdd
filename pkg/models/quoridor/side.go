package quoridor

type Side int8

const (
	SideBottom Side = iota
	SideTop
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideBottom:
		return "Bottom"
	case SideTop:
		return "Top"
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	}
	return ""
}

// Opposite is the goal edge for a pawn starting on s.
func (s Side) Opposite() Side {
	switch s {
	case SideBottom:
		return SideTop
	case SideTop:
		return SideBottom
	case SideLeft:
		return SideRight
	}
	return SideLeft
}
