package assess

import "github.com/HuXin0817/pawns-and-walls/pkg/models/quoridor"

type ActionKind int8

const (
	ActionNone ActionKind = iota
	ActionMove
	ActionWall
)

func (k ActionKind) String() string {
	switch k {
	case ActionNone:
		return "None"
	case ActionMove:
		return "Move"
	case ActionWall:
		return "Wall"
	}
	return ""
}

// Action is the committed outcome of one decision cycle. Kind ActionNone is
// the normal empty turn when no legal action exists.
type Action struct {
	Kind  ActionKind    `json:"Kind"`
	Move  quoridor.Tile `json:"Move"`
	Wall  quoridor.Wall `json:"Wall"`
	Score float64       `json:"Score"`
}
