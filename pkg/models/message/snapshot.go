package message

import (
	"github.com/HuXin0817/pawns-and-walls/pkg/models/quoridor"
	"github.com/bytedance/sonic"
)

// Snapshot is the full committed state the core consumes: configuration,
// pawn placements and budgets, every committed wall and whose turn it is.
type Snapshot struct {
	Config    quoridor.Config  `json:"Config"`
	Pawns     [2]quoridor.Pawn `json:"Pawns"`
	Walls     []quoridor.Wall  `json:"Walls"`
	NowPlayer quoridor.Turn    `json:"NowPlayer"`
}

func NewSnapshot(g *quoridor.Game) Snapshot {
	pawns := g.Pawns()
	return Snapshot{
		Config:    g.Config(),
		Pawns:     [2]quoridor.Pawn{*pawns[0], *pawns[1]},
		Walls:     g.Walls(),
		NowPlayer: g.NowPlayer(),
	}
}

// Restore rebuilds a playable game from the snapshot.
func (s Snapshot) Restore() (*quoridor.Game, error) {
	return quoridor.RestoreGame(s.Config, s.Pawns, s.Walls, s.NowPlayer)
}

func (s Snapshot) String() string {
	str, _ := sonic.MarshalString(s)
	return str
}
