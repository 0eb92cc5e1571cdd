package quoridor

// Pawn is one player's token plus its per-match wall budget. Start side
// determines the opposite goal edge; reaching any tile on that edge wins.
type Pawn struct {
	ID             int  `json:"ID"`
	Position       Tile `json:"Position"`
	Start          Side `json:"Start"`
	WallsRemaining int  `json:"WallsRemaining"`
}

func (p *Pawn) Goal() Side {
	return p.Start.Opposite()
}

// startTile is the middle tile of the pawn's start edge.
func startTile(s Side, size int) Tile {
	mid := size / 2
	switch s {
	case SideBottom:
		return NewTile(mid, 0)
	case SideTop:
		return NewTile(mid, size-1)
	case SideLeft:
		return NewTile(0, mid)
	}
	return NewTile(size-1, mid)
}
