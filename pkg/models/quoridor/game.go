package quoridor

import "fmt"

// Config is the construction-time shape of a match.
type Config struct {
	BoardSize    int     `json:"BoardSize"`
	WallsPerPawn int     `json:"WallsPerPawn"`
	StartSides   [2]Side `json:"StartSides"`
}

func DefaultConfig() Config {
	return Config{
		BoardSize:    9,
		WallsPerPawn: 10,
		StartSides:   [2]Side{SideBottom, SideTop},
	}
}

// Game owns the grid, the two pawns and whose turn it is. It is the turn
// collaborator the validator and session consume: all state mutation is
// turn-serialized and synchronous, so nothing here locks.
type Game struct {
	config    Config
	grid      *Grid
	pawns     [2]*Pawn
	walls     []Wall
	nowPlayer Turn
	winner    *Pawn
}

func NewGame(config Config) (*Game, error) {
	if config.BoardSize < 2 {
		return nil, fmt.Errorf("quoridor: board size %d too small", config.BoardSize)
	}
	if config.WallsPerPawn < 0 {
		return nil, fmt.Errorf("quoridor: negative wall budget %d", config.WallsPerPawn)
	}
	if config.StartSides[0] == config.StartSides[1] {
		return nil, fmt.Errorf("quoridor: both pawns start on side %s", config.StartSides[0])
	}

	g := &Game{
		config:    config,
		grid:      NewGrid(config.BoardSize),
		nowPlayer: Player1,
	}
	for i, side := range config.StartSides {
		g.pawns[i] = &Pawn{
			ID:             i + 1,
			Position:       startTile(side, config.BoardSize),
			Start:          side,
			WallsRemaining: config.WallsPerPawn,
		}
		g.grid.SetTileOccupied(g.pawns[i].Position, true)
	}
	return g, nil
}

// RestoreGame rebuilds a mid-match game from a committed state: pawn
// placements, wall list, budgets and the turn to act. Walls are re-applied
// as occupancy without re-running legality, since they were validated when
// first committed.
func RestoreGame(config Config, pawns [2]Pawn, walls []Wall, nowPlayer Turn) (*Game, error) {
	g, err := NewGame(config)
	if err != nil {
		return nil, err
	}

	for i := range pawns {
		if !g.grid.IsValidTile(pawns[i].Position) {
			return nil, fmt.Errorf("%w: pawn %d at %s", ErrInvalidCoordinate, pawns[i].ID, pawns[i].Position)
		}
	}
	if pawns[0].Position == pawns[1].Position {
		return nil, fmt.Errorf("quoridor: both pawns restored to %s", pawns[0].Position)
	}

	// Vacate both construction-time start tiles before writing the restored
	// positions: a restored pawn may stand on the other pawn's start tile.
	for _, p := range g.pawns {
		g.grid.SetTileOccupied(p.Position, false)
	}
	for i := range pawns {
		g.pawns[i].Position = pawns[i].Position
		g.pawns[i].WallsRemaining = pawns[i].WallsRemaining
		g.grid.SetTileOccupied(g.pawns[i].Position, true)
	}

	for _, w := range walls {
		if !g.grid.WallInBounds(w) {
			return nil, fmt.Errorf("quoridor: restored wall %s out of bounds", w)
		}
		for _, c := range w.Cells() {
			if g.grid.IsOccupied(c) {
				return nil, fmt.Errorf("quoridor: restored wall %s overlaps", w)
			}
		}
		g.grid.OccupyWall(w)
		g.walls = append(g.walls, w)
	}

	g.nowPlayer = nowPlayer
	return g, nil
}

func (g *Game) Config() Config { return g.config }

func (g *Game) Grid() *Grid { return g.grid }

func (g *Game) Pawns() [2]*Pawn { return g.pawns }

func (g *Game) Walls() []Wall { return g.walls }

func (g *Game) NowPlayer() Turn { return g.nowPlayer }

func (g *Game) Winner() *Pawn { return g.winner }

func (g *Game) Over() bool { return g.winner != nil }

func (g *Game) PawnFor(t Turn) *Pawn {
	if t == Player1 {
		return g.pawns[0]
	}
	return g.pawns[1]
}

func (g *Game) OpponentOf(p *Pawn) *Pawn {
	if p == g.pawns[0] {
		return g.pawns[1]
	}
	return g.pawns[0]
}

// ValidMoves is the single-step move set from a tile: wall-free adjacency
// minus any pawn-held destination. Out-of-range tiles are a programmer
// error, not an empty answer.
func (g *Game) ValidMoves(from Tile) ([]Tile, error) {
	adjacent, err := g.grid.AdjacentTiles(from)
	if err != nil {
		return nil, err
	}

	moves := make([]Tile, 0, len(adjacent))
	for _, t := range adjacent {
		if g.pawnAt(t) != nil {
			continue
		}
		moves = append(moves, t)
	}
	return moves, nil
}

func (g *Game) pawnAt(t Tile) *Pawn {
	for _, p := range g.pawns {
		if p.Position == t {
			return p
		}
	}
	return nil
}

// MoveActing steps the acting pawn to an adjacent free tile. A false return
// is the normal answer for an illegal destination.
func (g *Game) MoveActing(to Tile) bool {
	if !g.IsMoveActionAllowed() {
		return false
	}
	acting := g.CurrentActingPawn()
	moves, err := g.ValidMoves(acting.Position)
	if err != nil {
		return false
	}
	legal := false
	for _, t := range moves {
		if t == to {
			legal = true
			break
		}
	}
	if !legal {
		return false
	}

	g.grid.SetTileOccupied(acting.Position, false)
	acting.Position = to
	g.grid.SetTileOccupied(to, true)
	g.NotifyMoveCommitted(acting, to)
	return true
}

// Reset restores the construction state: walls cleared, budgets refilled,
// pawns back on their start tiles, Player1 to act.
func (g *Game) Reset() {
	g.grid.ClearAllWalls()
	for _, p := range g.pawns {
		g.grid.SetTileOccupied(p.Position, false)
	}
	for _, p := range g.pawns {
		p.Position = startTile(p.Start, g.config.BoardSize)
		p.WallsRemaining = g.config.WallsPerPawn
		g.grid.SetTileOccupied(p.Position, true)
	}
	g.walls = nil
	g.winner = nil
	g.nowPlayer = Player1
}

// CurrentActingPawn and the methods below form the turn collaborator
// consumed by the rules and assess packages.

func (g *Game) CurrentActingPawn() *Pawn {
	return g.PawnFor(g.nowPlayer)
}

func (g *Game) IsMoveActionAllowed() bool {
	return !g.Over()
}

func (g *Game) IsWallActionAllowed() bool {
	return !g.Over()
}

func (g *Game) WallsRemaining(pawnID int) int {
	for _, p := range g.pawns {
		if p.ID == pawnID {
			return p.WallsRemaining
		}
	}
	return 0
}

// NotifyMoveCommitted ends the turn after a committed move, declaring a
// winner first when the pawn reached its goal edge.
func (g *Game) NotifyMoveCommitted(p *Pawn, to Tile) {
	if g.onGoalEdge(p) {
		g.winner = p
		return
	}
	g.nowPlayer.Change()
}

// NotifyWallCommitted ends the turn after a committed wall. Cancelled or
// failed attempts never reach here, so they do not consume the turn.
func (g *Game) NotifyWallCommitted(p *Pawn, w Wall) {
	g.walls = append(g.walls, w)
	g.nowPlayer.Change()
}

func (g *Game) onGoalEdge(p *Pawn) bool {
	switch p.Goal() {
	case SideBottom:
		return p.Position.Y() == 0
	case SideTop:
		return p.Position.Y() == g.config.BoardSize-1
	case SideLeft:
		return p.Position.X() == 0
	}
	return p.Position.X() == g.config.BoardSize-1
}
