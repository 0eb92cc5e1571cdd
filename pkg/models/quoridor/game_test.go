package quoridor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameSetup(t *testing.T) {
	game, err := NewGame(DefaultConfig())
	require.NoError(t, err)

	pawns := game.Pawns()
	assert.Equal(t, NewTile(4, 0), pawns[0].Position)
	assert.Equal(t, NewTile(4, 8), pawns[1].Position)
	assert.Equal(t, SideTop, pawns[0].Goal())
	assert.Equal(t, SideBottom, pawns[1].Goal())
	assert.Equal(t, 10, pawns[0].WallsRemaining)
	assert.Equal(t, Player1, game.NowPlayer())
	assert.False(t, game.Over())

	occupied, err := game.Grid().TileOccupied(NewTile(4, 0))
	require.NoError(t, err)
	assert.True(t, occupied)
}

func TestNewGameRejectsBadConfig(t *testing.T) {
	_, err := NewGame(Config{BoardSize: 1, WallsPerPawn: 10, StartSides: [2]Side{SideBottom, SideTop}})
	assert.Error(t, err)

	_, err = NewGame(Config{BoardSize: 9, WallsPerPawn: -1, StartSides: [2]Side{SideBottom, SideTop}})
	assert.Error(t, err)

	_, err = NewGame(Config{BoardSize: 9, WallsPerPawn: 10, StartSides: [2]Side{SideTop, SideTop}})
	assert.Error(t, err)
}

func TestValidMovesExcludesOpponent(t *testing.T) {
	game, err := NewGame(Config{BoardSize: 3, WallsPerPawn: 5, StartSides: [2]Side{SideBottom, SideTop}})
	require.NoError(t, err)

	// (1,0) and (1,2) start adjacent to the shared middle tile.
	require.True(t, game.MoveActing(NewTile(1, 1)))

	moves, err := game.ValidMoves(game.PawnFor(Player2).Position)
	require.NoError(t, err)
	assert.NotContains(t, moves, NewTile(1, 1))
	assert.Contains(t, moves, NewTile(0, 2))
	assert.Contains(t, moves, NewTile(2, 2))
}

func TestMoveActingFlipsTurn(t *testing.T) {
	game, err := NewGame(DefaultConfig())
	require.NoError(t, err)

	assert.False(t, game.MoveActing(NewTile(4, 2)), "two tiles away")
	assert.Equal(t, Player1, game.NowPlayer())

	require.True(t, game.MoveActing(NewTile(4, 1)))
	assert.Equal(t, NewTile(4, 1), game.PawnFor(Player1).Position)
	assert.Equal(t, Player2, game.NowPlayer())

	occupied, err := game.Grid().TileOccupied(NewTile(4, 0))
	require.NoError(t, err)
	assert.False(t, occupied, "vacated start tile")
}

func TestWinOnGoalEdge(t *testing.T) {
	game, err := NewGame(Config{BoardSize: 3, WallsPerPawn: 0, StartSides: [2]Side{SideBottom, SideTop}})
	require.NoError(t, err)

	require.True(t, game.MoveActing(NewTile(1, 1))) // Player1 up
	require.True(t, game.MoveActing(NewTile(0, 2))) // Player2 aside
	require.True(t, game.MoveActing(NewTile(1, 2))) // Player1 reaches the top edge

	require.True(t, game.Over())
	assert.Equal(t, game.PawnFor(Player1), game.Winner())
	assert.False(t, game.MoveActing(NewTile(0, 2)), "no moves after the match ends")
	assert.False(t, game.IsWallActionAllowed())
}

func TestReset(t *testing.T) {
	game, err := NewGame(DefaultConfig())
	require.NoError(t, err)

	require.True(t, game.MoveActing(NewTile(4, 1)))
	game.Grid().OccupyWall(NewWall(Horizontal, 0, 0))
	game.PawnFor(Player1).WallsRemaining--

	game.Reset()
	assert.Equal(t, NewTile(4, 0), game.PawnFor(Player1).Position)
	assert.Equal(t, 10, game.PawnFor(Player1).WallsRemaining)
	assert.Equal(t, Player1, game.NowPlayer())
	assert.Nil(t, game.Winner())
	for _, c := range NewWall(Horizontal, 0, 0).Cells() {
		assert.False(t, game.Grid().IsOccupied(c))
	}
}

func TestRestoreGame(t *testing.T) {
	config := DefaultConfig()
	w := NewWall(Vertical, 2, 3)
	pawns := [2]Pawn{
		{ID: 1, Position: NewTile(4, 3), Start: SideBottom, WallsRemaining: 9},
		{ID: 2, Position: NewTile(3, 6), Start: SideTop, WallsRemaining: 10},
	}

	game, err := RestoreGame(config, pawns, []Wall{w}, Player2)
	require.NoError(t, err)

	assert.Equal(t, NewTile(4, 3), game.PawnFor(Player1).Position)
	assert.Equal(t, 9, game.PawnFor(Player1).WallsRemaining)
	assert.Equal(t, Player2, game.NowPlayer())
	assert.Equal(t, []Wall{w}, game.Walls())
	for _, c := range w.Cells() {
		assert.True(t, game.Grid().IsOccupied(c))
	}

	occupied, err := game.Grid().TileOccupied(NewTile(4, 0))
	require.NoError(t, err)
	assert.False(t, occupied, "start tile released on restore")

	_, err = RestoreGame(config, pawns, []Wall{w, w}, Player2)
	assert.Error(t, err, "overlapping restored walls")

	_, err = RestoreGame(config, pawns, []Wall{NewWall(Horizontal, 8, 8)}, Player1)
	assert.Error(t, err, "out of bounds restored wall")
}

// A restored pawn may stand on the other pawn's construction-time start tile;
// occupancy must still mirror pawn presence exactly.
func TestRestoreGameOntoStartTiles(t *testing.T) {
	config := DefaultConfig()
	pawns := [2]Pawn{
		{ID: 1, Position: NewTile(4, 8), Start: SideBottom, WallsRemaining: 7},
		{ID: 2, Position: NewTile(3, 6), Start: SideTop, WallsRemaining: 9},
	}

	game, err := RestoreGame(config, pawns, nil, Player1)
	require.NoError(t, err)

	for x := 0; x < config.BoardSize; x++ {
		for y := 0; y < config.BoardSize; y++ {
			tile := NewTile(x, y)
			occupied, err := game.Grid().TileOccupied(tile)
			require.NoError(t, err)
			assert.Equal(t, tile == NewTile(4, 8) || tile == NewTile(3, 6), occupied, tile.String())
		}
	}
}

func TestRestoreGameRejectsSharedTile(t *testing.T) {
	pawns := [2]Pawn{
		{ID: 1, Position: NewTile(4, 4), Start: SideBottom, WallsRemaining: 10},
		{ID: 2, Position: NewTile(4, 4), Start: SideTop, WallsRemaining: 10},
	}
	_, err := RestoreGame(DefaultConfig(), pawns, nil, Player1)
	assert.Error(t, err)
}

func TestTurnChange(t *testing.T) {
	turn := Player1
	turn.Change()
	assert.Equal(t, Player2, turn)
	turn.Change()
	assert.Equal(t, Player1, turn)
}
