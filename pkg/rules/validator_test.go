package rules

import (
	"testing"

	"github.com/HuXin0817/pawns-and-walls/pkg/models/quoridor"
	"github.com/HuXin0817/pawns-and-walls/pkg/path"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMatch(t *testing.T) (*quoridor.Game, *Validator) {
	t.Helper()
	game, err := quoridor.NewGame(quoridor.DefaultConfig())
	require.NoError(t, err)
	pawns := game.Pawns()
	validator := NewValidator(game.Grid(), path.NewFinder(game.Grid()), pawns[:], game)
	return game, validator
}

func TestPlaceWallCommitsAtomically(t *testing.T) {
	game, validator := newTestMatch(t)
	w := quoridor.NewWall(quoridor.Horizontal, 3, 3)

	require.True(t, validator.CanPlace(w))
	require.True(t, validator.PlaceWall(w))

	for _, c := range w.Cells() {
		assert.True(t, game.Grid().IsOccupied(c))
	}
	assert.Equal(t, 9, game.PawnFor(quoridor.Player1).WallsRemaining)
	assert.Equal(t, quoridor.Player2, game.NowPlayer())
	assert.Equal(t, []quoridor.Wall{w}, game.Walls())
}

func TestCrossingWallsRejected(t *testing.T) {
	game, validator := newTestMatch(t)
	h := quoridor.NewWall(quoridor.Horizontal, 3, 3)
	v := quoridor.NewWall(quoridor.Vertical, 3, 3)

	require.True(t, validator.PlaceWall(h))

	// The cross collides on the shared intersection cell.
	assert.False(t, validator.CanPlace(v))
	assert.False(t, validator.PlaceWall(v))

	// The rejection wrote nothing: the cross's own cells stay free.
	assert.False(t, game.Grid().IsOccupied(quoridor.NewCell(7, 6)))
	assert.False(t, game.Grid().IsOccupied(quoridor.NewCell(7, 8)))
	assert.Equal(t, []quoridor.Wall{h}, game.Walls())
	assert.Equal(t, 10, game.PawnFor(quoridor.Player2).WallsRemaining)
}

func TestDuplicateWallRejected(t *testing.T) {
	_, validator := newTestMatch(t)
	w := quoridor.NewWall(quoridor.Vertical, 5, 5)

	require.True(t, validator.PlaceWall(w))
	assert.False(t, validator.CanPlace(w))
	assert.False(t, validator.PlaceWall(w))
}

func TestTJunctionLegal(t *testing.T) {
	game, validator := newTestMatch(t)

	require.True(t, validator.PlaceWall(quoridor.NewWall(quoridor.Horizontal, 2, 2)))
	require.True(t, validator.PlaceWall(quoridor.NewWall(quoridor.Vertical, 2, 1)))
	assert.Len(t, game.Walls(), 2)
}

func TestWallBounds(t *testing.T) {
	_, validator := newTestMatch(t)

	assert.True(t, validator.CanPlace(quoridor.NewWall(quoridor.Horizontal, 7, 7)), "last in-range anchor")
	assert.True(t, validator.CanPlace(quoridor.NewWall(quoridor.Vertical, 0, 0)))
	assert.False(t, validator.CanPlace(quoridor.NewWall(quoridor.Horizontal, 8, 8)))
	assert.False(t, validator.CanPlace(quoridor.NewWall(quoridor.Vertical, -1, 3)))
	assert.False(t, validator.CanPlace(quoridor.NewWall(quoridor.Horizontal, 3, 8)))
}

// Sealing the acting pawn into a pocket must be rejected by the simulated
// placement, leaving the grid exactly as before.
func TestPathSealingWallRejected(t *testing.T) {
	game, validator := newTestMatch(t)

	// Player1 sits at (4,0). Two flanking walls leave one roof wall that
	// would close the pocket {(3,0), (4,0)}.
	require.True(t, validator.PlaceWall(quoridor.NewWall(quoridor.Vertical, 2, 0)))
	require.True(t, validator.PlaceWall(quoridor.NewWall(quoridor.Vertical, 4, 0)))

	roof := quoridor.NewWall(quoridor.Horizontal, 3, 0)
	assert.False(t, validator.CanPlace(roof))
	assert.False(t, validator.CanPlace(roof), "repeatable with identical answers")
	assert.False(t, validator.PlaceWall(roof))

	for _, c := range roof.Cells() {
		assert.False(t, game.Grid().IsOccupied(c), "simulation reverted cell %s", c)
	}
	assert.Equal(t, quoridor.Player1, game.NowPlayer())
	assert.Equal(t, 9, game.PawnFor(quoridor.Player1).WallsRemaining)
}

func TestWallBudgetGate(t *testing.T) {
	game, validator := newTestMatch(t)
	game.PawnFor(quoridor.Player1).WallsRemaining = 0

	assert.False(t, validator.CanPlace(quoridor.NewWall(quoridor.Horizontal, 3, 3)))

	// The budget gate binds per acting pawn: Player2 still may.
	require.True(t, game.MoveActing(quoridor.NewTile(4, 1)))
	assert.True(t, validator.CanPlace(quoridor.NewWall(quoridor.Horizontal, 3, 3)))
}
