package assess

import (
	"testing"

	"github.com/HuXin0817/pawns-and-walls/pkg/models/quoridor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Radius 1 around the opponent's start leaves exactly the (4,7) anchor in
// range, so the scores here are hand-computable with jitter off.
func TestBestWallScoreFormula(t *testing.T) {
	game, err := quoridor.NewGame(quoridor.DefaultConfig())
	require.NoError(t, err)
	d := NewSeededDecider(game, 1)

	own := game.PawnFor(quoridor.Player1)
	opp := game.PawnFor(quoridor.Player2)
	params := Params{SearchRadius: 1, WallJitter: 0}

	w, score, found := d.bestWall(params, own, opp, 8, 8)
	require.True(t, found)

	// The horizontal candidate forces both routes off the center file for one
	// extra step each: 12*1 - 8*1, plus centrality 0.25*(8-3) for the (4,7)
	// anchor. The vertical candidate shifts neither route and scores only the
	// 1.25 centrality, so horizontal wins.
	assert.Equal(t, quoridor.NewWall(quoridor.Horizontal, 4, 7), w)
	assert.InDelta(t, 5.25, score, 1e-9)

	for _, c := range w.Cells() {
		assert.False(t, game.Grid().IsOccupied(c), "scoring never commits")
	}
}

func TestBestMoveScoreFormula(t *testing.T) {
	pawns := [2]quoridor.Pawn{
		{ID: 1, Position: quoridor.NewTile(4, 6), Start: quoridor.SideBottom, WallsRemaining: 10},
		{ID: 2, Position: quoridor.NewTile(4, 8), Start: quoridor.SideTop, WallsRemaining: 10},
	}
	game, err := quoridor.RestoreGame(quoridor.DefaultConfig(), pawns, nil, quoridor.Player1)
	require.NoError(t, err)
	d := NewSeededDecider(game, 1)

	own := game.PawnFor(quoridor.Player1)
	opp := game.PawnFor(quoridor.Player2)

	to, score, found := d.bestMove(Params{MoveJitter: 0}, own, opp)
	require.True(t, found)

	// (4,7) is one step from the goal edge on the center file but hugs the
	// opponent: -10*1 + 2*0 - 1. The runners-up sit two steps out at -22.
	assert.Equal(t, quoridor.NewTile(4, 7), to)
	assert.InDelta(t, -11, score, 1e-9)
}

// The attempt boost keys on the acting pawn falling behind: a long own route
// saturates the probability, a short one adds nothing.
func TestWallUrgeGrowsWhenBehind(t *testing.T) {
	game, err := quoridor.NewGame(quoridor.DefaultConfig())
	require.NoError(t, err)
	d := NewSeededDecider(game, 1)
	own := game.PawnFor(quoridor.Player1)

	params := Params{BaseWallProbability: 0}
	assert.True(t, d.shouldAttemptWall(params, own, 28, 8))
	assert.False(t, d.shouldAttemptWall(params, own, 8, 28))
}
