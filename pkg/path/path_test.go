package path

import (
	"testing"

	"github.com/HuXin0817/pawns-and-walls/pkg/models/quoridor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortestPathOpenBoard(t *testing.T) {
	grid := quoridor.NewGrid(9)
	finder := NewFinder(grid)

	route := finder.ShortestPath(quoridor.NewTile(4, 0), quoridor.NewTile(4, 8))
	require.Len(t, route, 9)
	assert.Equal(t, quoridor.NewTile(4, 0), route[0])
	assert.Equal(t, quoridor.NewTile(4, 8), route[8])
	for i := 1; i < len(route); i++ {
		assert.Equal(t, 1, route[i].ManhattanDistance(route[i-1]))
	}

	assert.Equal(t, 8, finder.ShortestPathLength(quoridor.NewTile(4, 0), quoridor.NewTile(4, 8)))
	assert.Equal(t, 0, finder.ShortestPathLength(quoridor.NewTile(4, 0), quoridor.NewTile(4, 0)))

	pawn := &quoridor.Pawn{ID: 1, Position: quoridor.NewTile(4, 0), Start: quoridor.SideBottom}
	assert.Equal(t, 8, finder.DistanceToGoal(pawn))
	assert.True(t, finder.HasPathToGoal(pawn))
}

func TestWallForcesDetour(t *testing.T) {
	grid := quoridor.NewGrid(9)
	finder := NewFinder(grid)
	from, to := quoridor.NewTile(4, 0), quoridor.NewTile(4, 2)

	require.Equal(t, 2, finder.ShortestPathLength(from, to))

	grid.OccupyWall(quoridor.NewWall(quoridor.Horizontal, 4, 0))
	assert.Equal(t, 4, finder.ShortestPathLength(from, to))
	assert.True(t, finder.PathExists(from, to))
	assert.True(t, finder.PathExists(to, from))
}

func TestSealedRegionUnreachable(t *testing.T) {
	grid := quoridor.NewGrid(9)
	finder := NewFinder(grid)

	// Seal {(0,0), (0,1)} into a pocket: a vertical wall on their right, a
	// horizontal wall over their top.
	grid.OccupyWall(quoridor.NewWall(quoridor.Vertical, 0, 0))
	grid.OccupyWall(quoridor.NewWall(quoridor.Horizontal, 0, 1))

	inside, outside := quoridor.NewTile(0, 0), quoridor.NewTile(5, 5)
	assert.False(t, finder.PathExists(inside, outside))
	assert.False(t, finder.PathExists(outside, inside))
	assert.True(t, finder.PathExists(inside, quoridor.NewTile(0, 1)))
	assert.Nil(t, finder.ShortestPath(inside, outside))
	assert.Equal(t, Unreachable, finder.ShortestPathLength(inside, outside))

	pawn := &quoridor.Pawn{ID: 1, Position: inside, Start: quoridor.SideBottom}
	assert.Equal(t, Unreachable, finder.DistanceToGoal(pawn))
	assert.False(t, finder.HasPathToGoal(pawn))
}

func TestGoalDistanceUsesNearestEdgeTile(t *testing.T) {
	grid := quoridor.NewGrid(9)
	finder := NewFinder(grid)

	// Block the straight column; the multi-target search slips past through
	// the neighbor file instead of aiming at (0,8) alone.
	grid.OccupyWall(quoridor.NewWall(quoridor.Horizontal, 0, 7))
	pawn := &quoridor.Pawn{ID: 1, Position: quoridor.NewTile(0, 0), Start: quoridor.SideBottom}
	assert.Equal(t, 10, finder.DistanceToGoal(pawn))
}

func TestInvalidTilesNeverRoute(t *testing.T) {
	grid := quoridor.NewGrid(9)
	finder := NewFinder(grid)

	assert.False(t, finder.PathExists(quoridor.NewTile(9, 0), quoridor.NewTile(0, 0)))
	assert.Nil(t, finder.ShortestPath(quoridor.NewTile(0, 0), quoridor.NewTile(0, 9)))
	pawn := &quoridor.Pawn{ID: 1, Position: quoridor.NewTile(9, 9), Start: quoridor.SideBottom}
	assert.Equal(t, Unreachable, finder.DistanceToGoal(pawn))
}
