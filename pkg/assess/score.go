package assess

import (
	"math"

	"github.com/HuXin0817/pawns-and-walls/pkg/models/quoridor"
	"github.com/HuXin0817/pawns-and-walls/pkg/path"
)

// bestWall enumerates both orientations of every anchor within the tier's
// search radius of the opponent, simulates each legal candidate and scores
// the path-length shifts it causes. The tentative occupancy is always
// reverted before the next candidate.
func (d *Decider) bestWall(params Params, own, opp *quoridor.Pawn, ownLen, oppLen int) (best quoridor.Wall, bestScore float64, found bool) {
	grid := d.game.Grid()
	size := grid.Size()

	for x := 0; x < size-1; x++ {
		for y := 0; y < size-1; y++ {
			if quoridor.NewTile(x, y).ManhattanDistance(opp.Position) > params.SearchRadius {
				continue
			}
			for _, o := range []quoridor.Orientation{quoridor.Horizontal, quoridor.Vertical} {
				w := quoridor.NewWall(o, x, y)
				if !d.validator.CanPlace(w) {
					continue
				}

				ownAfter, oppAfter := ownLen, oppLen
				grid.WithTentativeWall(w, func() {
					ownAfter = d.finder.DistanceToGoal(own)
					oppAfter = d.finder.DistanceToGoal(opp)
				})
				ownInc := ownAfter - ownLen
				oppInc := oppAfter - oppLen

				score := 12*float64(oppInc) - 8*float64(ownInc)
				if oppInc >= 2 && ownInc <= 1 {
					score += 8
				}
				score += d.centrality(w)
				score += d.jitter(params.WallJitter)

				if !found || score > bestScore {
					best = w
					bestScore = score
					found = true
				}
			}
		}
	}
	return
}

// centrality rewards anchors near the board center, where a wall cuts more
// routes.
func (d *Decider) centrality(w quoridor.Wall) float64 {
	c := float64(d.game.Grid().Size()-1) / 2
	dist := math.Abs(float64(w.X)-c) + math.Abs(float64(w.Y)-c)
	return 0.25 * (2*c - dist)
}

// bestMove scores every legal single step: shorter remaining path dominates,
// center files beat edge files, and hugging the opponent costs a point.
// First-enumerated wins ties.
func (d *Decider) bestMove(params Params, own, opp *quoridor.Pawn) (best quoridor.Tile, bestScore float64, found bool) {
	moves, err := d.game.ValidMoves(own.Position)
	if err != nil {
		return 0, 0, false
	}

	centerFile := float64(d.game.Grid().Size()-1) / 2
	for _, to := range moves {
		after := quoridor.Pawn{Position: to, Start: own.Start}
		newLen := d.finder.DistanceToGoal(&after)
		if newLen == path.Unreachable {
			continue
		}

		score := -10 * float64(newLen)
		score += 2 * -math.Abs(float64(to.X())-centerFile)
		if to.ManhattanDistance(opp.Position) == 1 {
			score--
		}
		score += d.jitter(params.MoveJitter)

		if !found || score > bestScore {
			best = to
			bestScore = score
			found = true
		}
	}
	return
}
