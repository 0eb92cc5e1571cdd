// Package rules decides which walls may be committed and drives the
// select-then-commit placement interaction. It owns the only write path for
// wall occupancy; presentation and AI code never touch the grid directly.
package rules

import (
	"log"

	"github.com/HuXin0817/pawns-and-walls/pkg/models/quoridor"
	"github.com/HuXin0817/pawns-and-walls/pkg/path"
)

// TurnController is the turn/game-flow collaborator the rules consume. It is
// injected explicitly, never looked up ambiently. NotifyMoveCommitted and
// NotifyWallCommitted own ending the turn.
type TurnController interface {
	CurrentActingPawn() *quoridor.Pawn
	IsMoveActionAllowed() bool
	IsWallActionAllowed() bool
	WallsRemaining(pawnID int) int
	NotifyMoveCommitted(p *quoridor.Pawn, to quoridor.Tile)
	NotifyWallCommitted(p *quoridor.Pawn, w quoridor.Wall)
}

type Validator struct {
	grid   *quoridor.Grid
	finder *path.Finder
	pawns  []*quoridor.Pawn
	turns  TurnController
}

func NewValidator(grid *quoridor.Grid, finder *path.Finder, pawns []*quoridor.Pawn, turns TurnController) *Validator {
	return &Validator{
		grid:   grid,
		finder: finder,
		pawns:  pawns,
		turns:  turns,
	}
}

// CanPlace answers whether the acting pawn may commit w right now. A false
// answer is a normal negative, never an error. Checks short-circuit in
// order: wall budget and turn gate, bounds, the 3 target cells' occupancy
// (which alone rejects duplicates and crossings, since crossings collide on
// the shared intersection), and finally path preservation for every pawn
// under a tentative placement that is always reverted.
func (v *Validator) CanPlace(w quoridor.Wall) bool {
	acting := v.turns.CurrentActingPawn()
	if !v.turns.IsWallActionAllowed() || v.turns.WallsRemaining(acting.ID) <= 0 {
		return false
	}

	if !v.grid.WallInBounds(w) {
		return false
	}

	for _, c := range w.Cells() {
		if v.grid.IsOccupied(c) {
			return false
		}
	}

	open := true
	v.grid.WithTentativeWall(w, func() {
		for _, p := range v.pawns {
			if !v.finder.HasPathToGoal(p) {
				open = false
				return
			}
		}
	})
	return open
}

// PlaceWall re-validates and commits: the 3 cells are written together and
// the acting pawn's budget decremented, or nothing happens at all. Mutation
// is turn-serialized, so a commit failing after its own positive CanPlace is
// an invariant violation and escalates loudly.
func (v *Validator) PlaceWall(w quoridor.Wall) bool {
	if !v.CanPlace(w) {
		return false
	}

	for _, c := range w.Cells() {
		if v.grid.IsOccupied(c) {
			log.Panicf("rules: wall %s occupied after positive CanPlace", w)
		}
	}

	acting := v.turns.CurrentActingPawn()
	v.grid.OccupyWall(w)
	acting.WallsRemaining--
	v.turns.NotifyWallCommitted(acting, w)
	return true
}
