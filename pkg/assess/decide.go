// Package assess is the opponent decision module: it evaluates candidate
// walls and moves against the live game through the validated commit paths
// and picks one action per turn according to a difficulty tier.
package assess

import (
	"log"
	"math/rand"
	"time"

	"github.com/HuXin0817/pawns-and-walls/pkg/models/quoridor"
	"github.com/HuXin0817/pawns-and-walls/pkg/path"
	"github.com/HuXin0817/pawns-and-walls/pkg/rules"
)

type Decider struct {
	game      *quoridor.Game
	finder    *path.Finder
	validator *rules.Validator
	rand      *rand.Rand
}

func NewDecider(game *quoridor.Game) *Decider {
	return NewSeededDecider(game, time.Now().UnixNano())
}

func NewSeededDecider(game *quoridor.Game, seed int64) *Decider {
	pawns := game.Pawns()
	finder := path.NewFinder(game.Grid())
	return &Decider{
		game:      game,
		finder:    finder,
		validator: rules.NewValidator(game.Grid(), finder, pawns[:], game),
		rand:      rand.New(rand.NewSource(seed)),
	}
}

// DecideAndAct runs one synchronous decision cycle for the acting pawn and
// commits the chosen action. It never faults on an empty option set: with no
// legal action it returns ActionNone and leaves the state untouched.
func DecideAndAct(game *quoridor.Game, tier Tier) Action {
	return NewDecider(game).DecideAndAct(tier)
}

func (d *Decider) DecideAndAct(tier Tier) Action {
	if !d.game.IsMoveActionAllowed() && !d.game.IsWallActionAllowed() {
		return Action{Kind: ActionNone}
	}

	params := ParamsFor(tier)
	own := d.game.CurrentActingPawn()
	opp := d.game.OpponentOf(own)
	ownLen := d.finder.DistanceToGoal(own)
	oppLen := d.finder.DistanceToGoal(opp)

	if d.shouldAttemptWall(params, own, ownLen, oppLen) {
		if w, score, found := d.bestWall(params, own, opp, ownLen, oppLen); found && params.Qualifies(score) {
			if !d.validator.PlaceWall(w) {
				log.Panicf("assess: wall %s failed to commit after qualifying", w)
			}
			return Action{Kind: ActionWall, Wall: w, Score: score}
		}
	}

	if to, score, found := d.bestMove(params, own, opp); found {
		if !d.game.MoveActing(to) {
			log.Panicf("assess: move to %s failed to commit after qualifying", to)
		}
		return Action{Kind: ActionMove, Move: to, Score: score}
	}

	return Action{Kind: ActionNone}
}

// shouldAttemptWall rolls the per-turn wall attempt: the baseline tier
// probability plus a boost that grows as the acting pawn falls behind on
// path length.
func (d *Decider) shouldAttemptWall(params Params, own *quoridor.Pawn, ownLen, oppLen int) bool {
	if own.WallsRemaining <= 0 || !d.game.IsWallActionAllowed() {
		return false
	}
	if ownLen == path.Unreachable || oppLen == path.Unreachable {
		return false
	}
	p := params.BaseWallProbability + clamp01(0.05*float64(ownLen-oppLen))
	return d.rand.Float64() < p
}

func (d *Decider) jitter(amplitude float64) float64 {
	if amplitude == 0 {
		return 0
	}
	return (d.rand.Float64()*2 - 1) * amplitude
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
