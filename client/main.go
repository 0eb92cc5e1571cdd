package main

import (
	"fmt"
	"log"
	"time"

	"github.com/HuXin0817/pawns-and-walls/pkg/assess"
	"github.com/HuXin0817/pawns-and-walls/pkg/models/model"
	"github.com/HuXin0817/pawns-and-walls/pkg/models/quoridor"
	"github.com/HuXin0817/pawns-and-walls/pkg/path"
	"github.com/HuXin0817/pawns-and-walls/pkg/rules"
	"github.com/logrusorgru/aurora"
)

func main() {
	initConfig()

	game, err := quoridor.NewGame(quoridor.Config{
		BoardSize:    BoardSize,
		WallsPerPawn: WallsPerPawn,
		StartSides:   [2]quoridor.Side{quoridor.SideBottom, quoridor.SideTop},
	})
	if err != nil {
		log.Panicln(err)
	}

	pawns := game.Pawns()
	validator := rules.NewValidator(game.Grid(), path.NewFinder(game.Grid()), pawns[:], game)
	session := rules.NewSession(validator, game)

	fmt.Printf("Match %v on a %dx%d board: %v vs %v\n",
		MatchUid, BoardSize, BoardSize, aurora.Green(*Tier1Conf), aurora.Red(*Tier2Conf))
	postMatchStart(game)

	step := 0
	for !game.Over() {
		step++
		actor := game.NowPlayer()

		var action assess.Action
		if humanFor(actor) {
			action = humanAction(game, session)
		} else {
			action = nextAction(game, validator, tierFor(actor), step)
		}
		if action.Kind == assess.ActionNone {
			fmt.Println("no legal action remains, match abandoned")
			break
		}

		report(step, actor, action)
		postTurn(game, actor, action, step)
		time.Sleep(time.Second / 2)
	}

	if winner := game.Winner(); winner != nil {
		t := winnerTurn(game, winner)
		fmt.Printf("%v wins at %s\n", colorize(t, t.String()), winner.Position)
		postMatchEnd(game, winner, step+1)
	}
}

func tierFor(t quoridor.Turn) assess.Tier {
	if t == quoridor.Player1 {
		return Tier1
	}
	return Tier2
}

func winnerTurn(game *quoridor.Game, winner *quoridor.Pawn) quoridor.Turn {
	if winner == game.PawnFor(quoridor.Player1) {
		return quoridor.Player1
	}
	return quoridor.Player2
}

// nextAction resolves one turn: ask the remote engine first when configured,
// fall back to deciding locally whenever the engine is silent or its answer
// no longer applies to the live game.
func nextAction(game *quoridor.Game, validator *rules.Validator, tier assess.Tier, step int) assess.Action {
	if Remote == model.On {
		if action, ok := inquireDecision(game, tier, step-1); ok {
			if applyRemote(game, validator, action) {
				return action
			}
			log.Println("remote action no longer legal, deciding locally")
		}
	}
	return assess.DecideAndAct(game, tier)
}

func applyRemote(game *quoridor.Game, validator *rules.Validator, action assess.Action) bool {
	switch action.Kind {
	case assess.ActionWall:
		return validator.PlaceWall(action.Wall)
	case assess.ActionMove:
		return game.MoveActing(action.Move)
	}
	return false
}

func report(step int, actor quoridor.Turn, action assess.Action) {
	switch action.Kind {
	case assess.ActionWall:
		fmt.Printf("#%03d %v walls %s\n", step, colorize(actor, actor.String()), action.Wall)
	case assess.ActionMove:
		fmt.Printf("#%03d %v moves to %s\n", step, colorize(actor, actor.String()), action.Move)
	}
}

func colorize(t quoridor.Turn, s string) aurora.Value {
	if t == quoridor.Player1 {
		return aurora.Green(s)
	}
	return aurora.Red(s)
}
