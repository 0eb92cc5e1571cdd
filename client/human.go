package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/HuXin0817/pawns-and-walls/pkg/assess"
	"github.com/HuXin0817/pawns-and-walls/pkg/models/quoridor"
	"github.com/HuXin0817/pawns-and-walls/pkg/rules"
)

var stdin = bufio.NewScanner(os.Stdin)

func humanFor(t quoridor.Turn) bool {
	if t == quoridor.Player1 {
		return Human1
	}
	return Human2
}

// humanAction prompts until one action commits:
//
//	m X Y      step to tile (X, Y)
//	w h|v X Y  place a wall anchored at tile (X, Y)
func humanAction(game *quoridor.Game, session *rules.Session) assess.Action {
	actor := game.NowPlayer()
	pawn := game.CurrentActingPawn()

	for {
		fmt.Printf("%v at %s, %d walls> ", colorize(actor, actor.String()), pawn.Position, pawn.WallsRemaining)
		if !stdin.Scan() {
			return assess.Action{Kind: assess.ActionNone}
		}
		fields := strings.Fields(stdin.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "m":
			if len(fields) != 3 {
				fmt.Println("usage: m X Y")
				continue
			}
			x, errX := strconv.Atoi(fields[1])
			y, errY := strconv.Atoi(fields[2])
			if errX != nil || errY != nil || x < 0 || y < 0 {
				fmt.Println("usage: m X Y")
				continue
			}
			to := quoridor.NewTile(x, y)
			if !game.MoveActing(to) {
				fmt.Printf("illegal move to %s\n", to)
				continue
			}
			return assess.Action{Kind: assess.ActionMove, Move: to}

		case "w":
			if len(fields) != 4 {
				fmt.Println("usage: w h|v X Y")
				continue
			}
			var orientation quoridor.Orientation
			switch fields[1] {
			case "h":
				orientation = quoridor.Horizontal
			case "v":
				orientation = quoridor.Vertical
			default:
				fmt.Println("usage: w h|v X Y")
				continue
			}
			x, errX := strconv.Atoi(fields[2])
			y, errY := strconv.Atoi(fields[3])
			if errX != nil || errY != nil {
				fmt.Println("usage: w h|v X Y")
				continue
			}
			w := quoridor.NewWall(orientation, x, y)

			if !session.Begin() {
				fmt.Println("no wall placement available")
				continue
			}
			if !session.Select(w) {
				fmt.Printf("illegal wall %s\n", w)
				session.Cancel()
				continue
			}
			if session.Commit() {
				return assess.Action{Kind: assess.ActionWall, Wall: w}
			}
			fmt.Printf("wall %s rejected\n", w)

		default:
			fmt.Println("commands: m X Y | w h|v X Y")
		}
	}
}
