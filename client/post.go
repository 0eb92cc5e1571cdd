package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/HuXin0817/pawns-and-walls/pkg/assess"
	"github.com/HuXin0817/pawns-and-walls/pkg/models/matchrecord"
	"github.com/HuXin0817/pawns-and-walls/pkg/models/message"
	"github.com/HuXin0817/pawns-and-walls/pkg/models/model"
	"github.com/HuXin0817/pawns-and-walls/pkg/models/quoridor"
	"github.com/HuXin0817/pawns-and-walls/serve/types"
	"github.com/bytedance/sonic"
)

const MaxWaitingSeconds = 120

var httpClient = &http.Client{Timeout: time.Second * 10}

func postJSON(path string, in any, out any) error {
	body, err := sonic.Marshal(in)
	if err != nil {
		return err
	}

	resp, err := httpClient.Post(fmt.Sprintf("http://%s%s", ServeAddress, path), "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("client: %s answered %s", path, resp.Status)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return sonic.Unmarshal(respBody, out)
}

func postMatchStart(game *quoridor.Game) {
	if Remote == model.Off {
		return
	}

	req := &types.TurnRequest{
		MatchUid: string(MatchUid),
		Step:     0,
		Kind:     matchrecord.KindMatchStart,
		Tier:     tierFor(game.NowPlayer()),
		Snapshot: message.NewSnapshot(game),
	}
	var resp types.TurnResponse
	if err := postJSON("/match/turn", req, &resp); err != nil {
		log.Println(err)
	}
}

// postTurn reports the committed action with the snapshot after it, so the
// engine starts thinking for the next actor.
func postTurn(game *quoridor.Game, actor quoridor.Turn, action assess.Action, step int) {
	if Remote == model.Off {
		return
	}

	req := &types.TurnRequest{
		MatchUid: string(MatchUid),
		Step:     step,
		Actor:    actor.String(),
		Tier:     tierFor(game.NowPlayer()),
		Snapshot: message.NewSnapshot(game),
	}
	switch action.Kind {
	case assess.ActionWall:
		req.Kind = matchrecord.KindWall
		req.Detail = action.Wall.String()
	case assess.ActionMove:
		req.Kind = matchrecord.KindMove
		req.Detail = action.Move.String()
	}

	var resp types.TurnResponse
	if err := postJSON("/match/turn", req, &resp); err != nil {
		log.Println(err)
	}
}

func postMatchEnd(game *quoridor.Game, winner *quoridor.Pawn, step int) {
	if Remote == model.Off {
		return
	}

	req := &types.TurnRequest{
		MatchUid:  string(MatchUid),
		Step:      step,
		Snapshot:  message.NewSnapshot(game),
		MatchOver: true,
		Winner:    winnerTurn(game, winner).String(),
	}
	var resp types.TurnResponse
	if err := postJSON("/match/turn", req, &resp); err != nil {
		log.Println(err)
	}
}

// inquireDecision polls the serve for the engine's verdict on (MatchUid,
// step), showing progress while it waits. A false return means the caller
// should decide locally.
func inquireDecision(game *quoridor.Game, tier assess.Tier, step int) (assess.Action, bool) {
	bar := model.NewBar(MaxWaitingSeconds, "Waiting Engine...")
	defer bar.Close()

	for waitingTime := 0; waitingTime < MaxWaitingSeconds; waitingTime++ {
		req := &types.DecisionRequest{
			MatchUid:    string(MatchUid),
			Step:        step,
			Tier:        tier,
			Snapshot:    message.NewSnapshot(game),
			WaitingTime: waitingTime,
		}

		var resp types.DecisionResponse
		if err := postJSON("/decision", req, &resp); err != nil {
			log.Println(err)
			return assess.Action{}, false
		}
		if resp.Found {
			fmt.Println()
			return resp.Action, true
		}

		bar.Add(1)
		time.Sleep(time.Second)
	}

	fmt.Println()
	return assess.Action{}, false
}
