package types

import (
	"github.com/HuXin0817/pawns-and-walls/pkg/assess"
	"github.com/HuXin0817/pawns-and-walls/pkg/models/message"
)

// TurnRequest reports one committed action (or a match boundary) and carries
// the snapshot after it, so the engine can start thinking for the next
// actor.
type TurnRequest struct {
	MatchUid  string           `json:"MatchUid"`
	Step      int              `json:"Step"`
	Actor     string           `json:"Actor"`
	Kind      string           `json:"Kind"`
	Detail    string           `json:"Detail"`
	Tier      assess.Tier      `json:"Tier"`
	Snapshot  message.Snapshot `json:"Snapshot"`
	MatchOver bool             `json:"MatchOver"`
	Winner    string           `json:"Winner"`
}

type TurnResponse struct {
	Recorded bool `json:"Recorded"`
}

// DecisionRequest polls for the engine's verdict on (MatchUid, Step).
// WaitingTime counts the client's polling seconds; every 60th second the
// serve re-enqueues the work in case a worker dropped it.
type DecisionRequest struct {
	MatchUid    string           `json:"MatchUid"`
	Step        int              `json:"Step"`
	Tier        assess.Tier      `json:"Tier"`
	Snapshot    message.Snapshot `json:"Snapshot"`
	WaitingTime int              `json:"WaitingTime"`
}

type DecisionResponse struct {
	Found            bool          `json:"Found"`
	Action           assess.Action `json:"Action"`
	CalculatedNumber int           `json:"CalculatedNumber"`
}
