package message

import (
	"github.com/HuXin0817/pawns-and-walls/pkg/assess"
	"github.com/bytedance/sonic"
)

// DecisionRequest asks the engine to choose one action for the acting pawn
// of the snapshot at the given tier. Step is the number of committed actions
// so far; stale requests are dropped by comparing it against the match's
// current step.
type DecisionRequest struct {
	TimeStamp
	MatchUid
	Step     int         `json:"Step"`
	Tier     assess.Tier `json:"Tier"`
	Snapshot Snapshot    `json:"Snapshot"`
}

func NewDecisionRequest(str string) (newDecisionRequest DecisionRequest, err error) {
	err = sonic.UnmarshalString(str, &newDecisionRequest)
	return
}

func (r DecisionRequest) String() string {
	str, _ := sonic.MarshalString(r)
	return str
}

// DecisionKey addresses the cached results for one (match, step).
type DecisionKey struct {
	MatchUid
	Step int
}

func (k DecisionKey) String() string {
	str, _ := sonic.MarshalString(k)
	return str
}

// DecisionHandledKey marks a request as already worked so partitions do not
// recompute it.
type DecisionHandledKey struct {
	MatchUid
	Step int
	Tier assess.Tier
}

func (k *DecisionHandledKey) String() string {
	str, _ := sonic.MarshalString(k)
	return str
}

type DecisionResult struct {
	Action assess.Action `json:"Action"`
	Tier   assess.Tier   `json:"Tier"`
}

func NewDecisionResult(s string) (newDecisionResult DecisionResult) {
	_ = sonic.UnmarshalString(s, &newDecisionResult)
	return
}

func (r DecisionResult) String() string {
	str, _ := sonic.MarshalString(r)
	return str
}
