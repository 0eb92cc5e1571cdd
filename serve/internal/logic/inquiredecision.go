package logic

import (
	"context"
	"time"

	"github.com/HuXin0817/pawns-and-walls/pkg/assess"
	"github.com/HuXin0817/pawns-and-walls/pkg/models/message"
	"github.com/HuXin0817/pawns-and-walls/serve/internal/svc"
	"github.com/HuXin0817/pawns-and-walls/serve/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type InquireDecisionLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewInquireDecisionLogic(ctx context.Context, svcCtx *svc.ServiceContext) *InquireDecisionLogic {
	return &InquireDecisionLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// BestResult picks the highest-scoring committed action among the cached
// engine results.
func BestResult(members []string) (best message.DecisionResult, found bool) {
	for _, m := range members {
		r := message.NewDecisionResult(m)
		if r.Action.Kind == assess.ActionNone {
			continue
		}
		if !found || r.Action.Score > best.Action.Score {
			best = r
			found = true
		}
	}
	return
}

func (l *InquireDecisionLogic) InquireDecision(in *types.DecisionRequest) (*types.DecisionResponse, error) {
	if in.Snapshot.Config.BoardSize > MaxBoardSize {
		return nil, BoardSizeOutOfRangeErr
	}

	key := message.DecisionKey{
		MatchUid: message.MatchUid(in.MatchUid),
		Step:     in.Step,
	}

	members, err := l.svcCtx.RedisClient.Smembers(key.String())
	if err != nil {
		return nil, err
	}

	// A worker may have died holding this request; re-enqueue once a minute
	// of waiting.
	if len(members) == 0 && in.WaitingTime != 0 && in.WaitingTime%60 == 0 {
		req := message.DecisionRequest{
			TimeStamp: message.NewTimeStamp(time.Now()),
			MatchUid:  message.MatchUid(in.MatchUid),
			Step:      in.Step,
			Tier:      in.Tier,
			Snapshot:  in.Snapshot,
		}
		if err = SendDecisionRequests(l.svcCtx, req); err != nil {
			return nil, err
		}
	}

	best, found := BestResult(members)

	// Last resort after long silence: answer with a shallow local decision so
	// the match never stalls on a dead engine fleet.
	if !found && in.WaitingTime >= 90 {
		if game, restoreErr := in.Snapshot.Restore(); restoreErr == nil {
			if action := assess.DecideAndAct(game, assess.TierNovice); action.Kind != assess.ActionNone {
				l.Infof("local fallback decision for match %s step %d", in.MatchUid, in.Step)
				best.Action = action
				found = true
			}
		}
	}

	return &types.DecisionResponse{
		Found:            found,
		Action:           best.Action,
		CalculatedNumber: len(members),
	}, nil
}
