package logic

import (
	"context"
	"strconv"
	"time"

	"github.com/HuXin0817/pawns-and-walls/pkg/models/message"
	"github.com/HuXin0817/pawns-and-walls/serve/internal/svc"
	"github.com/HuXin0817/pawns-and-walls/serve/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type PostTurnLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewPostTurnLogic(ctx context.Context, svcCtx *svc.ServiceContext) *PostTurnLogic {
	return &PostTurnLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// PostTurn records the committed action, advances the match's current step
// marker and, while the match runs, enqueues engine work for the next actor.
func (l *PostTurnLogic) PostTurn(in *types.TurnRequest) (*types.TurnResponse, error) {
	if in.Snapshot.Config.BoardSize > MaxBoardSize {
		return nil, BoardSizeOutOfRangeErr
	}

	if err := l.RecordInMongo(in); err != nil {
		return nil, err
	}

	if err := l.svcCtx.RedisClient.Setex(in.MatchUid, strconv.Itoa(in.Step), 3600); err != nil {
		return nil, err
	}

	if !in.MatchOver {
		req := message.DecisionRequest{
			TimeStamp: message.NewTimeStamp(time.Now()),
			MatchUid:  message.MatchUid(in.MatchUid),
			Step:      in.Step,
			Tier:      in.Tier,
			Snapshot:  in.Snapshot,
		}
		if err := SendDecisionRequests(l.svcCtx, req); err != nil {
			return nil, err
		}
	}

	return &types.TurnResponse{Recorded: true}, nil
}
