package logic

import (
	"github.com/HuXin0817/pawns-and-walls/pkg/models/matchrecord"
	"github.com/HuXin0817/pawns-and-walls/serve/types"
)

// RecordInMongo appends the turn to the match's history collection. Each
// match records into its own collection named by its uid.
func (l *PostTurnLogic) RecordInMongo(in *types.TurnRequest) (err error) {
	ctx := l.ctx
	mongoUrl := l.svcCtx.Config.MongoConf.Url
	mongoDataBaseName := l.svcCtx.Config.MongoConf.DataBaseName

	record := &matchrecord.TurnRecord{
		MatchUid: in.MatchUid,
		Step:     in.Step,
		Actor:    in.Actor,
		Kind:     in.Kind,
		Detail:   in.Detail,
	}

	if in.MatchOver {
		record.Kind = matchrecord.KindMatchEnd
		record.Detail = in.Winner
	}

	mongoConn := matchrecord.NewTurnRecordModel(mongoUrl, mongoDataBaseName, in.MatchUid)
	if err = mongoConn.Insert(ctx, record); err != nil {
		return err
	}

	return nil
}
