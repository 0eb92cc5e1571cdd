package matchrecord

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var _ TurnRecordModel = (*defaultTurnRecordModel)(nil)

type TurnRecordModel interface {
	Insert(ctx context.Context, record *TurnRecord) error
	FindByMatch(ctx context.Context, matchUid string) ([]*TurnRecord, error)
}

type defaultTurnRecordModel struct {
	conn *mon.Model
}

// NewTurnRecordModel returns a model for the mongo.
func NewTurnRecordModel(url, db, collection string) TurnRecordModel {
	conn := mon.MustNewModel(url, db, collection)
	return &defaultTurnRecordModel{conn: conn}
}

func (m *defaultTurnRecordModel) Insert(ctx context.Context, record *TurnRecord) error {
	if record.ID.IsZero() {
		record.ID = primitive.NewObjectID()
		record.CreateAt = time.Now()
		record.UpdateAt = time.Now()
	}

	_, err := m.conn.InsertOne(ctx, record)
	return err
}

func (m *defaultTurnRecordModel) FindByMatch(ctx context.Context, matchUid string) ([]*TurnRecord, error) {
	records := make([]*TurnRecord, 0)
	err := m.conn.Find(ctx, &records, bson.M{"matchUid": matchUid})
	if err != nil {
		return nil, err
	}
	return records, nil
}
