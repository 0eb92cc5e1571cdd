package matchrecord

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	KindMatchStart = "MatchStart"
	KindMove       = "Move"
	KindWall       = "Wall"
	KindMatchEnd   = "MatchEnd"
)

// TurnRecord is one committed action (or match boundary) in a match's
// history collection.
type TurnRecord struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UpdateAt time.Time          `bson:"updateAt,omitempty" json:"updateAt,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`

	MatchUid string `bson:"matchUid"`
	Step     int    `bson:"step"`
	Actor    string `bson:"actor"`
	Kind     string `bson:"kind"`
	Detail   string `bson:"detail"`
}
