package message

import "github.com/google/uuid"

type MatchUid string

func NewMatchUid() MatchUid {
	return MatchUid(uuid.New().String())
}
