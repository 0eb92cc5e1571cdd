package main

import (
	"fmt"
	"time"

	"github.com/HuXin0817/pawns-and-walls/pkg/models/message"
	"github.com/HuXin0817/pawns-and-walls/pkg/models/model"
	"github.com/HuXin0817/pawns-and-walls/pkg/models/pusher"
)

type ResultMessage struct {
	message.DecisionKey
	message.DecisionResult
	RollBackFunc func()
}

var ResultPushLockMap = make(map[string]*model.RedisLock)

var ResultPusher = pusher.NewPusher(pusher.WithPushInterval[ResultMessage](time.Second), pusher.WithPushLogic(func(results ...ResultMessage) error {
	for _, result := range results {
		keyStr := result.DecisionKey.String()

		if ResultPushLockMap[keyStr] == nil {
			ResultPushLockMap[keyStr] = model.NewLock(RedisClient, fmt.Sprintf("%s-Lock", keyStr))
			go func() {
				time.Sleep(time.Minute * 2)
				delete(ResultPushLockMap, keyStr)
			}()
		}

		err := ResultPushLockMap[keyStr].Do(func() error {
			if _, err := RedisClient.Sadd(keyStr, result.DecisionResult.String()); err != nil {
				return err
			}

			if err := RedisClient.Expire(keyStr, SetExpireTime); err != nil {
				result.RollBackFunc()
				return err
			}

			return nil
		})

		if err != nil {
			return err
		}
	}

	return nil
}))
