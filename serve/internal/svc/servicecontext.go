package svc

import (
	"fmt"

	"github.com/HuXin0817/pawns-and-walls/pkg/env"
	"github.com/HuXin0817/pawns-and-walls/pkg/models/message"
	"github.com/HuXin0817/pawns-and-walls/pkg/models/model"
	"github.com/HuXin0817/pawns-and-walls/pkg/models/pusher"
	"github.com/HuXin0817/pawns-and-walls/serve/internal/config"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

type ServiceContext struct {
	Config          config.Config
	RedisClient     *redis.Redis
	PartitionPusher map[message.RedisPartition]*pusher.Pusher[string]
}

func NewServiceContext(c config.Config) *ServiceContext {
	if c.Redis.Pass == "" {
		c.Redis.Pass = env.RedisPassWord
	}

	if c.MongoConf.PassWord == "" {
		c.MongoConf.PassWord = env.MongoPassWord
	}

	c.MongoConf.Url = fmt.Sprintf(c.MongoConf.Url, c.MongoConf.PassWord)

	partitionPushLock := make(map[message.RedisPartition]*model.RedisLock)

	svcCtx := &ServiceContext{
		Config:          c,
		RedisClient:     redis.MustNewRedis(c.Redis),
		PartitionPusher: make(map[message.RedisPartition]*pusher.Pusher[string]),
	}

	for _, redisPartition := range message.RedisPartitions {
		redisPartition := redisPartition
		partitionPushLock[redisPartition] = model.NewLock(svcCtx.RedisClient, redisPartition.LockName())

		svcCtx.PartitionPusher[redisPartition] = pusher.NewPusher(pusher.WithPushLogic(func(pushMessages ...string) error {
			if len(pushMessages) == 0 {
				return nil
			}

			return partitionPushLock[redisPartition].Do(func() (err error) {
				var messages []any
				for _, m := range pushMessages {
					messages = append(messages, m)
				}

				if _, err = svcCtx.RedisClient.Lpush(redisPartition.ListKey(), messages...); err != nil {
					return err
				}

				partitionLength, err := svcCtx.RedisClient.Llen(redisPartition.ListKey())
				if err != nil {
					return err
				}

				if err = svcCtx.RedisClient.Expire(redisPartition.ListKey(), 120*partitionLength); err != nil {
					return err
				}

				return nil
			})
		}))

		svcCtx.PartitionPusher[redisPartition].Start()
	}

	return svcCtx
}
