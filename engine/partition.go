package main

import (
	"time"

	"github.com/HuXin0817/pawns-and-walls/pkg/models/message"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

// GetFreePartition blocks until some partition has pending work and no live
// owner, then claims it with an expiring owner key.
func GetFreePartition(RedisClient *redis.Redis) (partition message.RedisPartition, err error) {
	for {
		for _, p := range message.RedisPartitions {
			owner, err := RedisClient.Get(p.OwnerKey())
			if err != nil {
				return -1, err
			}

			length, err := RedisClient.Llen(p.ListKey())
			if err != nil {
				return -1, err
			}

			if owner == "" && length > 0 {
				if err = RedisClient.Setex(p.OwnerKey(), string(message.NewTimeStamp(time.Now())), 600); err != nil {
					return -1, err
				}
				return p, nil
			}

			time.Sleep(time.Second)
		}
	}
}
