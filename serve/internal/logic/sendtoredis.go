package logic

import (
	"github.com/HuXin0817/pawns-and-walls/pkg/models/message"
	"github.com/HuXin0817/pawns-and-walls/serve/internal/svc"
)

// SendDecisionRequests spreads pending requests over the redis partitions,
// always filling the currently shortest list first.
func SendDecisionRequests(svcCtx *svc.ServiceContext, requests ...message.DecisionRequest) (err error) {
	partitionListLen := make(map[message.RedisPartition]int)
	for _, p := range message.RedisPartitions {
		partitionListLen[p], err = svcCtx.RedisClient.Llen(p.ListKey())
		if err != nil {
			return err
		}
	}

	for _, req := range requests {
		minPartition := message.RedisPartition(-1)
		minLen := 0
		for p, length := range partitionListLen {
			if minPartition == -1 || length < minLen {
				minLen = length
				minPartition = p
			}
		}

		partitionListLen[minPartition]++
		svcCtx.PartitionPusher[minPartition].Add(req.String())
	}

	return nil
}
