package main

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/HuXin0817/pawns-and-walls/pkg/assess"
	"github.com/HuXin0817/pawns-and-walls/pkg/models/message"
)

func RollBack(listKey, m string) {
	for i := 0; i < 20; i++ {
		if _, err := RedisClient.Lpush(listKey, m); err != nil {
			time.Sleep(time.Second / 2)
		} else {
			return
		}
	}
}

// OnceIntervalWorking drains one claimed partition: each pending request is
// skipped if already handled or stale, otherwise the snapshot is restored
// into a local game, the decision runs at the requested tier and the result
// goes out through the pusher.
func OnceIntervalWorking(nowPartition message.RedisPartition) (err error) {
	log.Printf("Start Working At Partition: %d\n", nowPartition)

	defer func() {
		if _, err = RedisClient.Del(nowPartition.OwnerKey()); err != nil {
			log.Panicf("Expire Error: %s\n", err)
		}
	}()

	for {
		if err = RedisClient.Expire(nowPartition.OwnerKey(), OnceWorkingTime); err != nil {
			return err
		}

		l, err := RedisClient.Llen(nowPartition.ListKey())
		if err != nil {
			return err
		}

		if l == 0 {
			return nil
		}

		m, err := RedisClient.Rpop(nowPartition.ListKey())
		if err != nil {
			return err
		}

		if m == "" {
			continue
		}

		fmt.Printf("=> %s\n", m)
		req, err := message.NewDecisionRequest(m)
		if err != nil {
			return err
		}

		handledKey := message.DecisionHandledKey{
			MatchUid: req.MatchUid,
			Step:     req.Step,
			Tier:     req.Tier,
		}

		b, err := RedisClient.Get(handledKey.String())
		if err != nil {
			return err
		}

		if b != "" {
			continue
		}

		nowStep, err := RedisClient.Get(string(req.MatchUid))
		if err != nil {
			RollBack(nowPartition.ListKey(), m)
			return err
		}

		if nowStep == "" {
			continue
		}

		if step, _ := strconv.Atoi(nowStep); step != req.Step {
			continue
		}

		game, err := req.Snapshot.Restore()
		if err != nil {
			log.Printf("drop unrestorable snapshot: %s\n", err)
			continue
		}

		action := assess.DecideAndAct(game, req.Tier)

		decisionKey := message.DecisionKey{
			MatchUid: req.MatchUid,
			Step:     req.Step,
		}

		ResultPusher.Add(ResultMessage{
			DecisionKey: decisionKey,
			DecisionResult: message.DecisionResult{
				Action: action,
				Tier:   req.Tier,
			},
			RollBackFunc: func() {
				RollBack(nowPartition.ListKey(), m)
			},
		})

		if err = RedisClient.Expire(decisionKey.String(), SetExpireTime); err != nil {
			return err
		}

		if err = RedisClient.Setex(handledKey.String(), action.Kind.String(), 240); err != nil {
			return err
		}
	}
}
