package main

import (
	"log"
	"time"

	_ "github.com/HuXin0817/pawns-and-walls/pkg/pprof"
)

const (
	OnceWorkingTime = 180                 // second
	SetExpireTime   = OnceWorkingTime * 3 // second
)

func main() {
	initConfig()
	ResultPusher.Start()

	for {
		nowPartition, err := GetFreePartition(RedisClient)
		if err != nil {
			log.Fatalln(err)
		}

		if err = OnceIntervalWorking(nowPartition); err != nil {
			log.Fatalln(err)
		}

		time.Sleep(time.Second)
	}
}
