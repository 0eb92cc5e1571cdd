package main

import (
	"flag"
	"strconv"

	"github.com/HuXin0817/pawns-and-walls/pkg/assess"
	"github.com/HuXin0817/pawns-and-walls/pkg/models/message"
	"github.com/HuXin0817/pawns-and-walls/pkg/models/model"
)

var (
	Tier1Conf     = flag.String("Tier1", "Normal", "Player1 tier, or Human")
	Tier2Conf     = flag.String("Tier2", "Normal", "Player2 tier, or Human")
	BoardSizeConf = flag.String("BoardSize", "9", "BoardSize")
	WallsConf     = flag.String("Walls", "10", "walls per pawn")
	RemoteConf    = flag.String("Remote", "OFF", "consult the remote engine")
	ServeConf     = flag.String("Serve", "127.0.0.1:8000", "serve address")

	BoardSize    int
	WallsPerPawn int
	Tier1        assess.Tier
	Tier2        assess.Tier
	Human1       bool
	Human2       bool
	Remote       model.Config
	ServeAddress string
	MatchUid     = message.NewMatchUid()
)

func initConfig() {
	flag.Parse()
	Tier1 = assess.ParseTier(*Tier1Conf)
	Tier2 = assess.ParseTier(*Tier2Conf)
	Human1 = *Tier1Conf == "Human"
	Human2 = *Tier2Conf == "Human"
	Remote = model.NewConfig(*RemoteConf)
	ServeAddress = *ServeConf

	var err error
	BoardSize, err = strconv.Atoi(*BoardSizeConf)
	if err != nil {
		panic(err)
	}
	WallsPerPawn, err = strconv.Atoi(*WallsConf)
	if err != nil {
		panic(err)
	}
}
