package main

import (
	"flag"
	"fmt"

	"github.com/HuXin0817/pawns-and-walls/serve/internal/config"
	"github.com/HuXin0817/pawns-and-walls/serve/internal/handler"
	"github.com/HuXin0817/pawns-and-walls/serve/internal/svc"

	_ "github.com/HuXin0817/pawns-and-walls/pkg/pprof"
	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
)

var (
	configFile = flag.String("f", "etc/serve.yaml", "the config file")
	serveAddr  = flag.String("h", "0.0.0.0:8000", "the serve address")
)

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)
	ctx := svc.NewServiceContext(c)

	gin.SetMode(c.Mode)
	router := gin.New()
	router.Use(gin.Recovery())
	handler.RegisterHandlers(router, ctx)

	fmt.Printf("Starting serve at %s...\n", *serveAddr)
	logx.Must(router.Run(*serveAddr))
}
