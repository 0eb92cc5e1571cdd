package config

import "github.com/zeromicro/go-zero/core/stores/redis"

type Config struct {
	Mode  string `json:",default=release"`
	Redis redis.RedisConf

	MongoConf struct {
		Url          string
		DataBaseName string
		PassWord     string `json:",optional"`
	}
}
