package env

import "os"

var (
	RedisPassWord = os.Getenv("REDIS_PASSWORD")
	MongoPassWord = os.Getenv("MONGO_PASSWORD")
)
