package config

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var RedisClient *redis.Client

// InitRedis connects to Redis. When Redis is unreachable the client stays nil
// and callers run without it.
func InitRedis() {
	var opt *redis.Options
	if AppConfig.RedisURL != "" {
		parsedOpt, err := redis.ParseURL(AppConfig.RedisURL)
		if err != nil {
			Logger.Warn("Failed to parse Redis URL, running without cache", zap.Error(err))
			return
		}
		opt = parsedOpt
	} else {
		opt = &redis.Options{
			Addr:     AppConfig.RedisAddr,
			Password: AppConfig.RedisPass,
			DB:       0,
		}
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		Logger.Warn("Redis connection failed, running without cache", zap.Error(err))
		_ = client.Close()
		return
	}

	RedisClient = client
	Logger.Info("Redis connected", zap.String("addr", opt.Addr))
}

func CloseRedis() {
	if RedisClient != nil {
		_ = RedisClient.Close()
	}
}
