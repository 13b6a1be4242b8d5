package config

import (
	"context"
	"strconv"
	"time"

	"rhea-backend/internal/utils"

	"github.com/gofiber/fiber/v2/log"
	"github.com/redis/go-redis/v9"
)

// NewRedisClient returns nil when REDIS_ADDR is unset or the server does not
// answer a ping. Callers then run without the generation lock.
func NewRedisClient() *redis.Client {
	addr := utils.GetConfig("REDIS_ADDR")
	if addr == "" {
		return nil
	}

	dbNum := 0
	if dbStr := utils.GetConfig("REDIS_DB"); dbStr != "" {
		if n, err := strconv.Atoi(dbStr); err == nil {
			dbNum = n
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: utils.GetConfig("REDIS_PASSWORD"),
		DB:       dbNum,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warnw("redis unavailable, generation lock disabled", "addr", addr, "error", err)
		_ = client.Close()
		return nil
	}
	return client
}
