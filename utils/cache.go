// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"fixify/config"

	"github.com/go-redis/redis/v8"
)

// HoldCacheClient backs short-lived slot holds taken during checkout.
var HoldCacheClient *redis.Client

// InitHoldCache initializes the Redis client used for slot holds.
func InitHoldCache() {
	HoldCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisHoldDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := HoldCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Hold Cache): %v", err)
	}
}

// GetHoldCacheClient returns the slot-hold cache client.
func GetHoldCacheClient() *redis.Client {
	if HoldCacheClient == nil {
		InitHoldCache()
	}
	return HoldCacheClient
}
