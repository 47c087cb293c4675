// File: utils/cache.go
package utils

import (
	"context"
	"time"

	"vakeel/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// AuthCacheClient is the dedicated client for the logout revocation set.
// Nil when Redis is unavailable; revocation then degrades to the stateless
// "valid until natural expiry" behavior.
var AuthCacheClient *redis.Client

const revokedTokenPrefix = "revoked:"

// InitAuthCache initializes the Redis client for the revocation set. A
// failure is logged, not fatal: the store and signing secret are the only
// hard startup requirements.
func InitAuthCache() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		GetLogger().Warn("Redis unavailable; logout revocation disabled", zap.Error(err))
		return
	}
	AuthCacheClient = client
}

// RevokeAuthToken records a token hash in the revocation set for the token's
// remaining lifetime. No-op without Redis.
func RevokeAuthToken(ctx context.Context, tokenHash string, ttl time.Duration) error {
	if AuthCacheClient == nil || ttl <= 0 {
		return nil
	}
	return AuthCacheClient.Set(ctx, revokedTokenPrefix+tokenHash, "1", ttl).Err()
}

// IsAuthTokenRevoked reports whether a token hash is in the revocation set.
// Fails open: a Redis error is treated as not revoked.
func IsAuthTokenRevoked(ctx context.Context, tokenHash string) bool {
	if AuthCacheClient == nil {
		return false
	}
	n, err := AuthCacheClient.Exists(ctx, revokedTokenPrefix+tokenHash).Result()
	if err != nil {
		GetLogger().Warn("Revocation check failed; allowing token", zap.Error(err))
		return false
	}
	return n > 0
}
