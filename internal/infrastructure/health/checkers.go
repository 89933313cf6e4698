package health

import (
	"context"

	"github.com/avatarctic/admin-dashboard/internal/core/ports"
	"github.com/avatarctic/admin-dashboard/internal/infrastructure/dummyjson"
	"github.com/go-redis/redis/v8"
)

// upstreamHealthChecker pings the remote resource provider.
type upstreamHealthChecker struct{ client *dummyjson.Client }

func (u *upstreamHealthChecker) Name() string                    { return "upstream" }
func (u *upstreamHealthChecker) Check(ctx context.Context) error { return u.client.Ping(ctx) }

// redisHealthChecker wraps the redis client for health checks.
type redisHealthChecker struct{ client *redis.Client }

func (r *redisHealthChecker) Name() string                    { return "redis" }
func (r *redisHealthChecker) Check(ctx context.Context) error { return r.client.Ping(ctx).Err() }

// NewUpstreamHealthChecker creates a health checker for the upstream provider.
func NewUpstreamHealthChecker(client *dummyjson.Client) ports.HealthChecker {
	return &upstreamHealthChecker{client: client}
}

// NewRedisHealthChecker creates a health checker for Redis.
func NewRedisHealthChecker(client *redis.Client) ports.HealthChecker {
	return &redisHealthChecker{client: client}
}
