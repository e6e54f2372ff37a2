package syncserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/jasonschulke/mooove/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel/attribute"
)

const redisSnapshotKeyPrefix = "mooove||snapshot||"

type RedisRepo struct {
	redisClient *redis.Client
}

func NewRedisRepo(redisClient *redis.Client) *RedisRepo {
	return &RedisRepo{
		redisClient: redisClient,
	}
}

func snapshotKey(deviceID string) string {
	return redisSnapshotKeyPrefix + deviceID
}

func (r *RedisRepo) Get(ctx context.Context, deviceID string) (_ []byte, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redisRepo.get")
	span.SetAttributes(attribute.String("device", deviceID))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	payload, err := r.redisClient.Get(ctx, snapshotKey(deviceID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get snapshot: %w", err)
	}

	return payload, nil
}

func (r *RedisRepo) Put(ctx context.Context, deviceID string, payload []byte) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redisRepo.put")
	span.SetAttributes(attribute.String("device", deviceID))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := r.redisClient.Set(ctx, snapshotKey(deviceID), payload, 0).Err(); err != nil {
		return fmt.Errorf("redis set snapshot: %w", err)
	}
	return nil
}
