// Package exporter retains raw telemetry payloads in Redis, keyed by batch
// id, as a side channel next to the bus. Entries expire after a TTL.
package exporter

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "archive:batch:"

// ErrNotFound is returned when no archived payload exists for a batch id
var ErrNotFound = errors.New("batch not found")

// Archive handles raw payload storage and retrieval
type Archive struct {
	redisClient *redis.Client
	ttl         time.Duration
}

// NewArchive creates a new Archive instance with the provided Redis client
func NewArchive(redisClient *redis.Client, ttl time.Duration) *Archive {
	return &Archive{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// Export stores one raw payload under its batch id. The payload is already
// JSON and is stored as-is.
func (a *Archive) Export(ctx context.Context, batchID string, raw []byte) error {
	return a.redisClient.Set(ctx, keyPrefix+batchID, raw, a.ttl).Err()
}

// Get returns the archived raw payload for a batch id
func (a *Archive) Get(ctx context.Context, batchID string) ([]byte, error) {
	val, err := a.redisClient.Get(ctx, keyPrefix+batchID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

// List returns the batch ids currently held in the archive
func (a *Archive) List(ctx context.Context) ([]string, error) {
	batchIDs := []string{}

	iter := a.redisClient.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		batchIDs = append(batchIDs, strings.TrimPrefix(iter.Val(), keyPrefix))
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}

	return batchIDs, nil
}
