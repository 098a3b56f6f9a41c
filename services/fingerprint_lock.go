// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package services

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/devguard-vlm/shared"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the lock only if it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

type redisFingerprintLocker struct {
	client *redis.Client
	ttl    time.Duration
	retry  time.Duration
}

var _ shared.FingerprintLocker = (*redisFingerprintLocker)(nil)

func NewRedisFingerprintLocker(client *redis.Client) *redisFingerprintLocker {
	return &redisFingerprintLocker{
		client: client,
		ttl:    30 * time.Second,
		retry:  50 * time.Millisecond,
	}
}

func (l *redisFingerprintLocker) Lock(ctx context.Context, key string) (func(), error) {
	lockKey := "vlm:ingest-lock:" + key
	token := uuid.NewString()
	for {
		ok, err := l.client.SetNX(ctx, lockKey, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("could not acquire fingerprint lock: %w", err)
		}
		if ok {
			return func() {
				// the request context may already be cancelled, the lock must still be released
				releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				if err := releaseScript.Run(releaseCtx, l.client, []string{lockKey}, token).Err(); err != nil {
					slog.Warn("could not release fingerprint lock, it expires on its own", "key", lockKey, "err", err)
				}
			}, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(l.retry):
		}
	}
}

type noopFingerprintLocker struct{}

func (noopFingerprintLocker) Lock(ctx context.Context, key string) (func(), error) {
	return func() {}, nil
}

func NewNoopFingerprintLocker() shared.FingerprintLocker {
	return noopFingerprintLocker{}
}

// NewFingerprintLockerFromEnv connects to REDIS_ADDR. Without it, concurrent ingests are
// serialized by the unique indexes alone.
func NewFingerprintLockerFromEnv() (shared.FingerprintLocker, error) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		slog.Info("REDIS_ADDR not set, ingest runs without distributed fingerprint lock")
		return NewNoopFingerprintLocker(), nil
	}

	db := 0
	if raw := os.Getenv("REDIS_DB"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
		}
		db = parsed
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}
	return NewRedisFingerprintLocker(client), nil
}
