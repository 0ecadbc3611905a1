// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/hojadevida/internal/platform/constants"
)

// RedisRevocationStore remembers logged-out token IDs until the tokens expire.
type RedisRevocationStore struct {
	client *redis.Client
}

func NewRevocationStore(client *redis.Client) *RedisRevocationStore {
	return &RedisRevocationStore{client: client}
}

/*
Revoke marks tokenID as unusable for ttl.

A non-positive ttl means the token has already expired and nothing is stored.
*/
func (repository *RedisRevocationStore) Revoke(context context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	key := constants.RedisPrefixRevokedToken + tokenID
	if err := repository.client.Set(context, key, 1, ttl).Err(); err != nil {
		return fmt.Errorf("redis_revoke_token_failed: %w", err)
	}
	return nil
}

// IsRevoked reports whether tokenID was revoked.
func (repository *RedisRevocationStore) IsRevoked(context context.Context, tokenID string) (bool, error) {
	count, err := repository.client.Exists(context, constants.RedisPrefixRevokedToken+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("redis_revocation_lookup_failed: %w", err)
	}
	return count > 0, nil
}
