// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cache stores raw provider responses between runs so repeated
// queries do not spend API quota. Verdicts are never cached.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is a byte store keyed by string with per-entry expiry.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

const keyPrefix = "verdict-engine:v1:"

// Key derives the cache key for a provider response to query.
func Key(provider, query string) string {
	hash := sha256.Sum256([]byte(query))
	return keyPrefix + provider + ":" + hex.EncodeToString(hash[:])
}
