package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/ppiankov/labelguard/internal/model"
)

// Cache stores serialized classifier results
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key hashes the parts that identify one classification into a cache key.
// Parts are NUL-separated so ("ab", "c") and ("a", "bc") never collide.
func Key(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return "labelguard:v1:" + hex.EncodeToString(h.Sum(nil))
}

// New builds the cache described by cfg: memory only, or memory over disk
// when a directory is configured.
func New(cfg model.CacheConfig) Cache {
	if cfg.Dir == "" {
		return NewMemoryCache(cfg.TTL, 10*time.Minute)
	}
	return NewLayeredCache(cfg.TTL, cfg.Dir, cfg.TTL)
}
