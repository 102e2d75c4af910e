// Package cache provides result caches for deterministic calculations:
// an in-memory TTL store and a Redis-backed store behind one interface.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strconv"
	"strings"
	"time"

	mrwerror "github.com/msto63/mRW/foundation/core/error"
)

// Backends
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

const (
	DefaultMaxItems = 10000
	DefaultTTL      = 10 * time.Minute
	KeyPrefix       = "mrw:"
)

// Store is a string key/value cache
type Store interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Config holds cache configuration
type Config struct {
	Backend   string
	RedisAddr string
	TTL       time.Duration
	MaxItems  int
}

// DefaultConfig returns default cache configuration
func DefaultConfig() Config {
	return Config{
		Backend:  BackendMemory,
		MaxItems: DefaultMaxItems,
		TTL:      DefaultTTL,
	}
}

// New creates the store selected by cfg.Backend
func New(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Backend {
	case "", BackendMemory:
		return NewMemory(cfg.MaxItems, cfg.TTL), nil
	case BackendRedis:
		r, err := NewRedis(ctx, cfg.RedisAddr, cfg.TTL)
		if err != nil {
			return nil, mrwerror.Wrap(err, "redis cache unavailable").
				WithCode(mrwerror.CodeConnectionFailed).
				WithDetail("addr", cfg.RedisAddr)
		}
		return r, nil
	default:
		return nil, mrwerror.Newf("unknown cache backend %q", cfg.Backend).
			WithCode(mrwerror.CodeInvalidConfig)
	}
}

// Key builds a cache key from a tool ID and its parameters. Parameter
// order does not matter. Every part is length-prefixed before hashing, so
// separators inside a value cannot make two parameter sets collide.
func Key(tool string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	writePart(&b, tool)
	for _, k := range keys {
		writePart(&b, k)
		writePart(&b, params[k])
	}
	hash := sha256.Sum256([]byte(b.String()))
	return "calc:" + tool + ":" + hex.EncodeToString(hash[:16]) // first 16 bytes
}

func writePart(b *strings.Builder, s string) {
	b.WriteString(strconv.Itoa(len(s)))
	b.WriteByte(':')
	b.WriteString(s)
}
