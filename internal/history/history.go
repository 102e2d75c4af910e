// Package history keeps a capped, newest-first log of calculations.
//
// Both stores evict the oldest entries in the same operation as the append
// once MaxEntries is exceeded.
package history

import (
	"context"
	"time"

	"github.com/google/uuid"

	mrwerror "github.com/msto63/mRW/foundation/core/error"
	"github.com/msto63/mRW/foundation/core/errors"
)

const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"

	// DefaultMaxEntries is the history cap used when none is configured
	DefaultMaxEntries = 100
)

// Entry is one recorded calculation
type Entry struct {
	ID        string            `json:"id"`
	Tool      string            `json:"tool"`
	Path      string            `json:"path"`
	Name      string            `json:"name"`
	Type      string            `json:"type"`
	Result    string            `json:"result"`
	Params    map[string]string `json:"params,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// Filter restricts List. A zero Limit returns all entries.
type Filter struct {
	Type  string
	Tool  string
	Limit int
}

// Store persists history entries
type Store interface {
	Append(ctx context.Context, e *Entry) error
	List(ctx context.Context, f Filter) ([]*Entry, error)
	Count(ctx context.Context) (int, error)
	Clear(ctx context.Context) error
	Close() error
}

// Config selects and sizes a store
type Config struct {
	Backend    string
	Path       string
	MaxEntries int
}

// DefaultConfig returns an SQLite history under ./data
func DefaultConfig() Config {
	return Config{
		Backend:    BackendSQLite,
		Path:       "./data/history.db",
		MaxEntries: DefaultMaxEntries,
	}
}

// New opens the configured store
func New(cfg Config) (Store, error) {
	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = DefaultMaxEntries
	}
	switch cfg.Backend {
	case BackendMemory:
		return NewMemoryStore(cfg.MaxEntries), nil
	case BackendSQLite, "":
		return NewSQLiteStore(cfg.Path, cfg.MaxEntries)
	default:
		return nil, errors.NewErrorBuilder(errors.ModuleHistory).
			Operation("open").
			Code(mrwerror.CodeInvalidConfig).
			Messagef("unknown history backend %q", cfg.Backend).
			Build()
	}
}

// prepare fills ID and Timestamp
func prepare(e *Entry) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}
}

func (f Filter) matches(e *Entry) bool {
	return (f.Type == "" || e.Type == f.Type) && (f.Tool == "" || e.Tool == f.Tool)
}
