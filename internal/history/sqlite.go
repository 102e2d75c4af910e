package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/msto63/mRW/foundation/core/errors"
)

// SQLiteStore persists history in a SQLite database
type SQLiteStore struct {
	db  *sql.DB
	mu  sync.RWMutex
	max int
}

// NewSQLiteStore opens (or creates) the database at path
func NewSQLiteStore(path string, max int) (*SQLiteStore, error) {
	if max <= 0 {
		max = DefaultMaxEntries
	}
	if path == "" {
		path = DefaultConfig().Path
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.StorageFailed(errors.ModuleHistory, "create_dir", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000")
	if err != nil {
		return nil, errors.StorageFailed(errors.ModuleHistory, "open", err)
	}
	db.SetMaxOpenConns(1)

	s := &SQLiteStore{db: db, max: max}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, errors.StorageFailed(errors.ModuleHistory, "init_schema", err)
	}
	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS history (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		tool TEXT NOT NULL,
		path TEXT NOT NULL,
		name TEXT NOT NULL,
		type TEXT NOT NULL,
		result TEXT NOT NULL,
		params TEXT,
		created_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_history_type ON history(type);
	CREATE INDEX IF NOT EXISTS idx_history_tool ON history(tool);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Append inserts e and trims the table to the newest max entries in
// one transaction.
func (s *SQLiteStore) Append(ctx context.Context, e *Entry) error {
	prepare(e)
	var params []byte
	if len(e.Params) > 0 {
		params, _ = json.Marshal(e.Params)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.StorageFailed(errors.ModuleHistory, "append", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO history (id, tool, path, name, type, result, params, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, e.ID, e.Tool, e.Path, e.Name, e.Type, e.Result, string(params), e.Timestamp.UnixNano()); err != nil {
		return errors.StorageFailed(errors.ModuleHistory, "append", err)
	}

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM history WHERE seq NOT IN (
			SELECT seq FROM history ORDER BY seq DESC LIMIT ?
		)
	`, s.max); err != nil {
		return errors.StorageFailed(errors.ModuleHistory, "evict", err)
	}

	if err := tx.Commit(); err != nil {
		return errors.StorageFailed(errors.ModuleHistory, "append", err)
	}
	return nil
}

// List returns matching entries, newest first
func (s *SQLiteStore) List(ctx context.Context, f Filter) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT id, tool, path, name, type, result, params, created_at FROM history WHERE 1=1`
	var args []interface{}
	if f.Type != "" {
		query += " AND type = ?"
		args = append(args, f.Type)
	}
	if f.Tool != "" {
		query += " AND tool = ?"
		args = append(args, f.Tool)
	}
	query += " ORDER BY seq DESC"
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.StorageFailed(errors.ModuleHistory, "list", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		var e Entry
		var params sql.NullString
		var created int64
		if err := rows.Scan(&e.ID, &e.Tool, &e.Path, &e.Name, &e.Type, &e.Result, &params, &created); err != nil {
			return nil, errors.StorageFailed(errors.ModuleHistory, "list", err)
		}
		if params.Valid && params.String != "" {
			if err := json.Unmarshal([]byte(params.String), &e.Params); err != nil {
				return nil, errors.StorageFailed(errors.ModuleHistory, "decode_params", err)
			}
		}
		e.Timestamp = time.Unix(0, created).UTC()
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.StorageFailed(errors.ModuleHistory, "list", err)
	}
	return entries, nil
}

// Count returns the number of stored entries
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM history`).Scan(&n); err != nil {
		return 0, errors.StorageFailed(errors.ModuleHistory, "count", err)
	}
	return n, nil
}

// Clear removes all entries
func (s *SQLiteStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM history`); err != nil {
		return errors.StorageFailed(errors.ModuleHistory, "clear", err)
	}
	return nil
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
