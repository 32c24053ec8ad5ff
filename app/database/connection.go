package database

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DB wraps the sql handle; Ephemeral is true when the primary file store was
// unavailable and the connection degraded to an in-memory database.
type DB struct {
	*sql.DB
	Ephemeral bool
}

const memoryDSN = "file::memory:?cache=shared"

func dsnFor(path string) string {
	return fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)
}

// NewConnection opens the sqlite database at path.
func NewConnection(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := open(dsnFor(path))
	if err != nil {
		return nil, err
	}
	return &DB{DB: db}, nil
}

// NewMemoryConnection opens an ephemeral in-memory database with the same
// read/write shape as the file store. Used directly by tests and as the
// degraded backend.
func NewMemoryConnection() (*DB, error) {
	db, err := open(memoryDSN)
	if err != nil {
		return nil, err
	}
	return &DB{DB: db, Ephemeral: true}, nil
}

// NewConnectionWithFallback attempts the primary file store and degrades to
// the in-memory store when it is unavailable. Call sites get one handle either
// way; the backend is selected here, at construction time.
func NewConnectionWithFallback(path string) (*DB, error) {
	db, err := NewConnection(path)
	if err == nil {
		return db, nil
	}

	slog.Warn("Primary database unavailable, degrading to in-memory store", "path", path, "error", err)
	return NewMemoryConnection()
}

func open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// sqlite supports one writer; keep the pool small to avoid SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
