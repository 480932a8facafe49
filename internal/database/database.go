package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Database is a small key/value store backed by SQLite.
type Database struct {
	Filename string
	Conn     *sql.DB
}

// New opens (creating if needed) the database at path and applies migrations.
func New(path string) (*Database, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// SQLite allows one writer; a single connection keeps writes ordered.
	conn.SetMaxOpenConns(1)

	if err := migrate(conn); err != nil {
		conn.Close()
		return nil, err
	}

	return &Database{Filename: path, Conn: conn}, nil
}

func migrate(conn *sql.DB) error {
	goose.SetBaseFS(migrations)
	goose.SetLogger(NewGooseLogger(slog.Default()))
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}
	if err := goose.Up(conn, "migrations"); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

func (db *Database) Close() error {
	return db.Conn.Close()
}

// Get returns the value stored under key. The bool is false when the key
// does not exist.
func (db *Database) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := db.Conn.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %q: %w", key, err)
	}
	return value, true, nil
}

// Put stores value under key, replacing any previous value.
func (db *Database) Put(ctx context.Context, key, value string) error {
	_, err := db.Conn.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value)
	if err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}

// GooseLogger routes migration output through slog so it does not write
// straight to stdout underneath the TUI.
type GooseLogger struct {
	logger *slog.Logger
}

func NewGooseLogger(logger *slog.Logger) *GooseLogger {
	return &GooseLogger{logger: logger}
}

func (g *GooseLogger) Printf(format string, v ...interface{}) {
	g.logger.Debug(fmt.Sprintf(format, v...), "component", "migrations")
}

func (g *GooseLogger) Fatalf(format string, v ...interface{}) {
	g.logger.Error(fmt.Sprintf(format, v...), "component", "migrations")
	os.Exit(1)
}
