// Package sqlite implements the store.Store interface over a local SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"tasksync/internal/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	status TEXT NOT NULL,
	archived INTEGER DEFAULT 0,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`

// Store implements store.Store backed by a single-file SQLite database.
type Store struct {
	db *sql.DB
}

// New opens the database at path, creating the file and the tasks table
// if needed. The schema bootstrap is idempotent.
func New(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	// Single writer; one pooled connection serializes all access.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tasks table: %w", err)
	}

	slog.Debug("sqlite store ready", "path", path)
	return &Store{db: db}, nil
}

// List returns non-archived tasks in insertion order, optionally restricted
// to one status. The numbers printed by list depend on that order staying
// stable between calls.
func (s *Store) List(ctx context.Context, filter store.Status) ([]store.Task, error) {
	query := "SELECT id, name, status FROM tasks WHERE archived = 0"
	var args []any
	if filter != store.AnyStatus {
		if !filter.Valid() {
			return nil, fmt.Errorf("%w: %s", store.ErrInvalidStatus, filter)
		}
		query += " AND status = ?"
		args = append(args, string(filter))
	}
	query += " ORDER BY rowid"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		slog.Debug("list failed", "error", err)
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []store.Task
	for rows.Next() {
		var t store.Task
		if err := rows.Scan(&t.ID, &t.Name, &t.Status); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tasks: %w", err)
	}

	return tasks, nil
}

// Add inserts a new task with a generated UUID and returns the constructed
// record without re-reading it from storage.
func (s *Store) Add(ctx context.Context, name string, status store.Status) (store.Task, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return store.Task{}, store.ErrEmptyName
	}
	if status == store.AnyStatus {
		status = store.StatusNotStarted
	}
	if !status.Valid() {
		return store.Task{}, fmt.Errorf("%w: %s", store.ErrInvalidStatus, status)
	}

	t := store.Task{ID: uuid.NewString(), Name: name, Status: status}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO tasks (id, name, status, archived) VALUES (?, ?, ?, 0)",
		t.ID, t.Name, string(t.Status))
	if err != nil {
		slog.Debug("add failed", "error", err)
		return store.Task{}, fmt.Errorf("failed to add task: %w", err)
	}

	return t, nil
}

// UpdateStatus sets the status column.
// An unknown id is a no-op that still succeeds.
func (s *Store) UpdateStatus(ctx context.Context, id string, status store.Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %s", store.ErrInvalidStatus, status)
	}

	_, err := s.db.ExecContext(ctx,
		"UPDATE tasks SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		string(status), id)
	if err != nil {
		slog.Debug("update status failed", "id", id, "error", err)
		return fmt.Errorf("failed to update status: %w", err)
	}
	return nil
}

// UpdateName sets the name column.
// An unknown id is a no-op that still succeeds.
func (s *Store) UpdateName(ctx context.Context, id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return store.ErrEmptyName
	}

	_, err := s.db.ExecContext(ctx,
		"UPDATE tasks SET name = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		name, id)
	if err != nil {
		slog.Debug("update name failed", "id", id, "error", err)
		return fmt.Errorf("failed to update name: %w", err)
	}
	return nil
}

// Delete archives the task. The row is kept for Restore.
func (s *Store) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE tasks SET archived = 1, updated_at = CURRENT_TIMESTAMP WHERE id = ?", id)
	if err != nil {
		slog.Debug("delete failed", "id", id, "error", err)
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// Restore unarchives the task.
func (s *Store) Restore(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE tasks SET archived = 0, updated_at = CURRENT_TIMESTAMP WHERE id = ?", id)
	if err != nil {
		slog.Debug("restore failed", "id", id, "error", err)
		return fmt.Errorf("failed to restore task: %w", err)
	}
	return nil
}

// ClearAll deletes every row, archived rows included.
func (s *Store) ClearAll(ctx context.Context) (int, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM tasks")
	if err != nil {
		slog.Debug("clear all failed", "error", err)
		return 0, fmt.Errorf("failed to clear tasks: %w", err)
	}
	return rowsAffected(res)
}

// ClearByStatus deletes non-archived rows with the given status.
// Archived rows with that status are untouched.
func (s *Store) ClearByStatus(ctx context.Context, status store.Status) (int, error) {
	if !status.Valid() {
		return 0, fmt.Errorf("%w: %s", store.ErrInvalidStatus, status)
	}

	res, err := s.db.ExecContext(ctx,
		"DELETE FROM tasks WHERE status = ? AND archived = 0", string(status))
	if err != nil {
		slog.Debug("clear by status failed", "status", status, "error", err)
		return 0, fmt.Errorf("failed to clear tasks: %w", err)
	}
	return rowsAffected(res)
}

// Close closes the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func rowsAffected(res sql.Result) (int, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count affected rows: %w", err)
	}
	return int(n), nil
}
