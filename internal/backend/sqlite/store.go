// Package sqlite implements the service.Service interface on a local SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite"

	"todopad/internal/service"
)

const (
	// DriverName is the database/sql driver registered by modernc.org/sqlite.
	DriverName = "sqlite"

	// BusyTimeoutMS is how long a statement waits on a locked database.
	BusyTimeoutMS = 5000
)

const schema = `CREATE TABLE IF NOT EXISTS tasks (
    id        INTEGER PRIMARY KEY AUTOINCREMENT,
    task      TEXT    NOT NULL CHECK (length(trim(task)) > 0),
    completed INTEGER NOT NULL DEFAULT 0
)`

// Store implements service.Service using a SQLite database file.
// Every call opens the database, runs one statement and closes it again,
// so a failed call never leaves a broken handle behind.
type Store struct {
	path   string
	logger *log.Logger
}

// New creates a store for the database file at path.
// Nothing is opened until the first call.
func New(path string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Store{
		path:   path,
		logger: logger.WithPrefix("store"),
	}
}

func (s *Store) dsn() string {
	return fmt.Sprintf("%s?_pragma=busy_timeout(%d)&_pragma=synchronous(FULL)", s.path, BusyTimeoutMS)
}

// open opens a fresh handle. Callers must close it.
func (s *Store) open(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open(DriverName, s.dsn())
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// exec runs a single statement and reports rows affected.
func (s *Store) exec(ctx context.Context, op, query string, args ...any) (int64, error) {
	db, err := s.open(ctx)
	if err != nil {
		return 0, &service.StorageError{Op: op, Err: err}
	}
	defer db.Close()

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, &service.StorageError{Op: op, Err: err}
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, &service.StorageError{Op: op, Err: err}
	}
	s.logger.Debug("exec", "op", op, "rows", n)
	return n, nil
}

// Init implements service.Service.
func (s *Store) Init(ctx context.Context) error {
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return &service.StorageError{Op: "init", Err: err}
		}
	}
	_, err := s.exec(ctx, "init", schema)
	return err
}

// ListAll implements service.Service.
func (s *Store) ListAll(ctx context.Context) ([]service.Task, error) {
	db, err := s.open(ctx)
	if err != nil {
		return nil, &service.StorageError{Op: "list", Err: err}
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT id, task, completed FROM tasks ORDER BY id`)
	if err != nil {
		return nil, &service.StorageError{Op: "list", Err: err}
	}
	defer rows.Close()

	tasks := []service.Task{}
	for rows.Next() {
		var t service.Task
		if err := rows.Scan(&t.ID, &t.Text, &t.Completed); err != nil {
			return nil, &service.StorageError{Op: "list", Err: err}
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, &service.StorageError{Op: "list", Err: err}
	}

	s.logger.Debug("list", "count", len(tasks))
	return tasks, nil
}

// Create implements service.Service.
func (s *Store) Create(ctx context.Context, text string) error {
	text, err := service.ValidateText(text)
	if err != nil {
		return err
	}
	_, err = s.exec(ctx, "create", `INSERT INTO tasks (task) VALUES (?)`, text)
	return err
}

// Delete implements service.Service.
func (s *Store) Delete(ctx context.Context, id int64) error {
	n, err := s.exec(ctx, "delete", `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return err
	}
	s.noteMissing("delete", id, n)
	return nil
}

// Rename implements service.Service.
func (s *Store) Rename(ctx context.Context, id int64, text string) error {
	text, err := service.ValidateText(text)
	if err != nil {
		return err
	}
	n, err := s.exec(ctx, "rename", `UPDATE tasks SET task = ? WHERE id = ?`, text, id)
	if err != nil {
		return err
	}
	s.noteMissing("rename", id, n)
	return nil
}

// SetCompleted implements service.Service.
func (s *Store) SetCompleted(ctx context.Context, id int64, completed bool) error {
	n, err := s.exec(ctx, "set completed", `UPDATE tasks SET completed = ? WHERE id = ?`, completed, id)
	if err != nil {
		return err
	}
	s.noteMissing("set completed", id, n)
	return nil
}

// ClearAll implements service.Service.
func (s *Store) ClearAll(ctx context.Context) error {
	_, err := s.exec(ctx, "clear", `DELETE FROM tasks`)
	return err
}

func (s *Store) noteMissing(op string, id, rows int64) {
	if rows == 0 {
		s.logger.Debug("task not found, nothing changed", "op", op, "id", id)
	}
}
