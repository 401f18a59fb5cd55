// Package sqlite provides the durable transfer-task journal. It is
// optional: operators enable it when they want transfer history to
// survive restarts; the in-memory store remains the default.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/panseek/panseek/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/panseek/panseek/internal/core/domain"
	"github.com/panseek/panseek/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.TransferStore = (*Store)(nil)

// Store is a SQLite-backed implementation of driven.TransferStore.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.panseek/data.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".panseek", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "transfers.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate applies pending .up.sql migrations in version order.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}
		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// Save stores or replaces a task by ID.
func (s *Store) Save(ctx context.Context, task domain.TransferTask) error {
	var finishedAt any
	if !task.FinishedAt.IsZero() {
		finishedAt = task.FinishedAt.UTC()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO transfer_tasks (id, status, title, dest_path, started_at, finished_at, error)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			status = excluded.status,
			finished_at = excluded.finished_at,
			error = excluded.error
	`, task.ID, string(task.Status), task.Title, task.DestPath, task.StartedAt.UTC(), finishedAt, task.Error)
	if err != nil {
		return fmt.Errorf("saving task: %w", err)
	}
	return nil
}

// Get retrieves a task by ID.
func (s *Store) Get(ctx context.Context, id string) (*domain.TransferTask, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, status, title, dest_path, started_at, finished_at, error
		FROM transfer_tasks WHERE id = ?
	`, id)

	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("getting task: %w", err)
	}
	return task, nil
}

// List returns all tasks ordered by StartedAt descending.
func (s *Store) List(ctx context.Context) ([]domain.TransferTask, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, status, title, dest_path, started_at, finished_at, error
		FROM transfer_tasks ORDER BY started_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.TransferTask
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		tasks = append(tasks, *task)
	}
	return tasks, rows.Err()
}

// EvictTerminal removes completed and failed tasks that finished
// before cutoff.
func (s *Store) EvictTerminal(ctx context.Context, cutoff time.Time) (int, error) {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM transfer_tasks
		WHERE status IN (?, ?) AND finished_at IS NOT NULL AND finished_at < ?
	`, string(domain.TransferCompleted), string(domain.TransferFailed), cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("evicting tasks: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting evicted tasks: %w", err)
	}
	return int(n), nil
}

// Count returns the number of stored tasks.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	row := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM transfer_tasks")
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("counting tasks: %w", err)
	}
	return n, nil
}

// scanner abstracts *sql.Row and *sql.Rows for scanTask.
type scanner interface {
	Scan(dest ...any) error
}

// scanTask reads one task row.
func scanTask(row scanner) (*domain.TransferTask, error) {
	var (
		task       domain.TransferTask
		status     string
		finishedAt sql.NullTime
	)
	if err := row.Scan(&task.ID, &status, &task.Title, &task.DestPath, &task.StartedAt, &finishedAt, &task.Error); err != nil {
		return nil, err
	}
	task.Status = domain.TransferStatus(status)
	if finishedAt.Valid {
		task.FinishedAt = finishedAt.Time
	}
	return &task, nil
}
