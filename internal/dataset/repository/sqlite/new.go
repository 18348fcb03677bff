package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"gantt-chart/internal/dataset/repository"
	"gantt-chart/pkg/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS datasets (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	source     TEXT NOT NULL,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS dataset_tasks (
	dataset_id   TEXT NOT NULL REFERENCES datasets(id) ON DELETE CASCADE,
	position     INTEGER NOT NULL,
	task_id      TEXT NOT NULL,
	name         TEXT NOT NULL DEFAULT '',
	resource     TEXT NOT NULL DEFAULT '',
	start_at     TEXT NOT NULL,
	end_at       TEXT NOT NULL,
	progress     REAL NOT NULL DEFAULT 0,
	dependencies TEXT NOT NULL DEFAULT '[]',
	sprint       TEXT NOT NULL DEFAULT '',
	project      TEXT NOT NULL DEFAULT '',
	parent_id    TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (dataset_id, position)
);

CREATE INDEX IF NOT EXISTS idx_datasets_source ON datasets(source);
CREATE INDEX IF NOT EXISTS idx_datasets_name ON datasets(name);
`

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// Open opens (or creates) the SQLite database at path and applies the schema.
// ":memory:" is accepted for tests.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", path, err)
	}
	// A single connection keeps ":memory:" databases shared and serializes writers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate sqlite %q: %w", path, err)
	}
	return db, nil
}

// New creates a new SQLite-backed Repository for the dataset domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("dataset/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("dataset/repository/sqlite.%s", method)
}
