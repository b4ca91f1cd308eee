package store

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"strings"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/Seacant/adjei-sampling/internal/model"
)

// SQLiteStore persists runs and their iteration tables using
// modernc.org/sqlite. One database file holds all runs; each run gets a
// row in runs and one iterations row per resampling trial.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL
// mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

var sqliteMigration = fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	input_file TEXT NOT NULL,
	iterations INTEGER NOT NULL,
	seed       INTEGER NOT NULL,
	created_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS iterations (
	run_id TEXT NOT NULL REFERENCES runs(id),
	seq    INTEGER NOT NULL,
	%s REAL,
	PRIMARY KEY (run_id, seq)
);

CREATE INDEX IF NOT EXISTS idx_iterations_run_id ON iterations(run_id);
`, strings.Join(model.StatNames(), " REAL,\n\t"))

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// WriteIterations inserts the run row and its full iteration table in one
// transaction. Non-finite statistics are stored as NULL, since SQLite has
// no NaN representation.
func (s *SQLiteStore) WriteIterations(ctx context.Context, run RunInfo, stats []model.IterationStats) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return eris.Wrap(err, "sqlite: begin tx")
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, input_file, iterations, seed, created_at) VALUES (?, ?, ?, ?, ?)`,
		run.ID, run.InputPath, run.Iterations, run.Seed, run.CreatedAt,
	)
	if err != nil {
		return eris.Wrap(err, "sqlite: insert run")
	}

	cols := model.StatNames()
	insert := fmt.Sprintf(
		`INSERT INTO iterations (run_id, seq, %s) VALUES (?, ?%s)`,
		strings.Join(cols, ", "),
		strings.Repeat(", ?", len(cols)),
	)

	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return eris.Wrap(err, "sqlite: prepare iteration insert")
	}
	defer stmt.Close()

	for seq, it := range stats {
		args := make([]any, 0, len(cols)+2)
		args = append(args, run.ID, seq)
		for _, v := range it.Values() {
			args = append(args, nullable(v))
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return eris.Wrapf(err, "sqlite: insert iteration %d", seq)
		}
	}

	return eris.Wrap(tx.Commit(), "sqlite: commit")
}

// nullable maps non-finite floats to NULL.
func nullable(v float64) any {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return v
}
