package experiment

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const storeSchema = `
CREATE TABLE IF NOT EXISTS runs (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	solver    TEXT    NOT NULL,
	repeat    INTEGER NOT NULL,
	seed      INTEGER NOT NULL,
	total     REAL    NOT NULL,
	base_cost REAL    NOT NULL,
	overload  REAL    NOT NULL,
	unmet     INTEGER NOT NULL,
	runtime_ns INTEGER NOT NULL,
	best_paths TEXT   NOT NULL,
	created_at TEXT   NOT NULL
);
CREATE TABLE IF NOT EXISTS history (
	run_id    INTEGER NOT NULL REFERENCES runs(id),
	iteration INTEGER NOT NULL,
	best      REAL    NOT NULL,
	mean      REAL    NOT NULL,
	PRIMARY KEY (run_id, iteration)
);`

// Store persists run records into an SQLite database so experiments can be
// compared across invocations.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if needed) the database at path and ensures the
// schema exists.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("experiment: open store: %w", err)
	}
	if _, err = db.Exec(storeSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("experiment: init store schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// SaveReports writes every run of every report, each run with its full
// convergence history, in one transaction.
func (s *Store) SaveReports(reports []Report) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("experiment: begin tx: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, rep := range reports {
		for _, run := range rep.Runs {
			if err = saveRun(tx, run, now); err != nil {
				return err
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("experiment: commit tx: %w", err)
	}

	return nil
}

func saveRun(tx *sql.Tx, run RunRecord, now string) error {
	res, err := tx.Exec(
		`INSERT INTO runs (solver, repeat, seed, total, base_cost, overload, unmet, runtime_ns, best_paths, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.Solver, run.Repeat, run.Seed,
		run.Score.Total, run.Score.BaseCost, run.Score.OverloadUnits, run.Score.Unmet,
		run.Runtime.Nanoseconds(), encodePaths(run.Best.Paths), now,
	)
	if err != nil {
		return fmt.Errorf("experiment: insert run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("experiment: run id: %w", err)
	}

	for i, it := range run.History {
		if _, err = tx.Exec(
			`INSERT INTO history (run_id, iteration, best, mean) VALUES (?, ?, ?, ?)`,
			runID, i, it.Best, it.Mean,
		); err != nil {
			return fmt.Errorf("experiment: insert history: %w", err)
		}
	}

	return nil
}

// encodePaths flattens a routing plan into "a>b>c;x>y" form, one path per
// demand in demand order. Readable enough for ad hoc SQL inspection.
func encodePaths(paths [][]string) string {
	parts := make([]string, len(paths))
	for i, p := range paths {
		parts[i] = strings.Join(p, ">")
	}

	return strings.Join(parts, ";")
}

// WriteSummaryCSV writes one row per solver with the aggregate statistics.
func WriteSummaryCSV(path string, reports []Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("experiment: create summary: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err = w.Write([]string{"solver", "runs", "best", "worst", "mean", "stddev", "mean_runtime_ms"}); err != nil {
		return fmt.Errorf("experiment: write summary header: %w", err)
	}

	for _, rep := range reports {
		row := []string{
			rep.Solver,
			strconv.Itoa(len(rep.Runs)),
			formatScore(rep.BestScore),
			formatScore(rep.WorstScore),
			formatScore(rep.MeanScore),
			formatScore(rep.StdDevScore),
			strconv.FormatFloat(float64(rep.MeanRuntime)/float64(time.Millisecond), 'f', 3, 64),
		}
		if err = w.Write(row); err != nil {
			return fmt.Errorf("experiment: write summary row: %w", err)
		}
	}

	w.Flush()
	if err = w.Error(); err != nil {
		return fmt.Errorf("experiment: flush summary: %w", err)
	}

	return nil
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
