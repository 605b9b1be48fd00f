package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/eth-easl/analyzer/pkg/common"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS analysis_results (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	algo            TEXT NOT NULL,
	items           INTEGER NOT NULL,
	steps           INTEGER NOT NULL,
	start_time      REAL NOT NULL,
	end_time        REAL NOT NULL,
	total_time_ms   REAL NOT NULL,
	time_complexity TEXT NOT NULL,
	graph_base64    TEXT,
	graph_path      TEXT,
	created_at      TEXT NOT NULL
);
`

// SQLStore keeps analysis records in a SQLite table.
type SQLStore struct {
	db *sql.DB
}

// busyTimeout is applied to every pooled connection through the DSN.
const busyTimeout = "_pragma=busy_timeout(5000)"

// NewSQLStore opens a SQLite database and runs migrations. The pool is held
// to a single connection so concurrent writers queue instead of failing with
// SQLITE_BUSY.
func NewSQLStore(dbPath string) (*SQLStore, error) {
	db, err := sql.Open("sqlite", dbPath+"?"+busyTimeout)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &SQLStore{db: db}, nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

func (s *SQLStore) Save(ctx context.Context, record *common.AnalysisRecord) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO analysis_results
		 (algo, items, steps, start_time, end_time, total_time_ms, time_complexity, graph_base64, graph_path, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.Algorithm, record.Items, record.Steps,
		record.StartTime, record.EndTime, record.TotalTimeMs,
		record.TimeComplexity, record.GraphBase64, record.GraphPath,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("insert record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

func (s *SQLStore) Get(ctx context.Context, id int64) (*common.AnalysisRecord, error) {
	var (
		rec                    common.AnalysisRecord
		graphBase64, graphPath sql.NullString
	)

	err := s.db.QueryRowContext(ctx,
		`SELECT id, algo, items, steps, start_time, end_time, total_time_ms, time_complexity, graph_base64, graph_path
		 FROM analysis_results WHERE id = ?`, id,
	).Scan(&rec.ID, &rec.Algorithm, &rec.Items, &rec.Steps, &rec.StartTime, &rec.EndTime,
		&rec.TotalTimeMs, &rec.TimeComplexity, &graphBase64, &graphPath)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("query record: %w", err)
	}

	rec.GraphBase64 = graphBase64.String
	rec.GraphPath = graphPath.String
	return &rec, nil
}
