// Package sqlite implements ports.HistoryStore on an embedded SQLite database
// using the pure-Go modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/aretw0/algotrace/pkg/domain"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

const schema = `
CREATE TABLE IF NOT EXISTS algorithm_executions (
	id TEXT PRIMARY KEY,
	algorithm_type TEXT NOT NULL,
	algorithm_name TEXT NOT NULL,
	array_size INTEGER NOT NULL,
	comparisons INTEGER NOT NULL,
	swaps INTEGER NOT NULL,
	category TEXT NOT NULL,
	timestamp INTEGER NOT NULL,
	seq INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_executions_type ON algorithm_executions(algorithm_type);
CREATE INDEX IF NOT EXISTS idx_executions_timestamp ON algorithm_executions(timestamp);

CREATE TABLE IF NOT EXISTS complexity_analyses (
	id TEXT PRIMARY KEY,
	algorithm_type TEXT NOT NULL,
	algorithm_name TEXT NOT NULL,
	array_size INTEGER NOT NULL,
	estimated_operations INTEGER NOT NULL,
	timestamp INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_analyses_type ON complexity_analyses(algorithm_type);

CREATE TABLE IF NOT EXISTS ai_queries (
	id TEXT PRIMARY KEY,
	user_query TEXT NOT NULL,
	ai_response TEXT NOT NULL,
	context TEXT,
	timestamp INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_queries_timestamp ON ai_queries(timestamp);
`

// Store implements ports.HistoryStore using SQLite.
// Timestamps are stored as Unix nanoseconds in UTC.
type Store struct {
	db *sql.DB
}

// Open creates (or reuses) the database at path and applies the schema.
// Use MemoryPath for a throwaway database.
func Open(path string) (*Store, error) {
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection serializes writers and keeps :memory: databases shared.
	db.SetMaxOpenConns(1)

	store := &Store{db: db}
	if err := store.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) initialize() error {
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordExecution inserts an execution summary.
func (s *Store) RecordExecution(ctx context.Context, rec domain.ExecutionRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO algorithm_executions
			(id, algorithm_type, algorithm_name, array_size, comparisons, swaps, category, timestamp, seq)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM algorithm_executions))`,
		rec.ID, string(rec.AlgorithmType), rec.AlgorithmName, rec.ArraySize,
		rec.Comparisons, rec.Swaps, string(rec.Category), rec.Timestamp.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert execution: %w", err)
	}
	return nil
}

// RecordAnalysis inserts a complexity analysis.
func (s *Store) RecordAnalysis(ctx context.Context, rec domain.ComplexityRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO complexity_analyses
			(id, algorithm_type, algorithm_name, array_size, estimated_operations, timestamp)
		VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, string(rec.AlgorithmType), rec.AlgorithmName, rec.ArraySize,
		rec.EstimatedOperations, rec.Timestamp.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert analysis: %w", err)
	}
	return nil
}

// RecordQuery inserts an assistant exchange.
func (s *Store) RecordQuery(ctx context.Context, rec domain.AssistantRecord) error {
	var queryContext sql.NullString
	if rec.Context != "" {
		queryContext = sql.NullString{String: rec.Context, Valid: true}
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO ai_queries (id, user_query, ai_response, context, timestamp)
		VALUES (?, ?, ?, ?, ?)`,
		rec.ID, rec.UserQuery, rec.Response, queryContext, rec.Timestamp.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert query: %w", err)
	}
	return nil
}

const selectExecution = `
	SELECT id, algorithm_type, algorithm_name, array_size, comparisons, swaps, category, timestamp
	FROM algorithm_executions`

// ListExecutions returns matching records newest first.
func (s *Store) ListExecutions(ctx context.Context, filter domain.HistoryFilter) ([]domain.ExecutionRecord, int, error) {
	filter, err := filter.Normalize()
	if err != nil {
		return nil, 0, err
	}

	where := ""
	var args []any
	if filter.AlgorithmType != "" {
		where = " WHERE algorithm_type = ?"
		args = append(args, string(filter.AlgorithmType))
	}

	var total int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM algorithm_executions"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count executions: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		selectExecution+where+" ORDER BY timestamp DESC, seq DESC LIMIT ?",
		append(args, filter.Limit)...,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query executions: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.ExecutionRecord, 0, filter.Limit)
	for rows.Next() {
		rec, err := scanExecution(rows)
		if err != nil {
			return nil, 0, err
		}
		entries = append(entries, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read executions: %w", err)
	}
	return entries, total, nil
}

// GetExecution returns one record by id.
func (s *Store) GetExecution(ctx context.Context, id string) (*domain.ExecutionRecord, error) {
	row := s.db.QueryRowContext(ctx, selectExecution+" WHERE id = ?", id)
	rec, err := scanExecution(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrExecutionNotFound
	}
	return rec, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanExecution(row scanner) (*domain.ExecutionRecord, error) {
	var (
		rec       domain.ExecutionRecord
		algorithm string
		category  string
		unixNanos int64
	)
	err := row.Scan(&rec.ID, &algorithm, &rec.AlgorithmName, &rec.ArraySize,
		&rec.Comparisons, &rec.Swaps, &category, &unixNanos)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan execution: %w", err)
	}
	rec.AlgorithmType = domain.AlgorithmID(algorithm)
	rec.Category = domain.Category(category)
	rec.Timestamp = time.Unix(0, unixNanos).UTC()
	return &rec, nil
}

// CountAnalyses returns the number of stored complexity analyses.
func (s *Store) CountAnalyses(ctx context.Context) (int, error) {
	return s.count(ctx, "complexity_analyses")
}

// CountQueries returns the number of stored assistant exchanges.
func (s *Store) CountQueries(ctx context.Context) (int, error) {
	return s.count(ctx, "ai_queries")
}

func (s *Store) count(ctx context.Context, table string) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return n, nil
}
