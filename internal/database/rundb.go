package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/spelldigest/internal/model"
)

// FileName is the name of the history database inside the data directory.
const FileName = "spelldigest.db"

// ErrRunNotFound is returned when a run ID does not exist.
var ErrRunNotFound = errors.New("run not found")

// RunDB stores completed runs in SQLite.
type RunDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures RunDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a RunDB in dbDir.
// With CreateIfNotExists unset, a missing database is an error.
func Open(dbDir string, opts Options) (*RunDB, error) {
	dbPath := filepath.Join(dbDir, FileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// mode=rw refuses to create a new file; mode=rwc allows it.
	dsn := dbPath + "?mode=rw"
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	rdb := &RunDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := rdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return rdb, nil
}

// Close closes the database connection.
func (rdb *RunDB) Close() error {
	return rdb.db.Close()
}

// Path returns the database file path.
func (rdb *RunDB) Path() string {
	return rdb.dbPath
}

func (rdb *RunDB) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		document_url TEXT NOT NULL,
		started_at TEXT NOT NULL,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
		hash_algorithm TEXT NOT NULL,
		digest TEXT NOT NULL,
		answer TEXT NOT NULL,
		word_count INTEGER NOT NULL,
		known_count INTEGER NOT NULL,
		unknown_count INTEGER NOT NULL,
		failed_count INTEGER NOT NULL,
		summary_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_document ON runs(document_url);
	CREATE INDEX IF NOT EXISTS idx_runs_answer ON runs(answer);
	`

	_, err := rdb.db.ExecContext(context.Background(), schema)
	return err
}

// RunRecord is a stored run.
type RunRecord struct {
	// ID is the unique identifier of the run in the database.
	ID int64 `json:"id"`

	// SavedAt is when the run was written to the database.
	SavedAt time.Time `json:"saved_at"`

	// Summary is the stored run summary.
	Summary *model.Summary `json:"summary"`
}

// SaveRun stores summary and returns its ID.
func (rdb *RunDB) SaveRun(ctx context.Context, summary *model.Summary) (int64, error) {
	summaryJSON, err := json.Marshal(summary)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize run summary: %w", err)
	}

	query := `
	INSERT INTO runs (document_url, started_at, hash_algorithm, digest, answer,
		word_count, known_count, unknown_count, failed_count, summary_json)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := rdb.db.ExecContext(ctx, query,
		summary.DocumentURL,
		summary.StartedAt.UTC().Format(time.RFC3339Nano),
		summary.HashAlgorithm,
		summary.Digest,
		summary.Answer,
		summary.WordCount,
		summary.KnownCount,
		summary.UnknownCount,
		summary.FailedCount,
		string(summaryJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save run: %w", err)
	}

	return result.LastInsertId()
}

// ListRuns returns the most recent runs, newest first.
// A non-positive limit returns every run.
func (rdb *RunDB) ListRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	query := `
	SELECT id, timestamp, summary_json FROM runs
	ORDER BY id DESC
	`
	args := make([]any, 0, 1)
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := rdb.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	records := make([]RunRecord, 0)
	for rows.Next() {
		record, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}

	return records, rows.Err()
}

// GetRun retrieves a run by its ID. It returns ErrRunNotFound if the ID
// does not exist.
func (rdb *RunDB) GetRun(ctx context.Context, id int64) (*RunRecord, error) {
	query := `
	SELECT id, timestamp, summary_json FROM runs
	WHERE id = ?
	`

	record, err := scanRun(rdb.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrRunNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

// CountRunsByAnswer returns how many stored runs produced answer.
func (rdb *RunDB) CountRunsByAnswer(ctx context.Context, answer string) (int, error) {
	var count int
	err := rdb.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM runs WHERE answer = ?`, answer,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count runs: %w", err)
	}
	return count, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*RunRecord, error) {
	var record RunRecord
	var timestamp, summaryJSON string

	if err := row.Scan(&record.ID, &timestamp, &summaryJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan run: %w", err)
	}

	record.SavedAt = parseTimestamp(timestamp)

	var summary model.Summary
	if err := json.Unmarshal([]byte(summaryJSON), &summary); err != nil {
		return nil, fmt.Errorf("failed to parse run %d: %w", record.ID, err)
	}
	record.Summary = &summary

	return &record, nil
}

// timestampFormats contains the timestamp formats that SQLite may return.
// More specific formats come first.
var timestampFormats = []string{
	"2006-01-02 15:04:05",     // SQLite default datetime format
	"2006-01-02T15:04:05Z",    // ISO 8601 with Z suffix
	"2006-01-02T15:04:05",     // ISO 8601 without timezone
	time.RFC3339,              // Full RFC3339 format
	time.RFC3339Nano,          // RFC3339 with nanoseconds
	"2006-01-02 15:04:05.999", // SQLite with milliseconds
}

// parseTimestamp tries each known format and returns the zero time if
// none matches.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
