package stats

import (
	"database/sql"
	"fmt"

	// Registers the "sqlite3" driver with database/sql.
	_ "github.com/mattn/go-sqlite3"

	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// SQLiteSink is a Sink backed by a SQLite database, grounded on the
// teacher's tracing.SQLiteTraceWriter: one table, a prepared insert
// statement, batched writes flushed at a threshold or at atexit.
type SQLiteSink struct {
	db   *sql.DB
	stmt *sql.Stmt

	dbPath string

	pending   [][2]uint64
	batchSize int
}

// NewSQLiteSink creates a sink writing to a database at path. If path is
// empty, a unique name is generated when Open is called.
func NewSQLiteSink(path string) *SQLiteSink {
	s := &SQLiteSink{dbPath: path, batchSize: 1000}
	atexit.Register(func() { _ = s.Flush() })
	return s
}

// Open establishes the database connection and prepares the schema and
// insert statement.
func (s *SQLiteSink) Open() error {
	if s.dbPath == "" {
		s.dbPath = "corestep_stats_" + xid.New().String() + ".db"
	}

	db, err := sql.Open("sqlite3", s.dbPath)
	if err != nil {
		return fmt.Errorf("stats: opening sqlite sink %q: %w", s.dbPath, err)
	}
	s.db = db

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS cycle_stats (
		cycle INTEGER NOT NULL,
		total_user_insns_committed INTEGER NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("stats: creating cycle_stats table: %w", err)
	}

	stmt, err := db.Prepare(
		`INSERT INTO cycle_stats (cycle, total_user_insns_committed) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("stats: preparing insert statement: %w", err)
	}
	s.stmt = stmt

	return nil
}

// DumpHeader is a no-op for SQLiteSink: the schema is its header.
func (s *SQLiteSink) DumpHeader() error {
	return nil
}

// DumpPeriodic buffers one row, flushing once the batch threshold is hit.
func (s *SQLiteSink) DumpPeriodic(cycle, totalUserInsnsCommitted uint64) error {
	s.pending = append(s.pending, [2]uint64{cycle, totalUserInsnsCommitted})

	if len(s.pending) >= s.batchSize {
		return s.Flush()
	}

	return nil
}

// Flush writes every pending row inside a single transaction.
func (s *SQLiteSink) Flush() error {
	if len(s.pending) == 0 || s.db == nil {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	stmt := tx.Stmt(s.stmt)
	for _, row := range s.pending {
		if _, err := stmt.Exec(row[0], row[1]); err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	s.pending = nil

	return tx.Commit()
}
