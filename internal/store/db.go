package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a record addressed by id does not exist.
var ErrNotFound = errors.New("record not found")

// timestampLayout is the local wall-clock form used for created/updated
// columns, matching sqlite's datetime('now','localtime').
const timestampLayout = "2006-01-02 15:04:05"

// DB wraps a sql.DB connection to the focussphere SQLite database.
type DB struct {
	conn *sql.DB

	// Now stamps created_at, updated_at and logged_at columns.
	Now func() time.Time
}

// connPragmas are applied by the driver to every pooled connection.
const connPragmas = "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

// Open opens the SQLite database at path, creating it and its parent
// directory when missing, and migrates it to the current schema.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating database dir: %w", err)
	}
	conn, err := sql.Open("sqlite", "file:"+path+"?"+connPragmas)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return newDB(conn)
}

// OpenInMemory opens a private in-memory database.
func OpenInMemory() (*DB, error) {
	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}
	// Every pooled connection would otherwise get its own empty database.
	conn.SetMaxOpenConns(1)
	return newDB(conn)
}

func newDB(conn *sql.DB) (*DB, error) {
	db := &DB{conn: conn, Now: time.Now}
	if err := db.Migrate(); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Conn exposes the underlying pool.
func (db *DB) Conn() *sql.DB {
	return db.conn
}

func (db *DB) timestamp() string {
	return db.Now().Format(timestampLayout)
}

// affectedOne maps a zero-row update or delete to ErrNotFound.
func affectedOne(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
