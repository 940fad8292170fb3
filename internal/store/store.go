package store

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"slices"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is stamped into PRAGMA user_version when the schema is
// created. Open refuses any other non-zero version.
const schemaVersion = 1

// ErrSchemaMismatch is returned by Open for a database that was not
// created by this version of sortbench.
var ErrSchemaMismatch = errors.New("incompatible results database")

// tableColumns is the column layout schema.sql creates, checked on reopen.
var tableColumns = map[string][]string{
	"runs":    {"id", "input_hash", "settings_hash", "element_type", "input_len", "trials", "created_at"},
	"results": {"run_id", "seq", "algorithm", "label", "total_seconds", "average_seconds"},
}

// pragmas are connection settings applied on every open.
var pragmas = []struct {
	name  string
	value string
}{
	{"journal_mode", "WAL"},
	{"synchronous", "NORMAL"},
	{"busy_timeout", "5000"},
	{"foreign_keys", "ON"},
}

// Store persists benchmark runs and their per-algorithm results in SQLite.
type Store struct {
	db *sql.DB
}

// Open opens the results database at path, creating it and its schema when
// the file is new. A run writes from one goroutine, so the pool holds a
// single connection and the pragmas apply to every statement.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := prepare(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func prepare(db *sql.DB) error {
	if err := db.Ping(); err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}

	for _, p := range pragmas {
		if _, err := db.Exec(fmt.Sprintf("PRAGMA %s = %s", p.name, p.value)); err != nil {
			return fmt.Errorf("set pragma %s: %w", p.name, err)
		}
	}

	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}

	switch version {
	case 0:
		return createSchema(db)
	case schemaVersion:
		return checkSchema(db)
	default:
		return fmt.Errorf("%w: schema version %d, expected %d", ErrSchemaMismatch, version, schemaVersion)
	}
}

// createSchema creates every table and stamps the version atomically. A
// foreign database that already has a runs or results table fails here
// instead of being written into.
func createSchema(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(schemaSQL); err != nil {
		return fmt.Errorf("%w: create schema: %v", ErrSchemaMismatch, err)
	}
	if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		return fmt.Errorf("create schema: stamp version: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// checkSchema compares the stored tables against tableColumns.
func checkSchema(db *sql.DB) error {
	for table, want := range tableColumns {
		got, err := columns(db, table)
		if err != nil {
			return err
		}
		if !slices.Equal(got, want) {
			return fmt.Errorf("%w: table %s has columns %v, expected %v", ErrSchemaMismatch, table, got, want)
		}
	}
	return nil
}

func columns(db *sql.DB, table string) ([]string, error) {
	rows, err := db.Query("SELECT name FROM pragma_table_info(?) ORDER BY cid", table)
	if err != nil {
		return nil, fmt.Errorf("inspect table %s: %w", table, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("inspect table %s: %w", table, err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("inspect table %s: %w", table, err)
	}
	return names, nil
}
