// Package taskdb mirrors the tracker's entity collections into a local
// sqlite file so state survives between CLI runs.
//
// The tracker.Store stays canonical: taskdb loads a snapshot at startup and
// then follows the store's change notifications, replacing the affected
// tables wholesale. It never writes back into the store except through
// Seed.
package taskdb

import (
	"database/sql"
	_ "embed"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schema string

// DB wraps the database connection.
type DB struct {
	*sql.DB
}

// Open opens the database at path and initializes the schema. An empty
// path falls back to the default location in the XDG data directory.
func Open(path string) (*DB, error) {
	if path == "" {
		var err error
		path, err = defaultPath()
		if err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &DB{db}, nil
}

// defaultPath returns the default database file location.
func defaultPath() (string, error) {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataDir = filepath.Join(home, ".local", "share")
	}

	appDir := filepath.Join(dataDir, "taskflow")
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, "taskflow.db"), nil
}
