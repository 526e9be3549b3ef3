package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/VoxDroid/renamr/internal/config"
)

// InitDB ensures the data directory exists, opens the SQLite journal
// database, and creates the schema if it does not exist.
func InitDB() (*sql.DB, error) {
	dbPath, err := config.DBPath()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if err := ApplyMigrations(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// OpenAt opens an existing renamr database at path without migrating it.
// Used for inspecting exported databases.
func OpenAt(path string) (*sql.DB, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("database not found: %w", err)
	}
	return sql.Open("sqlite", path)
}
