// Package exporter provides functionality to export rename history from the database.
package exporter

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"

	// _ import for sqlite driver registration
	_ "modernc.org/sqlite"

	"github.com/VoxDroid/renamr/internal/config"
	dbpkg "github.com/VoxDroid/renamr/internal/db"
)

// ExportDatabase copies the active renamr database to dstPath.
func ExportDatabase(dstPath string) error {
	src, err := config.DBPath()
	if err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source db: %w", err)
	}
	defer func() { _ = in.Close() }()
	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return fmt.Errorf("create dst dir: %w", err)
	}
	out, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("create dst db: %w", err)
	}
	defer func() { _ = out.Close() }()
	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy db: %w", err)
	}
	return nil
}

// ExportBatch exports a single rename batch into a standalone SQLite DB at
// dstPath. If the batch does not exist an error is returned.
func ExportBatch(srcDB *sql.DB, batchID int64, dstPath string) error {
	row := srcDB.QueryRow("SELECT id, base_path, matcher, renamer, replacement, author_name, author_email, created_at, rolled_back_at FROM rename_batches WHERE id = ?", batchID)
	var id int64
	var basePath, matcher, renamer, replacement, createdAt string
	var authorName, authorEmail, rolledBackAt sql.NullString
	if err := row.Scan(&id, &basePath, &matcher, &renamer, &replacement, &authorName, &authorEmail, &createdAt, &rolledBackAt); err != nil {
		return fmt.Errorf("select batch: %w", err)
	}

	rows, err := srcDB.Query("SELECT position, src, dst, status FROM rename_entries WHERE batch_id = ? ORDER BY position ASC", id)
	if err != nil {
		return fmt.Errorf("select entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	type entry struct {
		pos      int
		src, dst string
		status   string
	}
	entries := []entry{}
	for rows.Next() {
		var e entry
		if err := rows.Scan(&e.pos, &e.src, &e.dst, &e.status); err != nil {
			return err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	// Create destination DB and apply schema
	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return fmt.Errorf("create dst dir: %w", err)
	}
	dstDB, err := sql.Open("sqlite", dstPath)
	if err != nil {
		return fmt.Errorf("open dst db: %w", err)
	}
	defer func() { _ = dstDB.Close() }()

	if err := dbpkg.ApplyMigrations(dstDB); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}

	res, err := dstDB.Exec("INSERT INTO rename_batches (base_path, matcher, renamer, replacement, author_name, author_email, created_at, rolled_back_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		basePath, matcher, renamer, replacement, authorName, authorEmail, createdAt, rolledBackAt)
	if err != nil {
		return fmt.Errorf("insert batch: %w", err)
	}
	newID, err := res.LastInsertId()
	if err != nil {
		return err
	}
	for _, e := range entries {
		if _, err := dstDB.Exec("INSERT INTO rename_entries (batch_id, position, src, dst, status) VALUES (?, ?, ?, ?, ?)", newID, e.pos, e.src, e.dst, e.status); err != nil {
			return fmt.Errorf("insert entry: %w", err)
		}
	}
	return nil
}
