// Package importer restores rename history from exported SQLite databases.
package importer

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	// _ import for sqlite driver registration
	_ "modernc.org/sqlite"

	"github.com/VoxDroid/renamr/internal/config"
)

// ImportDatabase copies srcPath into the default database location. If overwrite
// is false and the destination exists, an error is returned.
func ImportDatabase(srcPath string, overwrite bool) error {
	dst, err := config.DBPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(dst); err == nil && !overwrite {
		return errors.New("destination database exists; use overwrite=true to replace")
	}
	in, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer func() { _ = in.Close() }()
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create dst dir: %w", err)
	}
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create dst: %w", err)
	}
	defer func() { _ = out.Close() }()
	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy db: %w", err)
	}
	return nil
}

// ImportBatches merges all rename batches from srcPath into the active DB.
// Imported batches receive fresh IDs; their entries keep their recorded order.
func ImportBatches(srcPath string) error {
	src, err := sql.Open("sqlite", srcPath)
	if err != nil {
		return fmt.Errorf("open src: %w", err)
	}
	defer func() { _ = src.Close() }()

	dstPath, err := config.DBPath()
	if err != nil {
		return err
	}
	dst, err := sql.Open("sqlite", dstPath)
	if err != nil {
		return fmt.Errorf("open dst: %w", err)
	}
	defer func() { _ = dst.Close() }()

	rows, err := src.Query("SELECT id, base_path, matcher, renamer, replacement, author_name, author_email, created_at, rolled_back_at FROM rename_batches ORDER BY id ASC")
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var id int64
		var basePath, matcher, renamer, replacement, created string
		var authorName, authorEmail, rolledBack sql.NullString
		if err := rows.Scan(&id, &basePath, &matcher, &renamer, &replacement, &authorName, &authorEmail, &created, &rolledBack); err != nil {
			return err
		}
		newID, err := insertBatch(dst, basePath, matcher, renamer, replacement, authorName, authorEmail, created, rolledBack)
		if err != nil {
			return err
		}
		if err := copyEntries(src, id, dst, newID); err != nil {
			return err
		}
	}
	return rows.Err()
}

func insertBatch(dst *sql.DB, basePath, matcher, renamer, replacement string, authorName, authorEmail sql.NullString, created string, rolledBack sql.NullString) (int64, error) {
	res, err := dst.Exec("INSERT INTO rename_batches (base_path, matcher, renamer, replacement, author_name, author_email, created_at, rolled_back_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		basePath, matcher, renamer, replacement, authorName, authorEmail, created, rolledBack)
	if err != nil {
		return 0, err
	}
	newID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return newID, nil
}
