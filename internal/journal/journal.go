// Package journal records applied rename batches so they can be inspected
// and rolled back.
package journal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
)

// Repository provides CRUD operations for rename batches and their entries.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new Repository using db.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// RecordBatch inserts a batch and its entries in one transaction and returns
// the new batch ID. Entry positions are assigned from slice order.
func (r *Repository) RecordBatch(b *Batch) (int64, error) {
	if b.BasePath == "" {
		return 0, fmt.Errorf("invalid batch: base path cannot be empty")
	}
	trx, err := r.db.Begin()
	if err != nil {
		return 0, err
	}
	defer func() { _ = trx.Rollback() }()

	res, err := trx.Exec(`INSERT INTO rename_batches
		(base_path, matcher, renamer, replacement, author_name, author_email, created_at)
		VALUES (?, ?, ?, ?, ?, ?, datetime('now'))`,
		b.BasePath, b.Matcher, b.Renamer, b.Replacement, b.AuthorName, b.AuthorEmail)
	if err != nil {
		return 0, fmt.Errorf("insert batch: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	for i, e := range b.Entries {
		if _, err := trx.Exec("INSERT INTO rename_entries (batch_id, position, src, dst, status) VALUES (?, ?, ?, ?, ?)",
			id, i+1, e.Src, e.Dst, e.Status); err != nil {
			return 0, fmt.Errorf("insert entry: %w", err)
		}
	}
	if err := trx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// GetBatch retrieves a batch and its entries by ID. Returns nil when absent.
func (r *Repository) GetBatch(id int64) (*Batch, error) {
	row := r.db.QueryRow(`SELECT id, base_path, matcher, renamer, replacement, author_name, author_email, created_at, rolled_back_at
		FROM rename_batches WHERE id = ?`, id)
	var b Batch
	if err := row.Scan(&b.ID, &b.BasePath, &b.Matcher, &b.Renamer, &b.Replacement, &b.AuthorName, &b.AuthorEmail, &b.CreatedAt, &b.RolledBackAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	rows, err := r.db.Query("SELECT id, batch_id, position, src, dst, status FROM rename_entries WHERE batch_id = ? ORDER BY position ASC", b.ID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.BatchID, &e.Position, &e.Src, &e.Dst, &e.Status); err != nil {
			return nil, err
		}
		b.Entries = append(b.Entries, e)
	}
	return &b, nil
}

// ListBatches returns all batches (without their entries), newest first.
func (r *Repository) ListBatches() ([]Batch, error) {
	rows, err := r.db.Query(`SELECT id, base_path, matcher, renamer, replacement, author_name, author_email, created_at, rolled_back_at
		FROM rename_batches ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []Batch
	for rows.Next() {
		var b Batch
		if err := rows.Scan(&b.ID, &b.BasePath, &b.Matcher, &b.Renamer, &b.Replacement, &b.AuthorName, &b.AuthorEmail, &b.CreatedAt, &b.RolledBackAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

// SearchBatches searches batches by base path or pattern content.
func (r *Repository) SearchBatches(query string) ([]Batch, error) {
	pattern := "%" + query + "%"
	rows, err := r.db.Query(`SELECT id, base_path, matcher, renamer, replacement, author_name, author_email, created_at, rolled_back_at
		FROM rename_batches
		WHERE base_path LIKE ? OR matcher LIKE ? OR renamer LIKE ? OR replacement LIKE ?
		ORDER BY id DESC`, pattern, pattern, pattern, pattern)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var out []Batch
	for rows.Next() {
		var b Batch
		if err := rows.Scan(&b.ID, &b.BasePath, &b.Matcher, &b.Renamer, &b.Replacement, &b.AuthorName, &b.AuthorEmail, &b.CreatedAt, &b.RolledBackAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

// DeleteBatch removes a batch and its entries by ID.
func (r *Repository) DeleteBatch(id int64) error {
	trx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = trx.Rollback() }()

	if _, err := trx.Exec("DELETE FROM rename_entries WHERE batch_id = ?", id); err != nil {
		return err
	}
	if _, err := trx.Exec("DELETE FROM rename_batches WHERE id = ?", id); err != nil {
		return err
	}
	return trx.Commit()
}

// Mover abstracts the filesystem rename so rollback can reuse the same git or
// plain movers apply uses.
type Mover interface {
	Move(src, dst string) error
}

// RollbackResult summarizes what a rollback restored.
type RollbackResult struct {
	Restored int
	Skipped  int
}

// Rollback re-renames a batch's `renamed` entries dst -> src in reverse
// position order and stamps the batch. Entries whose source path re-exists
// are skipped so rollback never overwrites. Rolling back twice is an error.
func (r *Repository) Rollback(id int64, mv Mover) (RollbackResult, error) {
	b, err := r.GetBatch(id)
	if err != nil {
		return RollbackResult{}, err
	}
	if b == nil {
		return RollbackResult{}, fmt.Errorf("batch not found: %d", id)
	}
	if b.RolledBackAt.Valid {
		return RollbackResult{}, fmt.Errorf("batch %d already rolled back at %s", id, b.RolledBackAt.String)
	}

	var res RollbackResult
	for i := len(b.Entries) - 1; i >= 0; i-- {
		e := b.Entries[i]
		if e.Status != StatusRenamed {
			continue
		}
		srcAbs := filepath.Join(b.BasePath, filepath.FromSlash(e.Src))
		dstAbs := filepath.Join(b.BasePath, filepath.FromSlash(e.Dst))
		if pathExists(srcAbs) {
			res.Skipped++
			continue
		}
		if err := mv.Move(dstAbs, srcAbs); err != nil {
			return res, fmt.Errorf("restore %s: %w", e.Src, err)
		}
		res.Restored++
	}

	if err := r.markRolledBack(id); err != nil {
		return res, err
	}
	return res, nil
}

func pathExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

func (r *Repository) markRolledBack(id int64) error {
	res, err := r.db.Exec("UPDATE rename_batches SET rolled_back_at = datetime('now') WHERE id = ? AND rolled_back_at IS NULL", id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("batch %d already rolled back", id)
	}
	return nil
}
