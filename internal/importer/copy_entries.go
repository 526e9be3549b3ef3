package importer

import "database/sql"

// copyEntries copies the entries of a source batch into dst under the new batch id
func copyEntries(src *sql.DB, srcBatchID int64, dst *sql.DB, newID int64) error {
	erows, err := src.Query("SELECT position, src, dst, status FROM rename_entries WHERE batch_id = ? ORDER BY position ASC", srcBatchID)
	if err != nil {
		return err
	}
	defer func() { _ = erows.Close() }()
	for erows.Next() {
		var pos int
		var from, to, status string
		if err := erows.Scan(&pos, &from, &to, &status); err != nil {
			return err
		}
		if _, err := dst.Exec("INSERT INTO rename_entries (batch_id, position, src, dst, status) VALUES (?, ?, ?, ?, ?)", newID, pos, from, to, status); err != nil {
			return err
		}
	}
	return erows.Err()
}
