package journal

import "database/sql"

// Entry statuses recorded for each planned rename.
const (
	StatusRenamed       = "renamed"
	StatusSkippedExists = "skipped-exists"
	StatusFailed        = "failed"
)

// Batch is one applied rename run: the patterns that produced it and the
// per-file outcomes.
type Batch struct {
	ID           int64
	BasePath     string
	Matcher      string
	Renamer      string
	Replacement  string
	AuthorName   sql.NullString
	AuthorEmail  sql.NullString
	CreatedAt    string
	RolledBackAt sql.NullString
	Entries      []Entry
}

// Entry is a single rename within a batch. Src and Dst are base-relative
// slash paths.
type Entry struct {
	ID       int64
	BatchID  int64
	Position int
	Src      string
	Dst      string
	Status   string
}
