package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/VoxDroid/renamr/internal/db"
	"github.com/VoxDroid/renamr/internal/journal"
)

func seedHistoryBatches(t *testing.T) {
	t.Helper()
	dbConn, err := db.InitDB()
	if err != nil {
		t.Fatalf("InitDB(): %v", err)
	}
	defer func() { _ = dbConn.Close() }()

	repo := journal.NewRepository(dbConn)
	for _, b := range []journal.Batch{
		{
			BasePath:    "/photos",
			Matcher:     `.*\.jpeg$`,
			Renamer:     `(jpeg)`,
			Replacement: "jpg",
			Entries:     []journal.Entry{{Src: "a.jpeg", Dst: "a.jpg", Status: journal.StatusRenamed}},
		},
		{
			BasePath:    "/music",
			Matcher:     `.*\.flac$`,
			Renamer:     `(flac)`,
			Replacement: "ogg",
			Entries:     []journal.Entry{{Src: "t.flac", Dst: "t.ogg", Status: journal.StatusRenamed}},
		},
	} {
		batch := b
		if _, err := repo.RecordBatch(&batch); err != nil {
			t.Fatalf("RecordBatch: %v", err)
		}
	}
}

func runHistory(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append([]string{"history"}, args...))
	resetRootCmd(t, historyCmd, "filter", "fuzzy")
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute history: %v", err)
	}
	return out.String()
}

func TestHistoryListsNewestFirst(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Setenv("USERPROFILE", tmp)
	seedHistoryBatches(t)

	got := runHistory(t)
	if !strings.Contains(got, "/photos") || !strings.Contains(got, "/music") {
		t.Fatalf("expected both batches, got %q", got)
	}
	if strings.Index(got, "/music") > strings.Index(got, "/photos") {
		t.Fatalf("expected newest first, got %q", got)
	}
}

func TestHistoryFilterUsesTextSearch(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Setenv("USERPROFILE", tmp)
	seedHistoryBatches(t)

	got := runHistory(t, "--filter", "photos")
	if !strings.Contains(got, "/photos") {
		t.Fatalf("filter missed /photos: %q", got)
	}
	if strings.Contains(got, "/music") {
		t.Fatalf("filter leaked /music: %q", got)
	}
}

func TestHistoryFuzzyMatchesSubsequence(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Setenv("USERPROFILE", tmp)
	seedHistoryBatches(t)

	// not a substring, so the plain filter finds nothing
	got := runHistory(t, "--filter", "phts")
	if !strings.Contains(got, "no batches recorded") {
		t.Fatalf("plain filter should miss subsequence query: %q", got)
	}

	got = runHistory(t, "--filter", "phts", "--fuzzy")
	if !strings.Contains(got, "/photos") {
		t.Fatalf("fuzzy filter missed /photos: %q", got)
	}
	if strings.Contains(got, "/music") {
		t.Fatalf("fuzzy filter leaked /music: %q", got)
	}
}

func TestHistoryEmpty(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Setenv("USERPROFILE", tmp)

	got := runHistory(t)
	if !strings.Contains(got, "no batches recorded") {
		t.Fatalf("expected empty notice, got %q", got)
	}
}
