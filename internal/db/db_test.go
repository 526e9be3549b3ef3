package db

import (
	"os"
	"testing"

	"github.com/VoxDroid/renamr/internal/config"
)

func TestInitDBCreatesFile(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Setenv("USERPROFILE", tmp)

	dbConn, err := InitDB()
	if err != nil {
		t.Fatalf("InitDB(): %v", err)
	}
	defer func() { _ = dbConn.Close() }()

	p, err := config.DBPath()
	if err != nil {
		t.Fatalf("DBPath(): %v", err)
	}
	if _, err := os.Stat(p); err != nil {
		t.Fatalf("db file not created: %v", err)
	}
}

func TestInitDBIdempotent(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Setenv("USERPROFILE", tmp)

	first, err := InitDB()
	if err != nil {
		t.Fatalf("InitDB() first: %v", err)
	}
	_ = first.Close()

	second, err := InitDB()
	if err != nil {
		t.Fatalf("InitDB() second: %v", err)
	}
	defer func() { _ = second.Close() }()
}
