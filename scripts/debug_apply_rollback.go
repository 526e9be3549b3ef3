// Debug helper for exercising an apply/rollback round trip end to end.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/VoxDroid/renamr/internal/db"
	"github.com/VoxDroid/renamr/internal/journal"
	"github.com/VoxDroid/renamr/internal/renamer"
)

func main() {
	tmp, err := os.MkdirTemp("", "renamrdebug")
	if err != nil { panic(err) }
	defer func() { _ = os.RemoveAll(tmp) }()

	// isolate the journal DB in the temp dir
	_ = os.Setenv("HOME", tmp)
	_ = os.Setenv("USERPROFILE", tmp)

	base := filepath.Join(tmp, "photos")
	_ = os.MkdirAll(base, 0o755)
	for _, n := range []string{"a.jpeg", "b.jpeg", "c.png"} {
		_ = os.WriteFile(filepath.Join(base, n), []byte(n), 0o644)
	}

	dbConn, err := db.InitDB()
	if err != nil { panic(err) }
	defer func() { _ = dbConn.Close() }()
	repo := journal.NewRepository(dbConn)

	rule := renamer.Rule{Match: `.*\.jpeg$`, Rename: `(jpeg)`, Replace: "jpg"}
	plan, err := renamer.Preview(base, rule)
	if err != nil { panic(err) }
	for _, c := range plan.Changes {
		fmt.Println(" - plan:", c.Src, "->", c.Dst, "changed:", c.Changed)
	}

	sum, err := renamer.Apply(context.Background(), repo, plan, renamer.Options{AuthorName: "debug"})
	fmt.Println("apply:", sum, "err:", err)

	batches, _ := repo.ListBatches()
	for _, b := range batches {
		fmt.Println(" - batch:", b.ID, b.BasePath, b.CreatedAt)
	}

	res, err := repo.Rollback(sum.BatchID, renamer.OSMover{})
	fmt.Println("rollback restored:", res.Restored, "skipped:", res.Skipped, "err:", err)
	ents, _ := os.ReadDir(base)
	for _, e := range ents { fmt.Println(" - entry:", e.Name()) }
}
