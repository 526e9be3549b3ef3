package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/renamr/internal/db"
	"github.com/VoxDroid/renamr/internal/exporter"
)

// defaultExportPath picks ./renamr-YYYY-MM-DD.db, suffixing -N to avoid
// overwriting an existing file.
func defaultExportPath() string {
	date := time.Now().UTC().Format("2006-01-02")
	dst := filepath.Join(".", fmt.Sprintf("renamr-%s.db", date))
	si := 1
	for {
		if _, err := os.Stat(dst); os.IsNotExist(err) {
			return dst
		}
		dst = filepath.Join(".", fmt.Sprintf("renamr-%s-%d.db", date, si))
		si++
	}
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the journal database or a single batch to portable files",
}

var exportDbCmd = &cobra.Command{
	Use:   "db --dst <path>",
	Short: "Export the active journal database to a file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		dst, _ := cmd.Flags().GetString("dst")
		if dst == "" {
			dst = defaultExportPath()
		}
		// ensure DB exists before copying it
		dbConn, err := db.InitDB()
		if err != nil {
			return err
		}
		_ = dbConn.Close()
		if err := exporter.ExportDatabase(dst); err != nil {
			return err
		}
		cmd.Printf("exported database to %s\n", dst)
		return nil
	},
}

var exportBatchCmd = &cobra.Command{
	Use:   "batch <id> --dst <path>",
	Short: "Export a single batch to a standalone SQLite file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid batch id: %s", args[0])
		}
		dst, _ := cmd.Flags().GetString("dst")
		if dst == "" {
			return fmt.Errorf("--dst is required")
		}
		dbConn, err := db.InitDB()
		if err != nil {
			return err
		}
		defer func() { _ = dbConn.Close() }()
		if err := exporter.ExportBatch(dbConn, id, dst); err != nil {
			return err
		}
		cmd.Printf("exported batch %d to %s\n", id, dst)
		return nil
	},
}

func init() {
	exportDbCmd.Flags().String("dst", "", "Destination file path for the exported DB")
	exportBatchCmd.Flags().String("dst", "", "Destination file path for the exported batch (required)")
	exportCmd.AddCommand(exportDbCmd)
	exportCmd.AddCommand(exportBatchCmd)
	rootCmd.AddCommand(exportCmd)
}
