package cmd

import (
	"github.com/spf13/cobra"

	"github.com/VoxDroid/renamr/cmd/tui/ui"
	"github.com/VoxDroid/renamr/internal/config"
	"github.com/VoxDroid/renamr/internal/db"
	"github.com/VoxDroid/renamr/internal/journal"
	"github.com/VoxDroid/renamr/internal/renamer"
	"github.com/VoxDroid/renamr/internal/tui/adapters"
	modelpkg "github.com/VoxDroid/renamr/internal/tui/model"
	"github.com/VoxDroid/renamr/internal/user"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [dir]",
	Short: "Start the interactive rename session",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.LoadSettings()
		if err != nil {
			return err
		}
		dbConn, err := db.InitDB()
		if err != nil {
			return err
		}
		defer func() { _ = dbConn.Close() }()

		repo := journal.NewRepository(dbConn)
		opts := renamer.Options{}
		if p, ok, err := user.GetProfile(); err != nil {
			return err
		} else if ok {
			opts.AuthorName = p.Name
			opts.AuthorEmail = p.Email
		}

		planner := adapters.NewPlannerAdapter(repo, opts)
		jrnl := adapters.NewJournalAdapter(repo, renamer.OSMover{})
		rule := adapters.Rule{Match: settings.Match, Rename: settings.Rename, Replace: settings.Replace}
		session := modelpkg.New(planner, jrnl, baseFromArgs(args), rule, settings.ShowUnchanged, settings.PreviewLimit)

		p := ui.NewProgram(session)
		_, err = p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
