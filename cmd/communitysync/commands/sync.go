package commands

import (
	"log/slog"

	"communitysync/services/directory"

	"github.com/spf13/cobra"
)

var syncOut string

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Fetch members and companies and write renderer snapshots.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		service, cleanup, err := setup(ctx)
		if err != nil {
			return err
		}
		defer cleanup()

		dir, err := service.BuildDirectory(ctx)
		if err != nil {
			return err
		}

		err = directory.WriteSnapshot(dir, syncOut)
		if err != nil {
			return err
		}

		slog.InfoContext(ctx, "wrote renderer snapshot",
			"out", syncOut,
			"members", len(dir.Members),
			"companies", len(dir.Companies),
		)
		return nil
	},
}

func init() {
	syncCmd.Flags().StringVar(
		&syncOut, "out", "_data",
		"directory to write members.json and companies.json into",
	)
}
