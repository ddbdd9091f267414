package commands

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var membersCmd = &cobra.Command{
	Use:   "members",
	Short: "Run the pipeline and print the surviving member records.",
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

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"slug", "name", "team", "img", "contact hidden", "socials hidden"})
		for _, m := range dir.Members {
			t.AppendRow(table.Row{
				m.Slug, m.Name, m.TeamName, m.ImagePriority,
				m.HideContactDetails, m.HidePublicProfiles,
			})
		}
		t.SetStyle(table.StyleLight)
		t.Render()
		return nil
	},
}
