package commands

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var companiesCmd = &cobra.Command{
	Use:   "companies",
	Short: "Run the pipeline and print the surviving company records.",
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
		t.AppendHeader(table.Row{"slug", "name", "url", "img", "members"})
		for _, c := range dir.Companies {
			t.AppendRow(table.Row{
				c.Slug, c.Name, c.URL, c.ImagePriority, len(c.TeamMembers),
			})
		}
		t.SetStyle(table.StyleLight)
		t.Render()
		return nil
	},
}
