package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "communitysync",
	Short: "communitysync pulls the member and company directory from OfficeRnd for the static site renderer.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&configPath, "config", "config.json5",
		"path to the config file",
	)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(membersCmd)
	rootCmd.AddCommand(companiesCmd)
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
