package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ajax-example",
	Short: "Serve the Ajax Example admin page, widget and AJAX endpoint",
	Long: `ajax-example serves a small AJAX round trip: a public widget saves a
line of text, and the admin options page reads it back or echoes its own form.

With no subcommand it runs serve. Server flags follow the subcommand:

  ajax-example serve -p 3318 -t sqlite -d ajax-example.db
  ajax-example install --env-file prod.env
  ajax-example admin-key`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(args)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(uninstallCmd)
	rootCmd.AddCommand(adminKeyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		fmt.Fprintln(os.Stderr, "Error: "+err.Error())
		os.Exit(1)
	}
}
