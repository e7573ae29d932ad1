package main

import (
	"fmt"
	"strings"

	"github.com/DOCtorActoAntohich/fsa"
	"github.com/DOCtorActoAntohich/fsa/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of fsa",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		if tui.IsTerminal(out) {
			tui.PrintBanner(out)
		}
		fmt.Fprintf(out, "fsa version %s\n", strings.TrimSpace(fsa.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
