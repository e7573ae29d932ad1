package main

import (
	"github.com/DOCtorActoAntohich/fsa/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [file]",
	Short: "Export the automaton as a diagram",
	Long: `Outputs a Mermaid flowchart (default) or a Graphviz DOT digraph of the
automaton. Final states are double circles; unreachable states are dimmed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := setup(cmd)
		if err != nil {
			return err
		}
		if len(args) > 0 {
			cfg.Input = args[0]
		}
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")

		return cli.RenderGraph(cmd.Context(), cli.GraphOptions{
			Input:  cfg.Input,
			Output: output,
			Format: format,
			Stdout: cmd.OutOrStdout(),
		})
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().String("format", "mermaid", "Diagram format: mermaid, dot")
	graphCmd.Flags().StringP("output", "o", cli.Stdio, "Output file, '-' for stdout")
}
