package main

import (
	"github.com/DOCtorActoAntohich/fsa/internal/cli"
	"github.com/DOCtorActoAntohich/fsa/internal/config"
	"github.com/DOCtorActoAntohich/fsa/pkg/domain"
	"github.com/DOCtorActoAntohich/fsa/pkg/runner"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate an automaton description",
	Long: `Reads the description (default: the configured input, fsa.txt) and writes
either the first error or the completeness verdict followed by warnings.
Use "-" to read from stdin or write to stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd, args, runner.ModeValidate)
	},
}

var regexCmd = &cobra.Command{
	Use:   "regex [file]",
	Short: "Convert a deterministic automaton into a regular expression",
	Long: `Reads the description and writes the regular expression of its language,
or the blocking error (E1-E6). 'eps' denotes the empty word and '{}' the
empty language.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd, args, runner.ModeRegex)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{validateCmd, regexCmd} {
		cmd.Flags().StringP("output", "o", "", "Output file, '-' for stdout (default result.txt)")
		cmd.Flags().StringP("format", "f", "", "Report format: text, json")
		cmd.Flags().Bool("pretty", false, "Render the report as markdown when writing to stdout")
		addEngineFlags(cmd)
		rootCmd.AddCommand(cmd)
	}
}

func runReport(cmd *cobra.Command, args []string, mode runner.Mode) error {
	cfg, logger, err := setup(cmd, func(cfg *config.Config) {
		overrideString(cmd, "output", &cfg.Output)
		overrideString(cmd, "format", &cfg.Format)
		if len(args) > 0 {
			cfg.Input = args[0]
		}
	})
	if err != nil {
		return err
	}
	pretty, _ := cmd.Flags().GetBool("pretty")

	ctx := cli.NewSignalContext(cmd.Context())
	defer ctx.Cancel()

	engine, closeEngine, err := cli.NewEngine(ctx, cfg, logger, domain.LifecycleHooks{})
	if err != nil {
		return err
	}
	defer closeEngine()

	return cli.Execute(ctx, engine, cli.RunOptions{
		Mode:   mode,
		Input:  cfg.Input,
		Output: cfg.Output,
		Format: cfg.Format,
		Pretty: pretty,
		Stdout: cmd.OutOrStdout(),
		Logger: logger,
	})
}
