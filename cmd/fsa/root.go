package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/DOCtorActoAntohich/fsa/internal/config"
	"github.com/DOCtorActoAntohich/fsa/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fsa",
	Short: "fsa validates finite-state automata and converts them to regular expressions",
	Long: `fsa reads a finite-state automaton description, reports errors (E1-E6),
warnings (W1-W3) and completeness, and converts deterministic automata into
regular expressions with Kleene's algorithm.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Configuration file (YAML)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
}

// setup loads the configuration (file, FSA_* environment, then flags) and
// builds the logger. apply runs before validation for command-specific flags.
func setup(cmd *cobra.Command, apply ...func(*config.Config)) (config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.FromEnv(path)
	if err != nil {
		return config.Config{}, nil, err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return config.Config{}, nil, err
	}

	overrideString(cmd, "cache", &cfg.Cache.Driver)
	if cmd.Flags().Lookup("max-length") != nil && cmd.Flags().Changed("max-length") {
		cfg.MaxLength, _ = cmd.Flags().GetInt("max-length")
	}
	if cmd.Flags().Lookup("port") != nil && cmd.Flags().Changed("port") {
		cfg.HTTP.Port, _ = cmd.Flags().GetInt("port")
	}
	for _, fn := range apply {
		fn(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, nil, err
	}

	return cfg, logging.New(level), nil
}

func overrideString(cmd *cobra.Command, flag string, dst *string) {
	if cmd.Flags().Lookup(flag) == nil || !cmd.Flags().Changed(flag) {
		return
	}
	*dst, _ = cmd.Flags().GetString(flag)
}

// addEngineFlags registers the flags shared by commands that evaluate automata.
func addEngineFlags(cmd *cobra.Command) {
	cmd.Flags().Int("max-length", 0, "Abort synthesis when an expression exceeds this many bytes (0 = unlimited)")
	cmd.Flags().String("cache", "", "Result cache driver: none, memory, redis")
}

// addServerEngineFlags is addEngineFlags for serve and mcp, where an unset
// limit falls back to http.max_length.
func addServerEngineFlags(cmd *cobra.Command) {
	addEngineFlags(cmd)
	cmd.Flags().Lookup("max-length").Usage = fmt.Sprintf(
		"Abort synthesis when an expression exceeds this many bytes (0 = http.max_length, default %d)",
		config.DefaultServerMaxLength)
}
