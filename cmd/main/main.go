package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// app carries the state shared by every subcommand once the root command
// has loaded the configuration.
type app struct {
	configPath string
	config     *Config
	logger     *slog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd builds the complete command tree. Every call returns a fresh
// tree so tests can execute commands independently.
func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "glossolalia",
		Short: "Invent words that look like the words you already have",
		Long: `Glossolalia splits a list of words into runs of vowels, consonants and
other characters, learns which run tends to follow which, and walks those
transitions at random to invent new words.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			config, err := LoadConfig(a.configPath)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			a.config = config
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: parseLogLevel(config.LogLevel)}))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "./config.json", "path to the JSON config file (created with defaults if missing)")

	rootCmd.AddCommand(newGenerateCmd(a))
	rootCmd.AddCommand(newSegmentCmd(a))
	rootCmd.AddCommand(newStatsCmd(a))
	rootCmd.AddCommand(newImportCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "glossolalia %s (commit %s, built %s)\n", Version, Commit, BuildDate)
		},
	}
}
