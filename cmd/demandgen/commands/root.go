package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/demandgen/demandgen/pkg/config"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

// Execute runs the root command
func Execute(ctx context.Context, version, commit, buildDate string) error {
	rootCmd := newRootCommand(version, commit, buildDate)
	return rootCmd.ExecuteContext(ctx)
}

func newRootCommand(version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "demandgen",
		Short: "Demandgen - Feedback-directed input synthesis engine",
		Long: `Demandgen synthesizes typed input values on demand by searching a catalog
of constructors and methods, composing call sequences from pooled values,
executing them and feeding successful results back into the pool.

Features:
  - Demand-driven producer discovery over the operation catalog
  - Sequence synthesis from primary and secondary object pools
  - Execute-and-pool feedback loop with per-session identifiers
  - Gaussian and string value fuzzing of synthesized inputs
  - Deterministic output under a fixed seed`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
	}

	// Persistent flags available to all commands
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(newValidateCommand())
	rootCmd.AddCommand(newGenerateCommand())

	return rootCmd
}

// loadConfig resolves the effective configuration: the file named by --config
// when given, built-in defaults otherwise. Verbose mode forces debug logging.
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	return cfg, nil
}
