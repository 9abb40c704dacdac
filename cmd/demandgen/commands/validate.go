package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/demandgen/demandgen/pkg/config"
)

func newValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [path]",
		Short: "Validate a configuration file",
		Long: `Validate a YAML configuration file.

This command checks:
  - YAML syntax validity
  - Gaussian standard deviation bounds
  - Pool policy and logging values`,
		Example: `  # Validate the file given via --config
  demandgen validate -c config.yaml

  # Validate a specific file
  demandgen validate ./config.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath
			if len(args) > 0 {
				path = args[0]
			}
			if path == "" {
				return fmt.Errorf("no configuration file given; pass a path or use --config")
			}

			cfg, err := config.Load(path)
			if err != nil {
				return err
			}

			fmt.Printf("%s is valid\n", path)
			fmt.Printf("  seed:             %d\n", cfg.Seed)
			fmt.Printf("  gaussian stdev:   %g\n", cfg.GaussianStdDev)
			fmt.Printf("  pool policy:      %s\n", cfg.PoolPolicy)
			if len(cfg.ConsideredTypes) > 0 {
				fmt.Printf("  considered types: %v\n", cfg.ConsideredTypes)
			}
			return nil
		},
	}

	return cmd
}
