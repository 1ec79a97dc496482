package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mercator-hq/hornet/pkg/config"
)

var validateFlags struct {
	env bool
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a configuration file",
	Long: `Load a Hornet configuration file, apply defaults, and run validation.

The sample rate gets special treatment: a non-numeric sample_rate is not a
validation error, because the tracer tolerates it at runtime by recording
every trace. validate surfaces it as a warning so the problem is caught
before deployment rather than discovered as an unexpected 100% sample rate.

Examples:
  # Validate the default config file
  hornet validate

  # Validate a specific file
  hornet validate --config /etc/hornet/hornet.yaml

  # Validate with environment overrides applied
  hornet validate --env`,
	RunE: validateConfig,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().BoolVar(&validateFlags.env, "env", false, "apply HORNET_* environment overrides before validating")
}

func validateConfig(cmd *cobra.Command, args []string) error {
	load := config.LoadConfig
	if validateFlags.env {
		load = config.LoadConfigWithEnvOverrides
	}

	cfg, err := load(cfgFile)
	if err != nil {
		return err
	}

	fmt.Printf("Configuration valid: %s\n", cfgFile)
	if verbose {
		fmt.Printf("  service_name: %s\n", cfg.ServiceName)
		fmt.Printf("  sink: %s\n", cfg.Sink.Type)
		fmt.Printf("  logging: %s/%s\n", cfg.Logging.Level, cfg.Logging.Format)
		fmt.Printf("  instrumentations: %d\n", len(cfg.Instrumentations))
	}

	if err := config.CheckSampleRate(cfg); err != nil {
		fmt.Printf("Warning: %v\n", err)
		fmt.Println("  the tracer will record every trace and report a diagnostic at startup")
	} else if cfg.SampleRate != nil {
		fmt.Printf("  sample_rate: 1 in %v\n", cfg.SampleRate)
	}

	return nil
}
