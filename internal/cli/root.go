package cli

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/geekmdtravis/geekmd-calc/internal/config"
	"github.com/geekmdtravis/geekmd-calc/internal/report"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Format     string // "json" | "text"; empty means use config
	Verbose    bool
}

// NewRootCommand creates the root command for the geekmd CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "geekmd",
		Short: "Clinical risk calculators",
		Long:  "Compute HOMA-IR and 10-year ASCVD risk from clinical inputs.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.Format != "" && !config.ValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, config.Formats))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaultConfig := "configs/config.yaml"
	if v := os.Getenv("GEEKMD_CONFIG"); v != "" {
		defaultConfig = v
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", defaultConfig, "path to YAML config")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "", "output format (json|text)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewHomaIRCommand(opts))
	cmd.AddCommand(NewAscvdCommand(opts))
	cmd.AddCommand(NewCaseCommand(opts))

	return cmd
}

// loadConfig reads the config file and applies the --format override.
func (o *RootOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "load config", err)
	}
	if o.Format != "" {
		cfg.Output.Format = o.Format
	}
	if err := cfg.Validate(); err != nil {
		return nil, WrapExitError(ExitCommandError, "config validation", err)
	}
	o.debugf("config loaded from %s (format=%s, ascvd method=%q)", o.ConfigPath, cfg.Output.Format, cfg.Ascvd.Method)
	return cfg, nil
}

func (o *RootOptions) printer(cmd *cobra.Command, cfg *config.Config) *report.Printer {
	return report.NewPrinter(cfg.Output.Format, cmd.OutOrStdout())
}

func (o *RootOptions) debugf(format string, args ...any) {
	if o.Verbose {
		log.Printf("[DEBUG] "+format, args...)
	}
}
