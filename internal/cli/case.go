package cli

import (
	"github.com/spf13/cobra"

	"github.com/geekmdtravis/geekmd-calc/internal/calculator"
	"github.com/geekmdtravis/geekmd-calc/internal/casefile"
	"github.com/geekmdtravis/geekmd-calc/internal/config"
	"github.com/geekmdtravis/geekmd-calc/internal/model"
	"github.com/geekmdtravis/geekmd-calc/internal/report"
	"github.com/geekmdtravis/geekmd-calc/internal/strategy"
)

// NewCaseCommand creates the case command.
func NewCaseCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "case <file.yaml>",
		Short: "Evaluate a YAML case file",
		Long: `Evaluate every calculator section present in a YAML case file.

A case file may hold a homa_ir section, an ascvd section, or both.
The ascvd section may list methods to run; otherwise the configured
default method is used.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCase(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runCase(rootOpts *RootOptions, path string, cmd *cobra.Command) error {
	cfg, err := rootOpts.loadConfig()
	if err != nil {
		return err
	}

	c, err := casefile.Load(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "load case", err)
	}
	rootOpts.debugf("case %q loaded from %s", c.Patient, path)

	out, err := evaluateCase(cfg, c)
	if err != nil {
		return err
	}
	return rootOpts.printer(cmd, cfg).Case(out)
}

// evaluateCase runs each section of c. The first calculator error aborts
// the case; no partial report is produced.
func evaluateCase(cfg *config.Config, c *casefile.Case) (*report.CaseReport, error) {
	out := &report.CaseReport{Patient: c.Patient}

	if c.HomaIR != nil {
		in := *c.HomaIR
		if in.DecimalPlaces == nil {
			in.DecimalPlaces = cfg.HomaIR.DecimalPlaces
		}
		res, err := calculator.HomaIR(in)
		if err != nil {
			return nil, err
		}
		out.HomaIR = &report.HomaIrReport{Input: in, Result: res}
	}

	if c.Ascvd != nil {
		methods := []model.AscvdMethod{cfg.AscvdMethod()}
		if len(c.Ascvd.Methods) > 0 {
			methods = methods[:0]
			for _, name := range c.Ascvd.Methods {
				m, err := calculator.ParseAscvdMethod(name)
				if err != nil {
					return nil, err
				}
				methods = append(methods, m)
			}
		}
		data := c.Ascvd.AscvdData
		out.Input = &data
		for _, m := range methods {
			res, err := strategy.Evaluate(m, data)
			if err != nil {
				return nil, err
			}
			out.Ascvd = append(out.Ascvd, res)
		}
	}
	return out, nil
}
