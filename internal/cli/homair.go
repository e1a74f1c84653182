package cli

import (
	"github.com/spf13/cobra"

	"github.com/geekmdtravis/geekmd-calc/internal/calculator"
	"github.com/geekmdtravis/geekmd-calc/internal/model"
)

type homaIROptions struct {
	insulin       float64
	glucose       float64
	fasting       bool
	decimalPlaces int
}

// NewHomaIRCommand creates the homa-ir command.
func NewHomaIRCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &homaIROptions{}

	cmd := &cobra.Command{
		Use:   "homa-ir",
		Short: "Compute the HOMA-IR insulin resistance index",
		Long: `Compute HOMA-IR from fasting insulin (uIU/mL) and glucose (mg/dL).

The labs must be drawn fasting; pass --fasting to confirm.`,
		Example:       "  geekmd homa-ir --insulin 15 --glucose 85 --fasting --decimal-places 2",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHomaIR(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().Float64Var(&opts.insulin, "insulin", 0, "fasting insulin (uIU/mL)")
	cmd.Flags().Float64Var(&opts.glucose, "glucose", 0, "fasting glucose (mg/dL)")
	cmd.Flags().BoolVar(&opts.fasting, "fasting", false, "labs were drawn fasting")
	cmd.Flags().IntVar(&opts.decimalPlaces, "decimal-places", 0, "round the result (default from config, else unrounded)")
	_ = cmd.MarkFlagRequired("insulin")
	_ = cmd.MarkFlagRequired("glucose")

	return cmd
}

func runHomaIR(rootOpts *RootOptions, opts *homaIROptions, cmd *cobra.Command) error {
	cfg, err := rootOpts.loadConfig()
	if err != nil {
		return err
	}

	in := model.HomaIrInput{
		Insulin:       opts.insulin,
		Glucose:       opts.glucose,
		Fasting:       opts.fasting,
		DecimalPlaces: cfg.HomaIR.DecimalPlaces,
	}
	if cmd.Flags().Changed("decimal-places") {
		places := opts.decimalPlaces
		in.DecimalPlaces = &places
	}

	res, err := calculator.HomaIR(in)
	if err != nil {
		return err
	}
	rootOpts.debugf("homa-ir value=%v warnings=%d", res.Value, len(res.Warnings))
	return rootOpts.printer(cmd, cfg).HomaIR(in, res)
}
