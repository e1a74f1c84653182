package cli

import (
	"github.com/spf13/cobra"

	"github.com/geekmdtravis/geekmd-calc/internal/calculator"
	"github.com/geekmdtravis/geekmd-calc/internal/config"
	"github.com/geekmdtravis/geekmd-calc/internal/model"
	"github.com/geekmdtravis/geekmd-calc/internal/strategy"
)

type ascvdOptions struct {
	method string
	all    bool
	data   model.AscvdData
}

// NewAscvdCommand creates the ascvd command.
func NewAscvdCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ascvdOptions{}

	cmd := &cobra.Command{
		Use:   "ascvd",
		Short: "Estimate 10-year ASCVD risk",
		Long: `Estimate 10-year atherosclerotic cardiovascular disease risk.

Methods: "points" (Framingham ATP III point score), "cox" (Framingham
Cox regression) and "pce" (2013 ACC/AHA Pooled Cohort Equations).
The full method names are accepted as well.`,
		Example:       "  geekmd ascvd --method pce --age 55 --total-chol 213 --hdl 50 --sbp 120 --male",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAscvd(rootOpts, opts, cmd)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.method, "method", "", "points | cox | pce (default from config)")
	f.BoolVar(&opts.all, "all", false, "run every method")
	f.Float64Var(&opts.data.Age, "age", 0, "age in years")
	f.Float64Var(&opts.data.CholesterolTotal, "total-chol", 0, "total cholesterol (mg/dL)")
	f.Float64Var(&opts.data.CholesterolHDL, "hdl", 0, "HDL cholesterol (mg/dL)")
	f.Float64Var(&opts.data.SystolicBloodPressure, "sbp", 0, "systolic blood pressure (mmHg)")
	f.BoolVar(&opts.data.IsGeneticMale, "male", false, "patient is genetically male")
	f.BoolVar(&opts.data.IsBlack, "black", false, "patient is black")
	f.BoolVar(&opts.data.IsDiabetic, "diabetic", false, "patient is diabetic")
	f.BoolVar(&opts.data.IsSmoker, "smoker", false, "patient smokes")
	f.BoolVar(&opts.data.IsOnBloodPressureMeds, "bp-meds", false, "patient takes blood pressure medication")
	for _, name := range []string{"age", "total-chol", "hdl", "sbp"} {
		_ = cmd.MarkFlagRequired(name)
	}
	cmd.MarkFlagsMutuallyExclusive("method", "all")

	return cmd
}

func runAscvd(rootOpts *RootOptions, opts *ascvdOptions, cmd *cobra.Command) error {
	cfg, err := rootOpts.loadConfig()
	if err != nil {
		return err
	}

	methods, err := selectMethods(cfg, opts.method, opts.all)
	if err != nil {
		return err
	}

	p := rootOpts.printer(cmd, cfg)
	for _, m := range methods {
		res, err := strategy.Evaluate(m, opts.data)
		if err != nil {
			return err
		}
		rootOpts.debugf("ascvd method=%q risk=%v", m, res.TenYrRisk)
		if err := p.Ascvd(opts.data, res); err != nil {
			return err
		}
	}
	return nil
}

// selectMethods resolves the methods to run: every method with all,
// the named one, or the configured default.
func selectMethods(cfg *config.Config, name string, all bool) ([]model.AscvdMethod, error) {
	if all {
		return model.AscvdMethods, nil
	}
	if name == "" {
		return []model.AscvdMethod{cfg.AscvdMethod()}, nil
	}
	m, err := calculator.ParseAscvdMethod(name)
	if err != nil {
		return nil, err
	}
	return []model.AscvdMethod{m}, nil
}
