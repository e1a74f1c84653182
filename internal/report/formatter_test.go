package report

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/geekmdtravis/geekmd-calc/internal/calculator"
	"github.com/geekmdtravis/geekmd-calc/internal/model"
	"github.com/geekmdtravis/geekmd-calc/internal/strategy"
)

// Regenerate with: go test ./internal/report -update
func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func places(v int) *int { return &v }

func referenceMale() model.AscvdData {
	return model.AscvdData{
		Age:                   55,
		IsGeneticMale:         true,
		CholesterolTotal:      213,
		CholesterolHDL:        50,
		SystolicBloodPressure: 120,
	}
}

func TestFormatHomaIR_Golden(t *testing.T) {
	tests := []struct {
		name string
		in   model.HomaIrInput
	}{
		{"homa_ir_rounded", model.HomaIrInput{Insulin: 15, Glucose: 85, Fasting: true, DecimalPlaces: places(2)}},
		{"homa_ir_warnings", model.HomaIrInput{Insulin: 30, Glucose: 130, Fasting: true}},
	}
	g := newGoldie(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := calculator.HomaIR(tt.in)
			require.NoError(t, err)
			g.Assert(t, tt.name, []byte(FormatHomaIR(tt.in, res)))
		})
	}
}

func TestFormatAscvd_Golden(t *testing.T) {
	tests := []struct {
		name   string
		method model.AscvdMethod
	}{
		{"ascvd_points", model.MethodFraminghamPoints},
		{"ascvd_pce", model.MethodPooledCohort2013},
	}
	g := newGoldie(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := strategy.Evaluate(tt.method, referenceMale())
			require.NoError(t, err)
			g.Assert(t, tt.name, []byte(FormatAscvd(res)))
		})
	}
}

func TestFormatCase_Golden(t *testing.T) {
	in := model.HomaIrInput{Insulin: 15, Glucose: 85, Fasting: true, DecimalPlaces: places(2)}
	homa, err := calculator.HomaIR(in)
	require.NoError(t, err)

	data := referenceMale()
	c := &CaseReport{
		Patient: "jane-doe",
		HomaIR:  &HomaIrReport{Input: in, Result: homa},
		Input:   &data,
	}
	for _, m := range []model.AscvdMethod{model.MethodPooledCohort2013, model.MethodFraminghamCox} {
		res, err := strategy.Evaluate(m, data)
		require.NoError(t, err)
		c.Ascvd = append(c.Ascvd, res)
	}

	newGoldie(t).Assert(t, "case", []byte(FormatCase(c)))
}
