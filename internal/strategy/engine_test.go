package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geekmdtravis/geekmd-calc/internal/calculator"
	"github.com/geekmdtravis/geekmd-calc/internal/model"
)

func TestCategorizeAscvd_AllBoundaries(t *testing.T) {
	tests := []struct {
		risk     float64
		category model.RiskCategory
	}{
		{0, model.RiskLow},
		{0.049, model.RiskLow},
		{0.05, model.RiskBorderline},
		{0.074, model.RiskBorderline},
		{0.075, model.RiskIntermediate},
		{0.199, model.RiskIntermediate},
		{0.20, model.RiskHigh},
		{0.65, model.RiskHigh},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.category, CategorizeAscvd(tt.risk), "risk %.3f", tt.risk)
	}
}

func TestProbability(t *testing.T) {
	assert.Equal(t, 0.08, Probability(&model.AscvdResult{Method: model.MethodFraminghamPoints, TenYrRisk: 8}))
	assert.Equal(t, 0.08, Probability(&model.AscvdResult{Method: model.MethodPooledCohort2013, TenYrRisk: 0.08}))
}

func TestEvaluate(t *testing.T) {
	data := model.AscvdData{
		Age:                   55,
		IsGeneticMale:         true,
		CholesterolTotal:      213,
		CholesterolHDL:        50,
		SystolicBloodPressure: 120,
	}

	tests := []struct {
		method   model.AscvdMethod
		category model.RiskCategory
	}{
		// 8%
		{model.MethodFraminghamPoints, model.RiskIntermediate},
		// 10.2%
		{model.MethodFraminghamCox, model.RiskIntermediate},
		// 5.4%
		{model.MethodPooledCohort2013, model.RiskBorderline},
	}
	for _, tt := range tests {
		t.Run(string(tt.method), func(t *testing.T) {
			res, err := Evaluate(tt.method, data)
			require.NoError(t, err)
			assert.Equal(t, tt.method, res.Method)
			assert.Equal(t, tt.category, res.Category)
		})
	}

	_, err := Evaluate("by guesswork", data)
	assert.True(t, calculator.IsUnknownMethodError(err))
}
