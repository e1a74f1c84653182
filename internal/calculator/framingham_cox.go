package calculator

import (
	"math"

	"github.com/geekmdtravis/geekmd-calc/internal/model"
)

// coxModel holds sex-specific coefficients for the Framingham general
// cardiovascular disease model (D'Agostino et al., Circulation 2008).
type coxModel struct {
	lnAge          float64
	lnTotalChol    float64
	lnHDL          float64
	lnSBPUntreated float64
	lnSBPTreated   float64
	smoker         float64
	diabetic       float64

	baselineSurvival float64
	meanPredictor    float64
}

var (
	framinghamMale = coxModel{
		lnAge:            3.06117,
		lnTotalChol:      1.12370,
		lnHDL:            -0.93263,
		lnSBPUntreated:   1.93303,
		lnSBPTreated:     1.99881,
		smoker:           0.65451,
		diabetic:         0.57367,
		baselineSurvival: 0.88936,
		meanPredictor:    23.9802,
	}
	framinghamFemale = coxModel{
		lnAge:            2.32888,
		lnTotalChol:      1.20904,
		lnHDL:            -0.70833,
		lnSBPUntreated:   2.76157,
		lnSBPTreated:     2.82263,
		smoker:           0.52873,
		diabetic:         0.69154,
		baselineSurvival: 0.95012,
		meanPredictor:    26.1931,
	}
)

// FraminghamCoxRegression returns the 10-year risk (0~1) from the
// Framingham Cox proportional-hazards model.
func FraminghamCoxRegression(data model.AscvdData) float64 {
	m := framinghamFemale
	if data.IsGeneticMale {
		m = framinghamMale
	}

	sbpCoef := m.lnSBPUntreated
	if data.IsOnBloodPressureMeds {
		sbpCoef = m.lnSBPTreated
	}

	sum := m.lnAge*math.Log(data.Age) +
		m.lnTotalChol*math.Log(data.CholesterolTotal) +
		m.lnHDL*math.Log(data.CholesterolHDL) +
		sbpCoef*math.Log(data.SystolicBloodPressure) +
		m.smoker*indicator(data.IsSmoker) +
		m.diabetic*indicator(data.IsDiabetic)

	return survivalRisk(m.baselineSurvival, sum, m.meanPredictor)
}

// survivalRisk is 1 - S0^exp(sum - mean).
func survivalRisk(baseline, sum, mean float64) float64 {
	return 1 - math.Pow(baseline, math.Exp(sum-mean))
}

func indicator(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
