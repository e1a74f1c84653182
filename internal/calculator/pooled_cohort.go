package calculator

import (
	"math"

	"github.com/geekmdtravis/geekmd-calc/internal/model"
)

// pceModel holds one stratum of the 2013 ACC/AHA Pooled Cohort Equations
// (Goff et al., Circulation 2014, Table A). Unused terms are zero.
type pceModel struct {
	lnAge                float64
	lnAgeSquared         float64
	lnTotalChol          float64
	lnAgeXlnTotalChol    float64
	lnHDL                float64
	lnAgeXlnHDL          float64
	lnTreatedSBP         float64
	lnAgeXlnTreatedSBP   float64
	lnUntreatedSBP       float64
	lnAgeXlnUntreatedSBP float64
	smoker               float64
	lnAgeXsmoker         float64
	diabetic             float64

	baselineSurvival float64
	meanPredictor    float64
}

var (
	pceWhiteFemale = pceModel{
		lnAge:             -29.799,
		lnAgeSquared:      4.884,
		lnTotalChol:       13.540,
		lnAgeXlnTotalChol: -3.114,
		lnHDL:             -13.578,
		lnAgeXlnHDL:       3.149,
		lnTreatedSBP:      2.019,
		lnUntreatedSBP:    1.957,
		smoker:            7.574,
		lnAgeXsmoker:      -1.665,
		diabetic:          0.661,
		baselineSurvival:  0.9665,
		meanPredictor:     -29.18,
	}
	pceBlackFemale = pceModel{
		lnAge:                17.114,
		lnTotalChol:          0.940,
		lnHDL:                -18.920,
		lnAgeXlnHDL:          4.475,
		lnTreatedSBP:         29.291,
		lnAgeXlnTreatedSBP:   -6.432,
		lnUntreatedSBP:       27.820,
		lnAgeXlnUntreatedSBP: -6.087,
		smoker:               0.691,
		diabetic:             0.874,
		baselineSurvival:     0.9533,
		meanPredictor:        86.61,
	}
	pceWhiteMale = pceModel{
		lnAge:             12.344,
		lnTotalChol:       11.853,
		lnAgeXlnTotalChol: -2.664,
		lnHDL:             -7.990,
		lnAgeXlnHDL:       1.769,
		lnTreatedSBP:      1.797,
		lnUntreatedSBP:    1.764,
		smoker:            7.837,
		lnAgeXsmoker:      -1.795,
		diabetic:          0.658,
		baselineSurvival:  0.9144,
		meanPredictor:     61.18,
	}
	pceBlackMale = pceModel{
		lnAge:            2.469,
		lnTotalChol:      0.302,
		lnHDL:            -0.307,
		lnTreatedSBP:     1.916,
		lnUntreatedSBP:   1.809,
		smoker:           0.549,
		diabetic:         0.645,
		baselineSurvival: 0.8954,
		meanPredictor:    19.54,
	}
)

// pceStratum picks the coefficient set. Patients who are not black use the
// white equations, as the published guideline recommends.
func pceStratum(data model.AscvdData) pceModel {
	switch {
	case data.IsBlack && data.IsGeneticMale:
		return pceBlackMale
	case data.IsBlack:
		return pceBlackFemale
	case data.IsGeneticMale:
		return pceWhiteMale
	default:
		return pceWhiteFemale
	}
}

// PooledCohort2013 returns the 10-year risk (0~1) from the Pooled Cohort Equations.
func PooledCohort2013(data model.AscvdData) float64 {
	m := pceStratum(data)

	lnAge := math.Log(data.Age)
	lnTC := math.Log(data.CholesterolTotal)
	lnHDL := math.Log(data.CholesterolHDL)
	lnSBP := math.Log(data.SystolicBloodPressure)
	smoker := indicator(data.IsSmoker)

	sum := m.lnAge*lnAge +
		m.lnAgeSquared*lnAge*lnAge +
		m.lnTotalChol*lnTC +
		m.lnAgeXlnTotalChol*lnAge*lnTC +
		m.lnHDL*lnHDL +
		m.lnAgeXlnHDL*lnAge*lnHDL +
		m.smoker*smoker +
		m.lnAgeXsmoker*lnAge*smoker +
		m.diabetic*indicator(data.IsDiabetic)

	if data.IsOnBloodPressureMeds {
		sum += m.lnTreatedSBP*lnSBP + m.lnAgeXlnTreatedSBP*lnAge*lnSBP
	} else {
		sum += m.lnUntreatedSBP*lnSBP + m.lnAgeXlnUntreatedSBP*lnAge*lnSBP
	}

	return survivalRisk(m.baselineSurvival, sum, m.meanPredictor)
}
