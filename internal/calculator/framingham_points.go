package calculator

import (
	"fmt"

	"github.com/geekmdtravis/geekmd-calc/internal/model"
)

// Point tables from the NCEP ATP III Framingham risk score sheets.
// Tables indexed by decade use the bands 20-39, 40-49, 50-59, 60-69, 70-79.

var (
	// [total cholesterol band][decade]
	maleCholesterolPoints = [5][5]int{
		{0, 0, 0, 0, 0},  // < 160
		{4, 3, 2, 1, 0},  // 160-199
		{7, 5, 3, 1, 0},  // 200-239
		{9, 6, 4, 2, 1},  // 240-279
		{11, 8, 5, 3, 1}, // >= 280
	}
	femaleCholesterolPoints = [5][5]int{
		{0, 0, 0, 0, 0},
		{4, 3, 2, 1, 1},
		{8, 6, 4, 2, 1},
		{11, 8, 5, 3, 2},
		{13, 10, 7, 4, 2},
	}

	maleSmokerPoints   = [5]int{8, 5, 3, 1, 1}
	femaleSmokerPoints = [5]int{9, 7, 4, 2, 1}

	// [SBP band]: < 120, 120-129, 130-139, 140-159, >= 160
	maleSBPUntreated   = [5]int{0, 0, 1, 1, 2}
	maleSBPTreated     = [5]int{0, 1, 2, 2, 3}
	femaleSBPUntreated = [5]int{0, 1, 2, 3, 4}
	femaleSBPTreated   = [5]int{0, 3, 4, 5, 6}

	// [age band]: < 35, 35-39, 40-44 ... 70-74, >= 75
	maleAgePoints   = [10]int{-9, -4, 0, 3, 6, 8, 10, 11, 12, 13}
	femaleAgePoints = [10]int{-7, -3, 0, 3, 6, 8, 10, 12, 14, 16}
)

// Point totals mapped to 10-year risk (%). Totals below the first entry
// score as the first entry (reported "<1%"), and totals past the last as
// the last entry (reported ">=30%").
var (
	malePointRisk = pointRiskTable{
		minPoints: 0,
		risk:      []float64{1, 1, 1, 1, 1, 2, 2, 3, 4, 5, 6, 8, 10, 12, 16, 20, 25, 30},
	}
	femalePointRisk = pointRiskTable{
		minPoints: 9,
		risk:      []float64{1, 1, 1, 1, 2, 2, 3, 4, 5, 6, 8, 11, 14, 17, 22, 27, 30},
	}
)

type pointRiskTable struct {
	minPoints int
	risk      []float64
}

func (t pointRiskTable) lookup(points int) float64 {
	i := points - t.minPoints
	if i < 0 {
		i = 0
	}
	if i >= len(t.risk) {
		i = len(t.risk) - 1
	}
	return t.risk[i]
}

// qualifier reports whether points falls below ("<") or at the open top
// (">=") of the table.
func (t pointRiskTable) qualifier(points int) string {
	switch i := points - t.minPoints; {
	case i < 0:
		return "<"
	case i >= len(t.risk)-1:
		return ">="
	default:
		return ""
	}
}

func pointRiskTableFor(data model.AscvdData) pointRiskTable {
	if data.IsGeneticMale {
		return malePointRisk
	}
	return femalePointRisk
}

// FraminghamPoints returns the ATP III point-based 10-year risk as a percentage.
func FraminghamPoints(data model.AscvdData) float64 {
	total, _ := ScoreFraminghamPoints(data)
	return pointRiskTableFor(data).lookup(total)
}

// ScoreFraminghamPoints returns the total point score and each factor's share.
// Ages outside 20-79 are scored in the nearest band.
func ScoreFraminghamPoints(data model.AscvdData) (int, []model.FactorPoints) {
	male := data.IsGeneticMale
	decade := decadeBand(data.Age)

	agePts := femaleAgePoints[ageBand(data.Age)]
	cholPts := femaleCholesterolPoints[cholesterolBand(data.CholesterolTotal)][decade]
	smokePts := 0
	sbpTable := femaleSBPUntreated
	if male {
		agePts = maleAgePoints[ageBand(data.Age)]
		cholPts = maleCholesterolPoints[cholesterolBand(data.CholesterolTotal)][decade]
		sbpTable = maleSBPUntreated
	}
	if data.IsOnBloodPressureMeds {
		sbpTable = femaleSBPTreated
		if male {
			sbpTable = maleSBPTreated
		}
	}
	if data.IsSmoker {
		smokePts = femaleSmokerPoints[decade]
		if male {
			smokePts = maleSmokerPoints[decade]
		}
	}

	treatment := "untreated"
	if data.IsOnBloodPressureMeds {
		treatment = "treated"
	}
	smoking := "non-smoker"
	if data.IsSmoker {
		smoking = "smoker"
	}

	factors := []model.FactorPoints{
		{Name: "Age", Points: agePts, Commentary: fmt.Sprintf("%.0f years", data.Age)},
		{Name: "Total cholesterol", Points: cholPts, Commentary: fmt.Sprintf("%.0f mg/dL", data.CholesterolTotal)},
		{Name: "HDL cholesterol", Points: hdlPoints(data.CholesterolHDL), Commentary: fmt.Sprintf("%.0f mg/dL", data.CholesterolHDL)},
		{Name: "Systolic BP", Points: sbpTable[sbpBand(data.SystolicBloodPressure)], Commentary: fmt.Sprintf("%.0f mmHg %s", data.SystolicBloodPressure, treatment)},
		{Name: "Smoking", Points: smokePts, Commentary: smoking},
	}

	total := 0
	for _, f := range factors {
		total += f.Points
	}
	return total, factors
}

func ageBand(age float64) int {
	switch {
	case age < 35:
		return 0
	case age < 75:
		// 35-39 → 1, 40-44 → 2, ... 70-74 → 8
		return int(age-35)/5 + 1
	default:
		// 75 and over; NaN also lands here, matching decadeBand.
		return 9
	}
}

func decadeBand(age float64) int {
	switch {
	case age < 40:
		return 0
	case age < 50:
		return 1
	case age < 60:
		return 2
	case age < 70:
		return 3
	default:
		return 4
	}
}

func cholesterolBand(tc float64) int {
	switch {
	case tc < 160:
		return 0
	case tc < 200:
		return 1
	case tc < 240:
		return 2
	case tc < 280:
		return 3
	default:
		return 4
	}
}

func sbpBand(sbp float64) int {
	switch {
	case sbp < 120:
		return 0
	case sbp < 130:
		return 1
	case sbp < 140:
		return 2
	case sbp < 160:
		return 3
	default:
		return 4
	}
}

func hdlPoints(hdl float64) int {
	switch {
	case hdl >= 60:
		return -1
	case hdl >= 50:
		return 0
	case hdl >= 40:
		return 1
	default:
		return 2
	}
}
