package strategy

import (
	"github.com/geekmdtravis/geekmd-calc/internal/calculator"
	"github.com/geekmdtravis/geekmd-calc/internal/model"
)

// Bands maps 10-year ASCVD risk (as a probability) to the 2018 ACC/AHA
// guideline categories, highest first.
var Bands = []struct {
	MinRisk  float64
	Category model.RiskCategory
}{
	{0.20, model.RiskHigh},
	{0.075, model.RiskIntermediate},
	{0.05, model.RiskBorderline},
}

// DefaultCategory applies to risks below 5%.
var DefaultCategory = model.RiskLow

// CategorizeAscvd maps a 10-year risk probability to its guideline category.
func CategorizeAscvd(risk float64) model.RiskCategory {
	for _, b := range Bands {
		if risk >= b.MinRisk {
			return b.Category
		}
	}
	return DefaultCategory
}

// Probability returns the result's risk as a probability (0~1).
// The points method reports a percentage and is scaled down.
func Probability(res *model.AscvdResult) float64 {
	if res.Method == model.MethodFraminghamPoints {
		return res.TenYrRisk / 100
	}
	return res.TenYrRisk
}

// Evaluate computes the ASCVD result for data and assigns its risk category.
func Evaluate(method model.AscvdMethod, data model.AscvdData) (*model.AscvdResult, error) {
	res, err := calculator.AssessAscvd(method, data)
	if err != nil {
		return nil, err
	}
	res.Category = CategorizeAscvd(Probability(res))
	return res, nil
}
