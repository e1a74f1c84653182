package calculator

import (
	"strings"

	"github.com/geekmdtravis/geekmd-calc/internal/model"
)

// methodAliases are the short names accepted by ParseAscvdMethod.
var methodAliases = map[string]model.AscvdMethod{
	"points": model.MethodFraminghamPoints,
	"cox":    model.MethodFraminghamCox,
	"pce":    model.MethodPooledCohort2013,
}

// CalculateAscvdRisk returns the 10-year ASCVD risk for data using method.
//
// Inputs are not range checked; values outside the populations the models
// were fit on yield whatever the arithmetic produces.
func CalculateAscvdRisk(method model.AscvdMethod, data model.AscvdData) (float64, error) {
	switch method {
	case model.MethodFraminghamPoints:
		return FraminghamPoints(data), nil
	case model.MethodFraminghamCox:
		return FraminghamCoxRegression(data), nil
	case model.MethodPooledCohort2013:
		return PooledCohort2013(data), nil
	default:
		return 0, newUnknownMethodError(string(method))
	}
}

// AssessAscvd is CalculateAscvdRisk returning the full result record,
// including the point breakdown when the points method is used.
// Category is left empty; see strategy.CategorizeAscvd.
func AssessAscvd(method model.AscvdMethod, data model.AscvdData) (*model.AscvdResult, error) {
	risk, err := CalculateAscvdRisk(method, data)
	if err != nil {
		return nil, err
	}
	result := &model.AscvdResult{Method: method, TenYrRisk: risk}
	if method == model.MethodFraminghamPoints {
		result.Points, result.Factors = ScoreFraminghamPoints(data)
		result.Qualifier = pointRiskTableFor(data).qualifier(result.Points)
	}
	return result, nil
}

// ParseAscvdMethod resolves a method name. It accepts the full method
// strings as well as the aliases "points", "cox" and "pce", case-insensitively.
func ParseAscvdMethod(s string) (model.AscvdMethod, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, m := range model.AscvdMethods {
		if key == string(m) {
			return m, nil
		}
	}
	if m, ok := methodAliases[key]; ok {
		return m, nil
	}
	return "", newUnknownMethodError(s)
}
