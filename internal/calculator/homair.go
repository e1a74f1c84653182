package calculator

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/geekmdtravis/geekmd-calc/internal/model"
)

// homaIrConstant converts insulin (uIU/mL) x glucose (mg/dL) to the HOMA-IR index.
const homaIrConstant = 405.0

// MaxDecimalPlaces is the most places a result can be rounded to.
const MaxDecimalPlaces = 100

// Warning messages, appended in this order.
const (
	WarnInsulinHigh         = "Insulin levels above 25 uIU/mL are outside of the normal range."
	WarnGlucoseDiabetic     = "Glucose levels above 125 mg/dL are strong indicators of insulin resistance."
	WarnGlucoseImpaired     = "Glucose levels between 100 and 125 mg/dL suggest possible insulin resistance."
	WarnGlucoseHypoglycemic = "Glucose levels below 70 mg/dL are hypoglycemic and require urgent attention."
	WarnGlucoseSevereHypo   = "Glucose levels below 54 mg/dL are severely hypoglycemic and require immediate attention."
)

// HomaIR computes the Homeostatic Model Assessment of Insulin Resistance
// from fasting insulin and glucose.
//
// Checks run in order and the first failure is returned: fasting state,
// insulin > 0, glucose > 0, then decimal places in [0, 100].
// The interpretation is always derived from the unrounded value.
func HomaIR(in model.HomaIrInput) (*model.HomaIrResult, error) {
	if !in.Fasting {
		return nil, newDomainError("fasting", "HOMA-IR is only valid for fasting insulin and glucose")
	}
	// Written as !(x > 0) so NaN is rejected too.
	if !(in.Insulin > 0) {
		return nil, newRangeError("insulin", "Insulin must be a value greater than zero.")
	}
	if !(in.Glucose > 0) {
		return nil, newRangeError("glucose", "Glucose must be a value greater than zero.")
	}
	if in.DecimalPlaces != nil {
		if *in.DecimalPlaces < 0 {
			return nil, newRangeError("decimalPlaces", "decimalPlaces must be a positive integer.")
		}
		if *in.DecimalPlaces > MaxDecimalPlaces {
			return nil, newRangeError("decimalPlaces", "decimalPlaces must not exceed 100.")
		}
	}

	value := (in.Insulin * in.Glucose) / homaIrConstant

	result := &model.HomaIrResult{
		Value:          value,
		Interpretation: InterpretHomaIR(value),
		Warnings:       homaIrWarnings(in.Insulin, in.Glucose),
	}
	if in.DecimalPlaces != nil {
		result.Value = roundHalfUp(value, int32(*in.DecimalPlaces))
	}
	return result, nil
}

// InterpretHomaIR maps a HOMA-IR value to its interpretation.
// Both 1 and 2 fall in the "insulin resistance" band.
func InterpretHomaIR(value float64) model.HomaIrInterpretation {
	switch {
	case value < 1:
		return model.InsulinSensitive
	case value <= 2:
		return model.InsulinResistance
	default:
		return model.SignificantInsulinResistance
	}
}

func homaIrWarnings(insulin, glucose float64) []string {
	warnings := []string{}
	if insulin > 25 {
		warnings = append(warnings, WarnInsulinHigh)
	}
	if glucose > 125 {
		warnings = append(warnings, WarnGlucoseDiabetic)
	}
	if glucose >= 100 && glucose <= 125 {
		warnings = append(warnings, WarnGlucoseImpaired)
	}
	if glucose < 70 && glucose >= 54 {
		warnings = append(warnings, WarnGlucoseHypoglycemic)
	}
	if glucose < 54 {
		warnings = append(warnings, WarnGlucoseSevereHypo)
	}
	return warnings
}

// roundHalfUp rounds the exact binary value of v to places decimal places,
// ties away from zero. 1.005 is stored as 1.00499999... and rounds to 1.
func roundHalfUp(v float64, places int32) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	// 1100 fractional digits cover the full expansion of any float64.
	exact, err := decimal.NewFromString(new(big.Float).SetFloat64(v).Text('f', 1100))
	if err != nil {
		return v
	}
	rounded, _ := exact.Round(places).Float64()
	return rounded
}
