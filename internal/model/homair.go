package model

// HomaIrInterpretation is the categorical reading of a HOMA-IR value.
type HomaIrInterpretation string

const (
	InsulinSensitive             HomaIrInterpretation = "insulin sensitive"
	InsulinResistance            HomaIrInterpretation = "insulin resistance"
	SignificantInsulinResistance HomaIrInterpretation = "significant insulin resistance"
)

// HomaIrInput holds fasting lab values for a HOMA-IR calculation.
// Insulin is in uIU/mL and Glucose in mg/dL. A nil DecimalPlaces means no rounding.
type HomaIrInput struct {
	Insulin       float64 `yaml:"insulin" json:"insulin"`
	Glucose       float64 `yaml:"glucose" json:"glucose"`
	Fasting       bool    `yaml:"fasting" json:"fasting"`
	DecimalPlaces *int    `yaml:"decimal_places,omitempty" json:"decimal_places,omitempty"`
}

// HomaIrResult is the output of a HOMA-IR calculation.
type HomaIrResult struct {
	Value          float64              `json:"value"`
	Interpretation HomaIrInterpretation `json:"interpretation"`
	Warnings       []string             `json:"warnings"`
}
