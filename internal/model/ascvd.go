package model

// AscvdMethod selects the algorithm used to estimate 10-year ASCVD risk.
type AscvdMethod string

const (
	MethodFraminghamPoints AscvdMethod = "by framingham (points)"
	MethodFraminghamCox    AscvdMethod = "by framingham (cox regression)"
	MethodPooledCohort2013 AscvdMethod = "by pooled cohort 2013"
)

// AscvdMethods lists every supported method in display order.
var AscvdMethods = []AscvdMethod{
	MethodFraminghamPoints,
	MethodFraminghamCox,
	MethodPooledCohort2013,
}

// AscvdData describes one patient for an ASCVD risk estimate.
// Age is in years, cholesterol in mg/dL and blood pressure in mmHg.
type AscvdData struct {
	Age                   float64 `yaml:"age" json:"age"`
	IsDiabetic            bool    `yaml:"is_diabetic" json:"is_diabetic"`
	IsGeneticMale         bool    `yaml:"is_genetic_male" json:"is_genetic_male"`
	IsBlack               bool    `yaml:"is_black" json:"is_black"`
	IsOnBloodPressureMeds bool    `yaml:"is_on_blood_pressure_meds" json:"is_on_blood_pressure_meds"`
	IsSmoker              bool    `yaml:"is_smoker" json:"is_smoker"`
	CholesterolTotal      float64 `yaml:"cholesterol_total" json:"cholesterol_total"`
	CholesterolHDL        float64 `yaml:"cholesterol_hdl" json:"cholesterol_hdl"`
	SystolicBloodPressure float64 `yaml:"systolic_blood_pressure" json:"systolic_blood_pressure"`
}

// AscvdResult is the full output of an ASCVD risk estimate.
//
// TenYrRisk is a probability (0~1) for the regression methods and a
// percentage for the points method, matching the published sheets.
// Points, Factors and Qualifier are only set by the points method;
// Qualifier is "<" or ">=" when the total falls off either end of the
// lookup table and TenYrRisk is the table's bound.
type AscvdResult struct {
	Method    AscvdMethod    `json:"method"`
	TenYrRisk float64        `json:"ten_yr_risk"`
	Qualifier string         `json:"qualifier,omitempty"`
	Points    int            `json:"points,omitempty"`
	Factors   []FactorPoints `json:"factors,omitempty"`
	Category  RiskCategory   `json:"category,omitempty"`
}
