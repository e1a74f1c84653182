package model

// FactorPoints is a single factor's contribution to a point-based score.
type FactorPoints struct {
	Name       string `json:"name"`
	Points     int    `json:"points"`
	Commentary string `json:"commentary"`
}

// RiskCategory is a guideline band for 10-year ASCVD risk.
type RiskCategory string

const (
	RiskLow          RiskCategory = "low"
	RiskBorderline   RiskCategory = "borderline"
	RiskIntermediate RiskCategory = "intermediate"
	RiskHigh         RiskCategory = "high"
)
