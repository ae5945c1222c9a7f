package triage

import "math"

type RiskLevel string

const (
	RiskLow       RiskLevel = "LOW"
	RiskMedium    RiskLevel = "MEDIUM"
	RiskHigh      RiskLevel = "HIGH"
	RiskEmergency RiskLevel = "EMERGENCY"
)

type Classification struct {
	RiskLevel  RiskLevel `json:"risk_level"`
	Color      string    `json:"color"`
	Confidence float64   `json:"confidence"`
}

// ClassifyRisk maps a score and red-flag outcome to a risk band. A red
// flag always yields EMERGENCY with confidence 1.0 regardless of score.
func ClassifyRisk(riskScore int, hasRedFlag bool) Classification {
	if hasRedFlag {
		return Classification{RiskLevel: RiskEmergency, Color: "red", Confidence: 1.0}
	}

	s := float64(riskScore)
	switch {
	case riskScore <= 30:
		return Classification{RiskLevel: RiskLow, Color: "green", Confidence: math.Min(0.6+s/100, 0.75)}
	case riskScore <= 65:
		return Classification{RiskLevel: RiskMedium, Color: "yellow", Confidence: math.Min(0.7+s/100, 0.85)}
	default:
		return Classification{RiskLevel: RiskHigh, Color: "orange", Confidence: math.Min(0.8+s/100, 0.95)}
	}
}
