package triage

// Explanation is the human-readable output of an analysis. It never
// contains a diagnosis, only the risk pattern and what contributed to it.
type Explanation struct {
	Summary             string   `json:"summary"`
	ContributingFactors []string `json:"contributing_factors"`
	Disclaimer          string   `json:"disclaimer"`
	ExplainabilityScore int      `json:"explainability_score"`
}

var summaryTemplates = map[RiskLevel]string{
	RiskLow:       "Your reported symptoms appear to be mild based on the information provided.",
	RiskMedium:    "Your symptoms show a moderate pattern that may benefit from medical attention.",
	RiskHigh:      "Your symptoms indicate a high-risk pattern that should be evaluated by a healthcare professional.",
	RiskEmergency: "Your symptoms match patterns that may require immediate medical attention.",
}

const (
	emergencyDisclaimer = "This system does not provide medical diagnoses. Please seek immediate professional care."
	standardDisclaimer  = "This information is for educational purposes only and is not a medical diagnosis."
)

func contributingFactors(b Breakdown) []string {
	factors := []string{}
	if b.Severity >= 25 {
		factors = append(factors, "High symptom severity")
	}
	if b.Duration >= 15 {
		factors = append(factors, "Symptoms lasting multiple days")
	}
	if b.Frequency >= 10 {
		factors = append(factors, "Frequent or continuous symptoms")
	}
	if b.Age >= 8 {
		factors = append(factors, "Age-related risk factor")
	}
	if b.Recurrence > 0 {
		factors = append(factors, "Previous similar episodes")
	}
	return factors
}

func explainabilityScore(riskScore int, factorCount int) int {
	score := 60 + factorCount*8 + riskScore/5
	if score > 100 {
		return 100
	}
	return score
}

// GenerateExplanation builds the explanation for a classified analysis.
// For EMERGENCY the contributing factors are the red-flag descriptions
// verbatim and the explainability score is fixed at 100.
func GenerateExplanation(level RiskLevel, riskScore int, breakdown Breakdown, redFlags []RedFlag) Explanation {
	if level == RiskEmergency {
		factors := make([]string, len(redFlags))
		for i, f := range redFlags {
			factors[i] = f.Description
		}
		return Explanation{
			Summary:             summaryTemplates[RiskEmergency],
			ContributingFactors: factors,
			Disclaimer:          emergencyDisclaimer,
			ExplainabilityScore: 100,
		}
	}

	factors := contributingFactors(breakdown)
	return Explanation{
		Summary:             summaryTemplates[level],
		ContributingFactors: factors,
		Disclaimer:          standardDisclaimer,
		ExplainabilityScore: explainabilityScore(riskScore, len(factors)),
	}
}
