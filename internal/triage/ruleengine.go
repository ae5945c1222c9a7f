package triage

import "math"

// Breakdown holds the five independent sub-scores; the total score must
// be reproducible from it.
type Breakdown struct {
	Severity   float64 `json:"severity"`
	Duration   float64 `json:"duration"`
	Frequency  float64 `json:"frequency"`
	Age        float64 `json:"age"`
	Recurrence float64 `json:"recurrence"`
}

type ScoreResult struct {
	RiskScore int       `json:"risk_score"`
	Breakdown Breakdown `json:"breakdown"`
}

func severityScore(severity int) float64 {
	return math.Min(float64(severity)/10*40, 40)
}

func durationScore(days int) float64 {
	switch {
	case days <= 1:
		return 5
	case days <= 3:
		return 10
	case days <= 7:
		return 18
	default:
		return 25
	}
}

func frequencyScore(frequency string) float64 {
	switch frequency {
	case "rare":
		return 5
	case "intermittent":
		return 10
	case "continuous":
		return 15
	default:
		return 0
	}
}

func ageScore(age *int) float64 {
	if age == nil {
		return 0
	}
	switch {
	case *age < 12:
		return 5
	case *age < 40:
		return 2
	case *age < 60:
		return 6
	default:
		return 10
	}
}

func recurrenceScore(previousEpisodes bool) float64 {
	if previousEpisodes {
		return 10
	}
	return 0
}

// CalculateRiskScore converts a normalized symptom payload into a 0-100
// risk score. Deterministic and pure. Callers must skip it entirely when
// a red flag fired; red flags force an emergency classification.
func CalculateRiskScore(in Input) ScoreResult {
	breakdown := Breakdown{
		Severity:   severityScore(in.Severity),
		Duration:   durationScore(in.DurationDays),
		Frequency:  frequencyScore(in.Frequency),
		Age:        ageScore(in.Age),
		Recurrence: recurrenceScore(in.PreviousEpisodes),
	}

	total := breakdown.Severity + breakdown.Duration + breakdown.Frequency +
		breakdown.Age + breakdown.Recurrence

	score := int(math.Round(total))
	if score > 100 {
		score = 100
	}

	return ScoreResult{RiskScore: score, Breakdown: breakdown}
}
