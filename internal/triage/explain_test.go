package triage

import "testing"

func TestGenerateExplanationEmergency(t *testing.T) {
	flags := []RedFlag{
		{Code: "RF001", Description: "Chest pain with shortness of breath"},
		{Code: "RF004", Description: "Sudden weakness with speech difficulty"},
	}

	got := GenerateExplanation(RiskEmergency, 0, Breakdown{}, flags)

	if got.Summary != summaryTemplates[RiskEmergency] {
		t.Errorf("Summary = %q", got.Summary)
	}
	if got.Disclaimer != emergencyDisclaimer {
		t.Errorf("Disclaimer = %q", got.Disclaimer)
	}
	if got.ExplainabilityScore != 100 {
		t.Errorf("ExplainabilityScore = %d, want 100", got.ExplainabilityScore)
	}
	if len(got.ContributingFactors) != 2 {
		t.Fatalf("got %d factors, want 2", len(got.ContributingFactors))
	}
	for i, f := range flags {
		if got.ContributingFactors[i] != f.Description {
			t.Errorf("factor[%d] = %q, want %q", i, got.ContributingFactors[i], f.Description)
		}
	}
}

func TestGenerateExplanationStandard(t *testing.T) {
	tests := []struct {
		name        string
		level       RiskLevel
		riskScore   int
		breakdown   Breakdown
		wantFactors int
		wantScore   int
	}{
		{
			name:        "low risk with no contributing factors",
			level:       RiskLow,
			riskScore:   9,
			breakdown:   Breakdown{Severity: 4, Duration: 5},
			wantFactors: 0,
			wantScore:   61, // 60 + 0 + 9/5
		},
		{
			name:        "medium risk with three factors",
			level:       RiskMedium,
			riskScore:   58,
			breakdown:   Breakdown{Severity: 28, Duration: 18, Frequency: 10, Age: 2},
			wantFactors: 3,
			wantScore:   95, // 60 + 24 + 58/5
		},
		{
			name:        "all five factors caps at 100",
			level:       RiskHigh,
			riskScore:   100,
			breakdown:   Breakdown{Severity: 40, Duration: 25, Frequency: 15, Age: 10, Recurrence: 10},
			wantFactors: 5,
			wantScore:   100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateExplanation(tt.level, tt.riskScore, tt.breakdown, nil)

			if got.Summary != summaryTemplates[tt.level] {
				t.Errorf("Summary = %q", got.Summary)
			}
			if got.Disclaimer != standardDisclaimer {
				t.Errorf("Disclaimer = %q", got.Disclaimer)
			}
			if len(got.ContributingFactors) != tt.wantFactors {
				t.Errorf("got %d factors (%v), want %d", len(got.ContributingFactors), got.ContributingFactors, tt.wantFactors)
			}
			if got.ExplainabilityScore != tt.wantScore {
				t.Errorf("ExplainabilityScore = %d, want %d", got.ExplainabilityScore, tt.wantScore)
			}
		})
	}
}
