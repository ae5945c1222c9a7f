package triage

import "testing"

func intPtr(v int) *int { return &v }

func TestCalculateRiskScore(t *testing.T) {
	tests := []struct {
		name      string
		in        Input
		wantScore int
		wantBreak Breakdown
	}{
		{
			name:      "minimal input",
			in:        Input{Severity: 1, DurationDays: 1},
			wantScore: 9,
			wantBreak: Breakdown{Severity: 4, Duration: 5},
		},
		{
			name: "all components at maximum",
			in: Input{
				Severity:         10,
				DurationDays:     30,
				Frequency:        "continuous",
				Age:              intPtr(70),
				PreviousEpisodes: true,
			},
			wantScore: 100,
			wantBreak: Breakdown{Severity: 40, Duration: 25, Frequency: 15, Age: 10, Recurrence: 10},
		},
		{
			name: "moderate adult case",
			in: Input{
				Severity:     7,
				DurationDays: 5,
				Frequency:    "intermittent",
				Age:          intPtr(35),
			},
			wantScore: 58,
			wantBreak: Breakdown{Severity: 28, Duration: 18, Frequency: 10, Age: 2},
		},
		{
			name:      "unknown frequency scores zero",
			in:        Input{Severity: 5, DurationDays: 2, Frequency: "sometimes"},
			wantScore: 30,
			wantBreak: Breakdown{Severity: 20, Duration: 10},
		},
		{
			name:      "unknown age scores zero",
			in:        Input{Severity: 3, DurationDays: 1, Frequency: "rare"},
			wantScore: 22,
			wantBreak: Breakdown{Severity: 12, Duration: 5, Frequency: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateRiskScore(tt.in)
			if got.RiskScore != tt.wantScore {
				t.Errorf("RiskScore = %d, want %d", got.RiskScore, tt.wantScore)
			}
			if got.Breakdown != tt.wantBreak {
				t.Errorf("Breakdown = %+v, want %+v", got.Breakdown, tt.wantBreak)
			}
		})
	}
}

func TestCalculateRiskScoreDeterministic(t *testing.T) {
	in := Input{
		Symptoms:         []string{"headache", "nausea"},
		Severity:         6,
		DurationDays:     4,
		Frequency:        "intermittent",
		Age:              intPtr(52),
		PreviousEpisodes: true,
	}

	first := CalculateRiskScore(in)
	for i := 0; i < 10; i++ {
		if got := CalculateRiskScore(in); got != first {
			t.Fatalf("run %d produced %+v, first run produced %+v", i, got, first)
		}
	}
}

func TestDurationScoreBoundaries(t *testing.T) {
	tests := []struct {
		days int
		want float64
	}{
		{0, 5},
		{1, 5},
		{2, 10},
		{3, 10},
		{4, 18},
		{7, 18},
		{8, 25},
		{365, 25},
	}

	for _, tt := range tests {
		if got := durationScore(tt.days); got != tt.want {
			t.Errorf("durationScore(%d) = %v, want %v", tt.days, got, tt.want)
		}
	}
}

func TestAgeScoreBoundaries(t *testing.T) {
	tests := []struct {
		age  *int
		want float64
	}{
		{nil, 0},
		{intPtr(0), 5},
		{intPtr(11), 5},
		{intPtr(12), 2},
		{intPtr(39), 2},
		{intPtr(40), 6},
		{intPtr(59), 6},
		{intPtr(60), 10},
		{intPtr(90), 10},
	}

	for _, tt := range tests {
		if got := ageScore(tt.age); got != tt.want {
			t.Errorf("ageScore(%v) = %v, want %v", tt.age, got, tt.want)
		}
	}
}
