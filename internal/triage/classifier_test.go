package triage

import (
	"math"
	"testing"
)

func TestClassifyRisk(t *testing.T) {
	tests := []struct {
		name           string
		score          int
		hasRedFlag     bool
		wantLevel      RiskLevel
		wantColor      string
		wantConfidence float64
	}{
		{"zero score", 0, false, RiskLow, "green", 0.60},
		{"low band interior", 15, false, RiskLow, "green", 0.75},
		{"low band upper boundary", 30, false, RiskLow, "green", 0.75},
		{"medium band lower boundary", 31, false, RiskMedium, "yellow", 0.85},
		{"medium band upper boundary", 65, false, RiskMedium, "yellow", 0.85},
		{"high band lower boundary", 66, false, RiskHigh, "orange", 0.95},
		{"maximum score", 100, false, RiskHigh, "orange", 0.95},
		{"red flag overrides low score", 5, true, RiskEmergency, "red", 1.0},
		{"red flag overrides high score", 95, true, RiskEmergency, "red", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyRisk(tt.score, tt.hasRedFlag)
			if got.RiskLevel != tt.wantLevel {
				t.Errorf("RiskLevel = %s, want %s", got.RiskLevel, tt.wantLevel)
			}
			if got.Color != tt.wantColor {
				t.Errorf("Color = %s, want %s", got.Color, tt.wantColor)
			}
			if math.Abs(got.Confidence-tt.wantConfidence) > 1e-9 {
				t.Errorf("Confidence = %v, want %v", got.Confidence, tt.wantConfidence)
			}
		})
	}
}

func TestClassifyRiskConfidenceWithinBand(t *testing.T) {
	// Confidence grows with the score but never leaves the band's cap.
	for score := 0; score <= 100; score++ {
		got := ClassifyRisk(score, false)
		if got.Confidence < 0.6 || got.Confidence > 0.95 {
			t.Errorf("score %d: confidence %v out of range", score, got.Confidence)
		}
	}
}
