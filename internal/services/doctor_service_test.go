package services

import (
	"testing"
	"time"
)

func TestOverlaps(t *testing.T) {
	base := time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC)
	at := func(h int) time.Time { return base.Add(time.Duration(h) * time.Hour) }

	tests := []struct {
		name                       string
		startA, endA, startB, endB time.Time
		want                       bool
	}{
		{"identical", at(0), at(1), at(0), at(1), true},
		{"contained", at(0), at(4), at(1), at(2), true},
		{"partial front", at(0), at(2), at(1), at(3), true},
		{"partial back", at(1), at(3), at(0), at(2), true},
		{"adjacent before", at(0), at(1), at(1), at(2), false},
		{"adjacent after", at(1), at(2), at(0), at(1), false},
		{"disjoint", at(0), at(1), at(3), at(4), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := overlaps(tt.startA, tt.endA, tt.startB, tt.endB); got != tt.want {
				t.Errorf("overlaps = %v, want %v", got, tt.want)
			}
		})
	}
}
