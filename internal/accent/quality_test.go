package accent

import (
	"strings"
	"testing"
)

func TestProcessingQuality(t *testing.T) {
	tests := []struct {
		name   string
		score  int
		length int
		want   string
	}{
		{"zero score", 0, 100, "Poor - No speech detected"},
		{"low confidence", 15, 100, "Poor - Low confidence"},
		{"low boundary", 29, 0, "Poor - Low confidence"},
		{"moderate short audio", 45, 5, "Fair - Moderate confidence, short audio"},
		{"moderate boundary length", 45, 10, "Good - Moderate confidence"},
		{"moderate long audio", 59, 200, "Good - Moderate confidence"},
		{"high sufficient audio", 70, 60, "Very Good - High confidence, sufficient audio"},
		{"high boundary length", 70, 50, "Good - High confidence"},
		{"high short audio", 79, 10, "Good - High confidence"},
		{"very high short audio", 85, 10, "Very Good - Very high confidence"},
		{"very high sufficient audio", 85, 60, "Excellent - Very high confidence, sufficient audio"},
		{"very high boundary", 80, 51, "Excellent - Very high confidence, sufficient audio"},
		{"max score boundary length", 100, 50, "Very Good - Very high confidence"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProcessingQuality(tt.score, tt.length, "en-US")
			if got != tt.want {
				t.Errorf("ProcessingQuality(%d, %d) = %q, want %q", tt.score, tt.length, got, tt.want)
			}
		})
	}
}

func TestProcessingQuality_LocaleDoesNotVaryOutcome(t *testing.T) {
	for _, locale := range []string{"", "en-US", "fr-FR", "en"} {
		if got := ProcessingQuality(85, 60, locale); got != "Excellent - Very high confidence, sufficient audio" {
			t.Errorf("ProcessingQuality with locale %q = %q", locale, got)
		}
	}
}

func TestProcessingQuality_TierSeparator(t *testing.T) {
	// The " - " separator is split on by consumers for color coding.
	ratings := []string{
		ProcessingQuality(0, 0, ""),
		ProcessingQuality(20, 0, ""),
		ProcessingQuality(45, 5, ""),
		ProcessingQuality(45, 50, ""),
		ProcessingQuality(70, 60, ""),
		ProcessingQuality(70, 10, ""),
		ProcessingQuality(90, 60, ""),
		ProcessingQuality(90, 10, ""),
	}

	tiers := map[string]bool{"Poor": true, "Fair": true, "Good": true, "Very Good": true, "Excellent": true}
	for _, r := range ratings {
		tier, qualifier, found := strings.Cut(r, " - ")
		if !found {
			t.Errorf("Rating %q missing the \" - \" separator", r)
			continue
		}
		if !tiers[tier] {
			t.Errorf("Rating %q has unknown tier %q", r, tier)
		}
		if qualifier == "" {
			t.Errorf("Rating %q has empty qualifier", r)
		}
	}
}
