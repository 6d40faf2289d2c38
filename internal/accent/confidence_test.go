package accent

import (
	"encoding/json"
	"testing"
)

func TestNormalizeConfidence_Numeric(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  float64
	}{
		{"float in range", 0.876, 0.876},
		{"zero", 0.0, 0.0},
		{"one", 1.0, 1.0},
		{"above one clamps", 1.7, 1.0},
		{"negative clamps", -0.3, 0.0},
		{"float32", float32(0.25), 0.25},
		{"int zero", 0, 0.0},
		{"int one", 1, 1.0},
		{"int above range clamps", 42, 1.0},
		{"int64", int64(-5), 0.0},
		{"json number", json.Number("0.75"), 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeConfidence(tt.value)
			if got != tt.want {
				t.Errorf("NormalizeConfidence(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestNormalizeConfidence_Qualitative(t *testing.T) {
	tests := []struct {
		value string
		want  float64
	}{
		{"high", 0.95},
		{"HIGH", 0.95},
		{"High", 0.95},
		{"medium", 0.70},
		{"MEDIUM", 0.70},
		{"low", 0.40},
		{"Low", 0.40},
		{"unknown-string", 0.5},
		{"", 0.5},
		{"0.8", 0.5}, // numeric strings are not a supported encoding
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got := NormalizeConfidence(tt.value)
			if got != tt.want {
				t.Errorf("NormalizeConfidence(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestNormalizeConfidence_Unsupported(t *testing.T) {
	values := []interface{}{
		nil,
		true,
		[]string{"high"},
		map[string]interface{}{"confidence": 0.9},
		struct{}{},
	}

	for _, v := range values {
		if got := NormalizeConfidence(v); got != 0.5 {
			t.Errorf("NormalizeConfidence(%v) = %v, want 0.5", v, got)
		}
	}
}

func TestNormalizeConfidence_IdentityInUnitRange(t *testing.T) {
	for _, c := range []float64{0.0, 0.1, 0.25, 0.5, 0.7, 0.95, 1.0} {
		if got := NormalizeConfidence(c); got != c {
			t.Errorf("NormalizeConfidence(%v) = %v, want identity", c, got)
		}
	}
}
