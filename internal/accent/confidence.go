package accent

import (
	"encoding/json"
	"strings"
)

// qualitativeConfidence maps the string confidence labels some recognizer
// responses use instead of a numeric value
var qualitativeConfidence = map[string]float64{
	"high":   0.95,
	"medium": 0.70,
	"low":    0.40,
}

// defaultConfidence is used when the confidence signal is absent or in an
// encoding we do not understand. Deliberate garbage-in tolerance: the
// normalizer never fails.
const defaultConfidence = 0.5

// NormalizeConfidence coerces a raw confidence signal into a float in
// [0.0, 1.0]. Strings are matched case-insensitively against the
// qualitative labels, numeric values are clamped, and everything else
// (nil, bools, structs) falls back to a moderate default.
func NormalizeConfidence(value interface{}) float64 {
	switch v := value.(type) {
	case string:
		if c, ok := qualitativeConfidence[strings.ToLower(v)]; ok {
			return c
		}
		return defaultConfidence
	case float64:
		return clampUnit(v)
	case float32:
		return clampUnit(float64(v))
	case int:
		return clampUnit(float64(v))
	case int32:
		return clampUnit(float64(v))
	case int64:
		return clampUnit(float64(v))
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return clampUnit(f)
		}
		return defaultConfidence
	default:
		return defaultConfidence
	}
}

func clampUnit(v float64) float64 {
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}
