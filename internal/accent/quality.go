package accent

// ProcessingQuality rates how reliable an analysis outcome is, based on the
// final confidence score (0-100) and the transcript length in characters.
// Ratings are "<Tier> - <Qualifier>" strings; the presentation layer splits
// on the " - " separator for color coding, so the literal must be kept.
//
// The locale parameter is accepted for forward compatibility but does not
// currently vary the outcome.
func ProcessingQuality(score int, transcriptLength int, locale string) string {
	switch {
	case score == 0:
		return "Poor - No speech detected"
	case score < 30:
		return "Poor - Low confidence"
	case score < 60:
		if transcriptLength < 10 {
			return "Fair - Moderate confidence, short audio"
		}
		return "Good - Moderate confidence"
	case score < 80:
		if transcriptLength > 50 {
			return "Very Good - High confidence, sufficient audio"
		}
		return "Good - High confidence"
	default:
		if transcriptLength > 50 {
			return "Excellent - Very high confidence, sufficient audio"
		}
		return "Very Good - Very high confidence"
	}
}
