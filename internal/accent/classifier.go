// Package accent implements the accent classification core: a set of pure,
// deterministic functions that interpret a speech recognition result into an
// accent label, an English-confidence score, a human-readable summary, and a
// processing quality rating. The package performs no I/O and is safe to call
// concurrently.
package accent

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/remwaste/accent-analyzer/server/domain/entities"
)

// Classification labels relied upon by external consumers. These literals
// must not change.
const (
	LabelAnalysisFailed   = "Analysis Failed"
	LabelUndetermined     = "Undetermined"
	LabelGenericEnglish   = "English (Undetermined Region)"
	LabelNonEnglish       = "Non-English"
	labelOtherRegionalFmt = "English (Other Regional - %s)"
	englishRegionalPrefix = "en-"
	genericEnglishLocale  = "en"
)

// localeClass enumerates the recognized locale categories. Keeping branch
// precedence as an explicit variant makes the decision chain auditable.
type localeClass int

const (
	localeNone localeClass = iota
	localeGenericEnglish
	localeKnownEnglishRegion
	localeUnknownEnglishRegion
	localeNonEnglish
)

// localeToAccent maps regional English locales to their accent labels.
// Built once at init, never per call.
var localeToAccent = map[string]string{
	"en-US": "American English",
	"en-GB": "British English",
	"en-AU": "Australian English",
	"en-CA": "Canadian English",
	"en-IN": "Indian English",
	"en-NZ": "New Zealand English",
	"en-ZA": "South African English",
	"en-IE": "Irish English",
	"en-SG": "Singaporean English",
}

// classifyLocale buckets a detected locale tag into a localeClass
func classifyLocale(locale string) localeClass {
	switch {
	case locale == "":
		return localeNone
	case locale == genericEnglishLocale:
		return localeGenericEnglish
	case strings.HasPrefix(locale, englishRegionalPrefix):
		if _, ok := localeToAccent[locale]; ok {
			return localeKnownEnglishRegion
		}
		return localeUnknownEnglishRegion
	default:
		return localeNonEnglish
	}
}

// Classify maps a recognition result into an accent report. It is a total
// function: any well-formed result produces a defined report and no error.
// Identical inputs always yield identical outputs.
func Classify(result entities.RecognitionResult) entities.AccentReport {
	normalized := NormalizeConfidence(result.TranscriptionConfidence)
	transcriptLength := utf8.RuneCountInString(result.TranscriptText)

	debugInfo := map[string]interface{}{
		"raw_detected_locale":          result.DetectedLocale,
		"raw_transcription_confidence": result.TranscriptionConfidence,
		"normalized_confidence":        normalized,
		"transcript_length":            transcriptLength,
		"azure_error":                  result.Err,
		"raw_azure_response":           result.RawResponse,
	}

	var (
		classification string
		score          int
		summary        string
	)

	// Upstream failure short-circuits everything else.
	switch {
	case result.Err != "":
		classification = LabelAnalysisFailed
		score = 0
		summary = fmt.Sprintf("Analysis failed: %s", result.Err)

	default:
		switch classifyLocale(result.DetectedLocale) {
		case localeNone:
			classification = LabelUndetermined
			score = 0
			summary = "Could not detect any speech or language."

		case localeGenericEnglish:
			classification = LabelGenericEnglish
			// Truncation toward zero, not rounding: 79.9 stays 79. Consumers
			// depend on the exact boundary values.
			score = int(normalized * 100)
			summary = fmt.Sprintf("Detected generic English. Confidence in English: %d%%. Language code: %s.",
				score, result.DetectedLocale)

		case localeKnownEnglishRegion, localeUnknownEnglishRegion:
			classification = localeToAccent[result.DetectedLocale]
			if classification == "" {
				region := result.DetectedLocale[len(englishRegionalPrefix):]
				classification = fmt.Sprintf(labelOtherRegionalFmt, region)
			}
			score = int(normalized * 100)
			summary = fmt.Sprintf("Detected accent: %s. Confidence in English: %d%%. Language code: %s.",
				classification, score, result.DetectedLocale)

		default: // localeNonEnglish
			classification = LabelNonEnglish
			// Deliberately compressed range with a ceiling of 10: the tool
			// only scores English accents.
			score = clampScore(int(normalized*10), 0, 10)
			summary = fmt.Sprintf("Detected non-English language. Language code: %s. This tool is designed for English accent analysis.",
				result.DetectedLocale)
		}
	}

	if strings.TrimSpace(result.TranscriptText) != "" {
		wordCount := len(strings.Fields(result.TranscriptText))
		summary += fmt.Sprintf(" Transcript contains %d words.", wordCount)
		debugInfo["word_count"] = wordCount
	}

	quality := ProcessingQuality(score, transcriptLength, result.DetectedLocale)

	return entities.AccentReport{
		AccentClassification:      classification,
		ConfidenceInEnglishAccent: score,
		SummaryExplanation:        summary,
		TranscriptText:            result.TranscriptText,
		ProcessingQuality:         quality,
		DebugInfo:                 debugInfo,
	}
}

func clampScore(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
