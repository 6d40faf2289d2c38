package speech

import (
	"os"
	"strings"
)

// defaultCandidateLocales is the English variant set submitted for language
// identification
var defaultCandidateLocales = []string{
	"en-US", "en-GB", "en-AU", "en-CA", "en-IN", "en-NZ", "en-ZA",
}

// CandidateLocalesFromEnv returns the locale candidate set for language
// identification, shared by all recognition backends. Override with a
// comma-separated SPEECH_CANDIDATE_LOCALES.
func CandidateLocalesFromEnv() []string {
	raw := os.Getenv("SPEECH_CANDIDATE_LOCALES")
	if raw == "" {
		return append([]string(nil), defaultCandidateLocales...)
	}

	var locales []string
	for _, l := range strings.Split(raw, ",") {
		if l = strings.TrimSpace(l); l != "" {
			locales = append(locales, l)
		}
	}
	if len(locales) == 0 {
		return append([]string(nil), defaultCandidateLocales...)
	}
	return locales
}
