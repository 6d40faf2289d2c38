package entities

// RecognitionResult is the outcome of a cloud speech recognition call with
// language identification. It is owned by the caller and immutable once built.
type RecognitionResult struct {
	// DetectedLocale is a BCP-47-like tag such as "en-US" or "en".
	// Empty means the recognizer could not detect any language.
	DetectedLocale string `json:"detected_locale"`

	// TranscriptionConfidence carries the raw confidence signal as the
	// recognizer reported it. Depending on the backend this may be a float,
	// an integer, or a qualitative string like "high"/"medium"/"low".
	TranscriptionConfidence interface{} `json:"transcription_confidence"`

	// TranscriptText is the recognized speech, possibly empty.
	TranscriptText string `json:"transcript_text"`

	// Err is non-empty when upstream recognition failed.
	Err string `json:"error,omitempty"`

	// RawResponse is a diagnostic passthrough of the backend response.
	RawResponse map[string]interface{} `json:"raw_azure_response,omitempty"`
}

// AccentReport is the classification record produced for a single
// recognition result. A new value is constructed per request; there is no
// shared state between calls.
type AccentReport struct {
	AccentClassification      string                 `json:"accent_classification" bson:"accent_classification"`
	ConfidenceInEnglishAccent int                    `json:"confidence_in_english_accent" bson:"confidence_in_english_accent"`
	SummaryExplanation        string                 `json:"summary_explanation" bson:"summary_explanation"`
	TranscriptText            string                 `json:"transcript_text" bson:"transcript_text"`
	ProcessingQuality         string                 `json:"processing_quality" bson:"processing_quality"`
	DebugInfo                 map[string]interface{} `json:"debug_info" bson:"debug_info"`
}
