package speech_test

import (
	"github.com/remwaste/accent-analyzer/server/adapters/speech"
	"github.com/remwaste/accent-analyzer/server/domain/repositories"
)

var _ repositories.SpeechAnalyzer = &speech.GoogleSpeechAnalyzer{}
