package speech

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/remwaste/accent-analyzer/server/domain/entities"
	"github.com/remwaste/accent-analyzer/server/domain/repositories"
)

// MockSpeechAnalyzer is a placeholder implementation for local development
// and tests. It never talks to a cloud service.
type MockSpeechAnalyzer struct {
	logger *zap.Logger
}

// NewMockSpeechAnalyzer creates a new mock speech analyzer
func NewMockSpeechAnalyzer(logger *zap.Logger) repositories.SpeechAnalyzer {
	return &MockSpeechAnalyzer{logger: logger}
}

// AnalyzeAudio returns deterministic results keyed on the audio size
func (m *MockSpeechAnalyzer) AnalyzeAudio(ctx context.Context, wavPath string) (*entities.RecognitionResult, error) {
	info, err := os.Stat(wavPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat audio file: %w", err)
	}

	m.logger.Info("Mock speech analysis",
		zap.String("path", wavPath),
		zap.Int64("size", info.Size()))

	// Mock different outcomes based on audio size
	switch {
	case info.Size() > 100000:
		return &entities.RecognitionResult{
			DetectedLocale:          "en-GB",
			TranscriptionConfidence: 0.91,
			TranscriptText:          "Good afternoon everyone, thank you so much for joining the call today.",
			RawResponse:             map[string]interface{}{"reason": "MockRecognized"},
		}, nil
	case info.Size() > 10000:
		return &entities.RecognitionResult{
			DetectedLocale:          "en-US",
			TranscriptionConfidence: "high",
			TranscriptText:          "Hey there, how is it going?",
			RawResponse:             map[string]interface{}{"reason": "MockRecognized"},
		}, nil
	default:
		return &entities.RecognitionResult{
			TranscriptionConfidence: 0.0,
			RawResponse:             map[string]interface{}{"reason": "MockNoMatch"},
		}, nil
	}
}
