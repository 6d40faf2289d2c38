package repositories

import (
	"context"

	"github.com/remwaste/accent-analyzer/server/domain/entities"
)

// SpeechAnalyzer abstracts cloud speech recognition with language
// identification. Implementations must map recognizer-declared failures
// (bad credentials, canceled recognition) into RecognitionResult.Err and
// reserve Go errors for local problems such as unreadable audio files.
type SpeechAnalyzer interface {
	// AnalyzeAudio runs recognition over a mono 16 kHz PCM WAV file
	AnalyzeAudio(ctx context.Context, wavPath string) (*entities.RecognitionResult, error)
}
