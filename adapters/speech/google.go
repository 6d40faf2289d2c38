package speech

import (
	"context"
	"fmt"
	"os"

	speech "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
	"go.uber.org/zap"

	"github.com/remwaste/accent-analyzer/server/domain/entities"
	"github.com/remwaste/accent-analyzer/server/domain/repositories"
)

// GoogleSpeechAnalyzer implements SpeechAnalyzer using Google Cloud
// Speech-to-Text with alternative language codes for variant detection.
// Credentials are resolved the usual Google way (GOOGLE_APPLICATION_CREDENTIALS).
type GoogleSpeechAnalyzer struct {
	candidateLocales []string
	logger           *zap.Logger
}

var _ repositories.SpeechAnalyzer = (*GoogleSpeechAnalyzer)(nil)

// NewGoogleSpeechAnalyzer creates a new Google Cloud speech analyzer
func NewGoogleSpeechAnalyzer(candidateLocales []string, logger *zap.Logger) *GoogleSpeechAnalyzer {
	if len(candidateLocales) == 0 {
		candidateLocales = defaultCandidateLocales
	}
	return &GoogleSpeechAnalyzer{
		candidateLocales: candidateLocales,
		logger:           logger,
	}
}

// AnalyzeAudio runs a non-streaming recognition over the WAV file
func (g *GoogleSpeechAnalyzer) AnalyzeAudio(ctx context.Context, wavPath string) (*entities.RecognitionResult, error) {
	audio, err := os.ReadFile(wavPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file: %w", err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("audio file is empty: %s", wavPath)
	}

	client, err := speech.NewClient(ctx)
	if err != nil {
		return &entities.RecognitionResult{
			TranscriptionConfidence: 0.0,
			Err:                     fmt.Sprintf("failed to create speech client: %v", err),
		}, nil
	}
	defer client.Close()

	g.logger.Info("Submitting audio to Google Cloud Speech",
		zap.String("path", wavPath),
		zap.Int("bytes", len(audio)))

	resp, err := client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:                 speechpb.RecognitionConfig_LINEAR16,
			SampleRateHertz:          16000,
			LanguageCode:             g.candidateLocales[0],
			AlternativeLanguageCodes: g.candidateLocales[1:],
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audio},
		},
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("recognition request cancelled: %w", ctx.Err())
		}
		return &entities.RecognitionResult{
			TranscriptionConfidence: 0.0,
			Err:                     fmt.Sprintf("recognition failed: %v", err),
		}, nil
	}

	if len(resp.Results) == 0 {
		return &entities.RecognitionResult{
			TranscriptionConfidence: 0.0,
			RawResponse:             map[string]interface{}{"reason": "NoMatch"},
		}, nil
	}

	// Use the first result's best alternative; concatenate transcripts from
	// any remaining results.
	first := resp.Results[0]
	if len(first.Alternatives) == 0 {
		return &entities.RecognitionResult{
			TranscriptionConfidence: 0.0,
			RawResponse:             map[string]interface{}{"reason": "NoMatch"},
		}, nil
	}

	transcript := ""
	for _, result := range resp.Results {
		if len(result.Alternatives) > 0 {
			transcript += result.Alternatives[0].Transcript
		}
	}

	return &entities.RecognitionResult{
		DetectedLocale:          first.LanguageCode,
		TranscriptionConfidence: float64(first.Alternatives[0].Confidence),
		TranscriptText:          transcript,
		RawResponse: map[string]interface{}{
			"reason":       "RecognizedSpeech",
			"result_count": len(resp.Results),
		},
	}, nil
}
