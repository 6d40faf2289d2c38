package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/remwaste/accent-analyzer/server/domain/entities"
	"github.com/remwaste/accent-analyzer/server/domain/repositories"
)

const (
	defaultAzureEndpointFmt = "https://%s.stt.speech.microsoft.com/speech/recognition/conversation/cognitiveservices/v1"
	defaultAzureTimeout     = 60 * time.Second
)

// AzureSpeechConfig holds configuration for the AzureSpeechAnalyzer adapter.
// Required fields:
// - SubscriptionKey: Azure Speech Services API key
// - Region: Azure region (e.g. "eastus"), unless Endpoint is set explicitly
// Optional fields with defaults:
// - Endpoint: recognition endpoint override (default derived from Region)
// - CandidateLocales: locales offered for language identification
// - Timeout: HTTP timeout for a recognition call (default: 60s)
type AzureSpeechConfig struct {
	SubscriptionKey  string
	Region           string
	Endpoint         string
	CandidateLocales []string
	Timeout          time.Duration
}

// ValidateAzureSpeechConfig validates the AzureSpeechConfig
func ValidateAzureSpeechConfig(config AzureSpeechConfig) error {
	if config.SubscriptionKey == "" {
		return fmt.Errorf("azure speech subscription key is required")
	}
	if config.Region == "" && config.Endpoint == "" {
		return fmt.Errorf("azure speech region or endpoint is required")
	}
	if config.Timeout < 0 {
		return fmt.Errorf("timeout must be positive, got %s", config.Timeout)
	}
	return nil
}

// NewAzureSpeechConfigFromEnv creates an AzureSpeechConfig from environment
// variables (AZURE_SPEECH_KEY, AZURE_SPEECH_REGION and friends)
func NewAzureSpeechConfigFromEnv() AzureSpeechConfig {
	config := AzureSpeechConfig{
		SubscriptionKey:  os.Getenv("AZURE_SPEECH_KEY"),
		Region:           os.Getenv("AZURE_SPEECH_REGION"),
		Endpoint:         os.Getenv("AZURE_SPEECH_ENDPOINT"),
		CandidateLocales: CandidateLocalesFromEnv(),
	}

	if timeoutStr := os.Getenv("AZURE_SPEECH_TIMEOUT_SECONDS"); timeoutStr != "" {
		if seconds, err := strconv.Atoi(timeoutStr); err == nil && seconds > 0 {
			config.Timeout = time.Duration(seconds) * time.Second
		}
	}

	return config
}

// AzureSpeechAnalyzer implements SpeechAnalyzer using the Azure Speech
// Services short-audio REST API with language identification
type AzureSpeechAnalyzer struct {
	subscriptionKey  string
	endpoint         string
	candidateLocales []string
	client           *http.Client
	logger           *zap.Logger
}

// Ensure AzureSpeechAnalyzer implements the SpeechAnalyzer interface
var _ repositories.SpeechAnalyzer = (*AzureSpeechAnalyzer)(nil)

// NewAzureSpeechAnalyzer creates a new Azure speech analyzer instance
func NewAzureSpeechAnalyzer(config AzureSpeechConfig, logger *zap.Logger) (*AzureSpeechAnalyzer, error) {
	if err := ValidateAzureSpeechConfig(config); err != nil {
		return nil, err
	}

	endpoint := config.Endpoint
	if endpoint == "" {
		endpoint = fmt.Sprintf(defaultAzureEndpointFmt, config.Region)
		logger.Info("Using default Azure endpoint", zap.String("endpoint", endpoint))
	}

	locales := config.CandidateLocales
	if len(locales) == 0 {
		locales = defaultCandidateLocales
	}

	timeout := config.Timeout
	if timeout == 0 {
		timeout = defaultAzureTimeout
	}

	return &AzureSpeechAnalyzer{
		subscriptionKey:  config.SubscriptionKey,
		endpoint:         endpoint,
		candidateLocales: locales,
		client:           &http.Client{Timeout: timeout},
		logger:           logger,
	}, nil
}

// azureRecognitionResponse mirrors the detailed-format response of the
// short-audio recognition endpoint
type azureRecognitionResponse struct {
	RecognitionStatus string `json:"RecognitionStatus"`
	DisplayText       string `json:"DisplayText"`
	Offset            int64  `json:"Offset"`
	Duration          int64  `json:"Duration"`
	PrimaryLanguage   *struct {
		Language string `json:"Language"`
		// Azure reports language confidence qualitatively ("High",
		// "Medium", "Low"); the accent core's normalizer handles it.
		Confidence string `json:"Confidence"`
	} `json:"PrimaryLanguage"`
	NBest []struct {
		// Confidence is usually a float but has been observed as a string
		// in some response variants, so it is decoded loosely.
		Confidence interface{} `json:"Confidence"`
		Lexical    string      `json:"Lexical"`
		Display    string      `json:"Display"`
	} `json:"NBest"`
}

// AnalyzeAudio submits a WAV file for recognition with language
// identification across the configured candidate locales. Failures declared
// by the service are reported through RecognitionResult.Err; a Go error is
// returned only for local problems (unreadable file, request construction).
func (a *AzureSpeechAnalyzer) AnalyzeAudio(ctx context.Context, wavPath string) (*entities.RecognitionResult, error) {
	audio, err := os.ReadFile(wavPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file: %w", err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("audio file is empty: %s", wavPath)
	}

	a.logger.Info("Submitting audio to Azure Speech",
		zap.String("path", wavPath),
		zap.Int("bytes", len(audio)),
		zap.Strings("candidateLocales", a.candidateLocales))

	query := url.Values{}
	query.Set("language", a.candidateLocales[0])
	query.Set("format", "detailed")
	query.Set("lidEnabled", "true")
	query.Set("candidateLocales", strings.Join(a.candidateLocales, ","))

	requestURL := a.endpoint + "?" + query.Encode()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, bytes.NewReader(audio))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("Ocp-Apim-Subscription-Key", a.subscriptionKey)
	httpReq.Header.Set("Content-Type", "audio/wav; codecs=audio/pcm; samplerate=16000")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("recognition request cancelled: %w", ctx.Err())
		}
		// Transport failures are surfaced as an upstream recognition
		// failure so the classifier reports Analysis Failed.
		return &entities.RecognitionResult{
			TranscriptionConfidence: 0.0,
			Err:                     fmt.Sprintf("Azure Speech request failed: %v", err),
		}, nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		a.logger.Error("Azure Speech API returned error",
			zap.Int("statusCode", resp.StatusCode),
			zap.String("response", string(body)))
		return &entities.RecognitionResult{
			TranscriptionConfidence: 0.0,
			Err:                     fmt.Sprintf("Azure Speech API returned status %d", resp.StatusCode),
		}, nil
	}

	return parseAzureResponse(body)
}

// parseAzureResponse converts a detailed-format recognition payload into the
// neutral RecognitionResult shape
func parseAzureResponse(body []byte) (*entities.RecognitionResult, error) {
	var payload azureRecognitionResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode recognition response: %w", err)
	}

	raw := map[string]interface{}{
		"reason":   payload.RecognitionStatus,
		"offset":   payload.Offset,
		"duration": payload.Duration,
	}

	switch payload.RecognitionStatus {
	case "Success":
		locale := ""
		if payload.PrimaryLanguage != nil {
			locale = payload.PrimaryLanguage.Language
		}

		// Prefer the transcription confidence from the best hypothesis,
		// fall back to the language identification confidence, then to a
		// moderate-high default for a successful recognition.
		var confidence interface{} = 0.85
		if len(payload.NBest) > 0 && payload.NBest[0].Confidence != nil {
			confidence = payload.NBest[0].Confidence
		} else if payload.PrimaryLanguage != nil && payload.PrimaryLanguage.Confidence != "" {
			confidence = payload.PrimaryLanguage.Confidence
		}

		text := payload.DisplayText
		if text == "" && len(payload.NBest) > 0 {
			text = payload.NBest[0].Display
		}

		return &entities.RecognitionResult{
			DetectedLocale:          locale,
			TranscriptionConfidence: confidence,
			TranscriptText:          text,
			RawResponse:             raw,
		}, nil

	case "NoMatch", "InitialSilenceTimeout", "BabbleTimeout":
		// No speech recognized is a legitimate outcome, not an error
		return &entities.RecognitionResult{
			TranscriptionConfidence: 0.0,
			RawResponse:             raw,
		}, nil

	default:
		return &entities.RecognitionResult{
			TranscriptionConfidence: 0.0,
			Err:                     fmt.Sprintf("Recognition canceled: %s", payload.RecognitionStatus),
			RawResponse:             raw,
		}, nil
	}
}
