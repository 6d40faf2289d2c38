package usecase

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/remwaste/accent-analyzer/server/domain/entities"
	"github.com/remwaste/accent-analyzer/server/domain/repositories"
	"github.com/remwaste/accent-analyzer/server/internal/accent"
)

// ProgressPublisher receives stage events while an analysis is running.
// Implemented by the websocket hub; a nil publisher disables progress events.
type ProgressPublisher interface {
	Publish(analysisID string, stage string, detail string)
}

// AnalysisService orchestrates the accent analysis pipeline: media
// extraction, speech recognition, and accent classification
type AnalysisService struct {
	extractor repositories.MediaExtractor
	speech    repositories.SpeechAnalyzer
	analyses  repositories.AnalysisRepository
	progress  ProgressPublisher
	logger    *zap.Logger
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(
	extractor repositories.MediaExtractor,
	speech repositories.SpeechAnalyzer,
	analyses repositories.AnalysisRepository,
	progress ProgressPublisher,
	logger *zap.Logger,
) *AnalysisService {
	return &AnalysisService{
		extractor: extractor,
		speech:    speech,
		analyses:  analyses,
		progress:  progress,
		logger:    logger,
	}
}

// AnalyzeURL records a pending job and runs the pipeline in the background.
// The returned analysis is a snapshot; callers observe progress by polling
// Get or subscribing to the progress publisher.
func (s *AnalysisService) AnalyzeURL(ctx context.Context, videoURL string) (*entities.Analysis, error) {
	videoURL = strings.TrimSpace(videoURL)
	if videoURL == "" {
		return nil, fmt.Errorf("video URL cannot be empty")
	}

	analysis := entities.NewAnalysis(entities.AnalysisSourceURL, videoURL)
	if err := s.analyses.Create(ctx, analysis); err != nil {
		return nil, fmt.Errorf("failed to store analysis: %w", err)
	}

	s.logger.Info("Starting URL analysis",
		zap.String("analysisID", analysis.ID),
		zap.String("url", videoURL))

	pending := *analysis
	go s.run(analysis, func(ctx context.Context, workDir string) (string, error) {
		return s.extractor.ExtractFromURL(ctx, videoURL, workDir)
	})
	return &pending, nil
}

// AnalyzeUpload stages the uploaded media on disk, records a pending job,
// and runs the pipeline in the background. The upload is consumed before
// returning so the caller's reader does not outlive the request.
func (s *AnalysisService) AnalyzeUpload(ctx context.Context, filename string, content io.Reader) (*entities.Analysis, error) {
	filename = filepath.Base(strings.TrimSpace(filename))
	if filename == "" || filename == "." {
		return nil, fmt.Errorf("upload filename cannot be empty")
	}

	stageDir, err := os.MkdirTemp("", "accent-upload-*")
	if err != nil {
		return nil, fmt.Errorf("failed to stage upload: %w", err)
	}
	inputPath := filepath.Join(stageDir, filename)
	if err := stageUpload(inputPath, content); err != nil {
		os.RemoveAll(stageDir)
		return nil, err
	}

	analysis := entities.NewAnalysis(entities.AnalysisSourceUpload, filename)
	if err := s.analyses.Create(ctx, analysis); err != nil {
		os.RemoveAll(stageDir)
		return nil, fmt.Errorf("failed to store analysis: %w", err)
	}

	s.logger.Info("Starting upload analysis",
		zap.String("analysisID", analysis.ID),
		zap.String("filename", filename))

	pending := *analysis
	go func() {
		defer os.RemoveAll(stageDir)
		s.run(analysis, func(ctx context.Context, workDir string) (string, error) {
			return s.extractor.ExtractFromFile(ctx, inputPath, workDir)
		})
	}()
	return &pending, nil
}

func stageUpload(path string, content io.Reader) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to stage upload: %w", err)
	}
	if _, err := io.Copy(f, content); err != nil {
		f.Close()
		return fmt.Errorf("failed to write upload: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write upload: %w", err)
	}
	return nil
}

// Get returns a single analysis by ID
func (s *AnalysisService) Get(ctx context.Context, id string) (*entities.Analysis, error) {
	return s.analyses.GetByID(ctx, id)
}

// List returns the most recent analyses
func (s *AnalysisService) List(ctx context.Context, limit int) ([]*entities.Analysis, error) {
	return s.analyses.List(ctx, limit)
}

// pipelineTimeout bounds a single background run, download included.
const pipelineTimeout = 10 * time.Minute

// run executes the pipeline stages against a temporary working directory,
// under its own context so the job survives the originating request.
// Pipeline failures are recorded on the analysis rather than returned:
// the job record is the source of truth for what happened.
func (s *AnalysisService) run(analysis *entities.Analysis, extract func(ctx context.Context, workDir string) (string, error)) {
	ctx, cancel := context.WithTimeout(context.Background(), pipelineTimeout)
	defer cancel()

	workDir, err := os.MkdirTemp("", "accent-analyzer-*")
	if err != nil {
		s.fail(ctx, analysis, fmt.Errorf("failed to create working directory: %w", err))
		return
	}
	defer os.RemoveAll(workDir)

	s.transition(ctx, analysis, entities.AnalysisStatusExtracting, "Extracting audio")
	wavPath, err := extract(ctx, workDir)
	if err != nil {
		s.fail(ctx, analysis, fmt.Errorf("audio extraction failed: %w", err))
		return
	}
	s.transition(ctx, analysis, entities.AnalysisStatusRecognizing, "Analyzing speech")
	result, err := s.speech.AnalyzeAudio(ctx, wavPath)
	if err != nil {
		s.fail(ctx, analysis, fmt.Errorf("speech recognition failed: %w", err))
		return
	}

	s.transition(ctx, analysis, entities.AnalysisStatusClassifying, "Determining accent classification")
	// Recognizer-declared failures flow through the classifier and come out
	// as an "Analysis Failed" report; the job itself still completes.
	report := accent.Classify(*result)
	analysis.Complete(&report)
	s.update(ctx, analysis)

	s.publish(analysis.ID, string(entities.AnalysisStatusCompleted), report.AccentClassification)
	s.logger.Info("Analysis completed",
		zap.String("analysisID", analysis.ID),
		zap.String("classification", report.AccentClassification),
		zap.Int("confidence", report.ConfidenceInEnglishAccent))
}

func (s *AnalysisService) transition(ctx context.Context, analysis *entities.Analysis, status entities.AnalysisStatus, detail string) {
	analysis.SetStatus(status)
	s.update(ctx, analysis)
	s.publish(analysis.ID, string(status), detail)
}

func (s *AnalysisService) fail(ctx context.Context, analysis *entities.Analysis, err error) {
	s.logger.Error("Analysis failed",
		zap.String("analysisID", analysis.ID),
		zap.Error(err))
	analysis.Fail(err.Error())
	s.update(ctx, analysis)
	s.publish(analysis.ID, string(entities.AnalysisStatusFailed), err.Error())
}

func (s *AnalysisService) update(ctx context.Context, analysis *entities.Analysis) {
	if err := s.analyses.Update(ctx, analysis); err != nil {
		s.logger.Error("Failed to persist analysis state",
			zap.String("analysisID", analysis.ID),
			zap.Error(err))
	}
}

func (s *AnalysisService) publish(analysisID, stage, detail string) {
	if s.progress != nil {
		s.progress.Publish(analysisID, stage, detail)
	}
}
