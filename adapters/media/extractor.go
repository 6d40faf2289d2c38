// Package media turns video sources (URLs or local files) into normalized
// mono 16 kHz PCM WAV files using ffmpeg and yt-dlp. Both binaries must be
// available on the system PATH unless overridden through the environment.
package media

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/remwaste/accent-analyzer/server/domain/repositories"
)

const (
	defaultFFmpegBinary = "ffmpeg"
	defaultYtDlpBinary  = "yt-dlp"

	// 16 kHz mono is what the speech recognition backends expect
	sampleRate = "16000"
	channels   = "1"
)

// ExtractorConfig holds configuration for the exec-based media extractor
type ExtractorConfig struct {
	FFmpegBinary string
	YtDlpBinary  string
}

// NewExtractorConfigFromEnv creates an ExtractorConfig from environment
// variables, falling back to PATH lookups
func NewExtractorConfigFromEnv() ExtractorConfig {
	return ExtractorConfig{
		FFmpegBinary: os.Getenv("FFMPEG_BINARY"),
		YtDlpBinary:  os.Getenv("YTDLP_BINARY"),
	}
}

// Extractor implements MediaExtractor by shelling out to ffmpeg and yt-dlp
type Extractor struct {
	ffmpeg string
	ytdlp  string
	logger *zap.Logger
}

var _ repositories.MediaExtractor = (*Extractor)(nil)

// NewExtractor creates a new exec-based media extractor
func NewExtractor(config ExtractorConfig, logger *zap.Logger) *Extractor {
	ffmpeg := config.FFmpegBinary
	if ffmpeg == "" {
		ffmpeg = defaultFFmpegBinary
	}
	ytdlp := config.YtDlpBinary
	if ytdlp == "" {
		ytdlp = defaultYtDlpBinary
	}
	return &Extractor{ffmpeg: ffmpeg, ytdlp: ytdlp, logger: logger}
}

// ExtractFromFile transcodes a local video/audio file into a standardized
// WAV file inside outputDir
func (e *Extractor) ExtractFromFile(ctx context.Context, inputPath string, outputDir string) (string, error) {
	outputPath := filepath.Join(outputDir, "processed_local_audio.wav")

	args := ffmpegArgs(inputPath, outputPath)
	e.logger.Info("Transcoding local file with ffmpeg",
		zap.String("input", inputPath),
		zap.String("output", outputPath))

	if err := e.run(ctx, e.ffmpeg, args); err != nil {
		return "", err
	}

	return e.finalize(outputPath)
}

// ExtractFromURL downloads the video at videoURL with yt-dlp and extracts
// its audio into a standardized WAV file inside outputDir
func (e *Extractor) ExtractFromURL(ctx context.Context, videoURL string, outputDir string) (string, error) {
	if strings.TrimSpace(videoURL) == "" {
		return "", fmt.Errorf("video URL cannot be empty")
	}

	outputTemplate := filepath.Join(outputDir, "audio.%(ext)s")
	args := ytdlpArgs(videoURL, outputTemplate)

	e.logger.Info("Downloading and extracting audio with yt-dlp",
		zap.String("url", videoURL),
		zap.String("outputDir", outputDir))

	if err := e.run(ctx, e.ytdlp, args); err != nil {
		return "", err
	}

	return e.finalize(filepath.Join(outputDir, "audio.wav"))
}

// finalize verifies the produced WAV and logs its size
func (e *Extractor) finalize(path string) (string, error) {
	verified, err := verifyOutput(path)
	if err != nil {
		return "", err
	}
	if info, err := GetFileInfo(verified); err == nil {
		e.logger.Info("Audio ready",
			zap.String("file", info.Name),
			zap.Float64("sizeMB", info.SizeMB))
	}
	return verified, nil
}

// ffmpegArgs builds the transcode arguments: audio only, PCM signed 16-bit
// little endian, 16 kHz, mono, overwrite existing output
func ffmpegArgs(inputPath, outputPath string) []string {
	return []string{
		"-i", inputPath,
		"-vn",
		"-acodec", "pcm_s16le",
		"-ar", sampleRate,
		"-ac", channels,
		"-y",
		outputPath,
	}
}

// ytdlpArgs builds the download arguments: best audio, extract to WAV with
// the recognition sample format applied by the postprocessor
func ytdlpArgs(videoURL, outputTemplate string) []string {
	return []string{
		"-f", "bestaudio/best",
		"-x",
		"--audio-format", "wav",
		"--audio-quality", "192",
		"--postprocessor-args", "-ar " + sampleRate + " -ac " + channels,
		"--no-playlist",
		"-o", outputTemplate,
		videoURL,
	}
}

func (e *Extractor) run(ctx context.Context, binary string, args []string) error {
	cmd := exec.CommandContext(ctx, binary, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%s timed out: %w", binary, ctx.Err())
		}
		e.logger.Error("Command failed",
			zap.String("binary", binary),
			zap.String("stderr", stderr.String()),
			zap.Error(err))
		return fmt.Errorf("%s failed: %w", binary, err)
	}
	return nil
}

func verifyOutput(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("expected output file not found: %s", path)
	}
	if info.Size() == 0 {
		return "", fmt.Errorf("output file is empty: %s", path)
	}
	return path, nil
}

// FileInfo describes basic properties of a media file
type FileInfo struct {
	Name      string  `json:"name"`
	Size      int64   `json:"size"`
	Extension string  `json:"extension"`
	SizeMB    float64 `json:"size_mb"`
}

// GetFileInfo returns basic information about a file
func GetFileInfo(path string) (*FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("file not found: %w", err)
	}
	return &FileInfo{
		Name:      filepath.Base(path),
		Size:      info.Size(),
		Extension: strings.ToLower(filepath.Ext(path)),
		SizeMB:    float64(info.Size()) / (1024 * 1024),
	}, nil
}
