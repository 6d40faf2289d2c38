package repositories

import "context"

// MediaExtractor abstracts turning a video source into a normalized
// mono 16 kHz PCM WAV file ready for speech recognition
type MediaExtractor interface {
	// ExtractFromURL downloads the video at videoURL and extracts its audio
	// into outputDir, returning the path of the WAV file
	ExtractFromURL(ctx context.Context, videoURL string, outputDir string) (string, error)

	// ExtractFromFile transcodes a local video/audio file into outputDir,
	// returning the path of the WAV file
	ExtractFromFile(ctx context.Context, inputPath string, outputDir string) (string, error)
}
