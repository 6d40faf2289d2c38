package media

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"
)

func TestFFmpegArgs(t *testing.T) {
	args := ffmpegArgs("/tmp/in.mp4", "/tmp/out.wav")

	joined := strings.Join(args, " ")
	for _, want := range []string{"-vn", "-acodec pcm_s16le", "-ar 16000", "-ac 1", "-y"} {
		if !strings.Contains(joined, want) {
			t.Errorf("ffmpeg args missing %q: %v", want, args)
		}
	}
	if args[len(args)-1] != "/tmp/out.wav" {
		t.Errorf("Expected output path last, got %v", args)
	}
}

func TestYtdlpArgs(t *testing.T) {
	args := ytdlpArgs("https://example.com/v", "/tmp/audio.%(ext)s")

	joined := strings.Join(args, " ")
	for _, want := range []string{"-f bestaudio/best", "--audio-format wav", "-ar 16000 -ac 1", "--no-playlist"} {
		if !strings.Contains(joined, want) {
			t.Errorf("yt-dlp args missing %q: %v", want, args)
		}
	}
	if args[len(args)-1] != "https://example.com/v" {
		t.Errorf("Expected URL last, got %v", args)
	}
}

func TestExtractFromURL_EmptyURL(t *testing.T) {
	extractor := NewExtractor(ExtractorConfig{}, zaptest.NewLogger(t))

	if _, err := extractor.ExtractFromURL(context.Background(), "   ", t.TempDir()); err == nil {
		t.Error("Expected error for empty URL")
	}
}

func TestVerifyOutput(t *testing.T) {
	dir := t.TempDir()

	if _, err := verifyOutput(filepath.Join(dir, "missing.wav")); err == nil {
		t.Error("Expected error for missing file")
	}

	empty := filepath.Join(dir, "empty.wav")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := verifyOutput(empty); err == nil {
		t.Error("Expected error for empty file")
	}

	ok := filepath.Join(dir, "ok.wav")
	if err := os.WriteFile(ok, []byte("RIFF...."), 0o644); err != nil {
		t.Fatal(err)
	}
	path, err := verifyOutput(ok)
	if err != nil {
		t.Fatalf("verifyOutput failed: %v", err)
	}
	if path != ok {
		t.Errorf("Expected path %q, got %q", ok, path)
	}
}

func TestGetFileInfo(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clip.MP4")
	if err := os.WriteFile(path, []byte("0123456789"), 0o644); err != nil {
		t.Fatal(err)
	}

	info, err := GetFileInfo(path)
	if err != nil {
		t.Fatalf("GetFileInfo failed: %v", err)
	}
	if info.Name != "clip.MP4" {
		t.Errorf("Expected name clip.MP4, got %s", info.Name)
	}
	if info.Extension != ".mp4" {
		t.Errorf("Expected extension .mp4, got %s", info.Extension)
	}
	if info.Size != 10 {
		t.Errorf("Expected size 10, got %d", info.Size)
	}

	if _, err := GetFileInfo(filepath.Join(dir, "nope")); err == nil {
		t.Error("Expected error for missing file")
	}
}
