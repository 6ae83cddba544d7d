package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Transcribe uploads the file at path to the Whisper API and returns the
// transcript text. The source is first staged into a fresh temp directory
// under a normalized name; the directory is removed on every exit path.
// Single attempt, no retry.
func (t *implTranscriber) Transcribe(ctx context.Context, path string) (string, error) {
	tempDir, err := os.MkdirTemp("", "scribedesk-*")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	staged, err := t.stage(ctx, path, tempDir)
	if err != nil {
		return "", err
	}

	t.logger.Info(ctx, "Uploading for transcription: %s", staged)

	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    t.cfg.OpenAI.WhisperModel,
		FilePath: staged,
	})
	if err != nil {
		return "", fmt.Errorf("whisper transcription: %w", err)
	}

	t.logger.Info(ctx, "Transcription completed: %d characters", len(resp.Text))
	return resp.Text, nil
}

// stage places the upload candidate into tempDir. Video inputs go through
// ffmpeg audio extraction when enabled; anything else (or a failed
// extraction) is copied verbatim under a normalized name.
func (t *implTranscriber) stage(ctx context.Context, path, tempDir string) (string, error) {
	if t.cfg.FFmpeg.Enabled && isVideo(path) {
		audioPath, err := t.extractAudio(ctx, path, tempDir)
		if err == nil {
			return audioPath, nil
		}
		t.logger.Warn(ctx, "ffmpeg extraction failed, uploading original: %v", err)
	}

	staged := filepath.Join(tempDir, "audio"+strings.ToLower(filepath.Ext(path)))
	if err := copyFile(path, staged); err != nil {
		return "", fmt.Errorf("stage media file: %w", err)
	}
	return staged, nil
}

// extractAudio converts the video's audio track to a mono 16kHz mp3, which
// keeps uploads small and is all Whisper needs.
func (t *implTranscriber) extractAudio(ctx context.Context, path, tempDir string) (string, error) {
	audioPath := filepath.Join(tempDir, "audio.mp3")

	args := []string{
		"-i", path,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-y",
		audioPath,
	}

	if _, err := t.executor.Execute(ctx, t.cfg.FFmpeg.Binary, args...); err != nil {
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	t.logger.Debug(ctx, "Audio extracted: %s", audioPath)
	return audioPath, nil
}

func isVideo(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp4", ".mpeg":
		return true
	}
	return false
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return fmt.Errorf("write destination: %w", err)
	}
	return nil
}
