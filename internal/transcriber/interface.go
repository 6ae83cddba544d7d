package transcriber

import "context"

// Transcriber converts an audio/video file into plain transcript text.
type Transcriber interface {
	Transcribe(ctx context.Context, path string) (string, error)
}
