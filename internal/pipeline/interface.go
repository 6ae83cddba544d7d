package pipeline

import "context"

// Pipeline processes one media file end to end: transcribe, analyze, export.
type Pipeline interface {
	Process(ctx context.Context, mediaPath string) error
}
