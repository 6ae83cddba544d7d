package analyzer

import "context"

// Analyzer turns a transcript into an instructional analysis via a hosted
// chat-completion API.
type Analyzer interface {
	Analyze(ctx context.Context, transcript string) (*Result, error)
}

// Result holds the raw model response plus two best-effort section slices.
// Extraction failure leaves the fields empty; nothing ties them to FullText.
type Result struct {
	FullText       string
	LearningPoints string
	QAPairs        string
}
