package watcher

import "context"

// Watcher monitors the inbox directory for new media files.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler is invoked for each accepted media file.
type EventHandler func(ctx context.Context, filePath string) error
