package exporter

import (
	"fmt"
	"os"
)

// SaveText writes the transcript to path verbatim, byte-for-byte.
func SaveText(transcript, path string) error {
	if err := os.WriteFile(path, []byte(transcript), 0644); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}
	return nil
}
