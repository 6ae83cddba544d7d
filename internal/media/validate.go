package media

import (
	"mime"
	"path/filepath"
	"strings"
)

// SupportedExtensions are the media formats accepted for transcription.
var SupportedExtensions = []string{".mp3", ".wav", ".mp4", ".m4a", ".mpeg", ".mpga"}

// supportedMIMEPrefixes is the fallback for files whose extension is not in
// the allow-list but whose registered MIME type still marks them as media.
var supportedMIMEPrefixes = []string{
	"audio/mpeg", "audio/mp3", "audio/wav", "audio/x-wav",
	"audio/x-m4a", "audio/mp4", "video/mp4", "video/mpeg",
}

// Supported reports whether path looks like a transcribable audio/video
// file. The check is extension-based with a MIME-type fallback; file content
// is never inspected.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))

	for _, e := range SupportedExtensions {
		if ext == e {
			return true
		}
	}

	mimeType := mime.TypeByExtension(ext)
	if mimeType == "" {
		return false
	}
	for _, prefix := range supportedMIMEPrefixes {
		if strings.HasPrefix(mimeType, prefix) {
			return true
		}
	}

	return false
}

// ExtensionHint is a human-readable list of accepted formats for UI text.
func ExtensionHint() string {
	return strings.Join(SupportedExtensions, ", ")
}
