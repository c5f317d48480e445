package cli

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/tabsense/internal/common"
)

// mimeByExt maps common audio file extensions to their MIME type. Extension
// wins over content sniffing because http.DetectContentType does not know
// every audio container.
var mimeByExt = map[string]string{
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".m4a":  "audio/mp4",
	".aac":  "audio/aac",
	".ogg":  "audio/ogg",
	".oga":  "audio/ogg",
	".flac": "audio/flac",
	".webm": "audio/webm",
	".aiff": "audio/aiff",
	".aif":  "audio/aiff",
}

// loadAudioFile reads the file at path and returns its contents together with
// the detected MIME type. Files that are not audio are rejected with
// common.ErrorNotAudio.
func loadAudioFile(path string) ([]byte, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	mimeType, ok := mimeByExt[strings.ToLower(filepath.Ext(path))]
	if !ok {
		mimeType = http.DetectContentType(data)
	}
	if !strings.HasPrefix(mimeType, "audio/") {
		return nil, "", fmt.Errorf("%w: %s (%s)", common.ErrorNotAudio, filepath.Base(path), mimeType)
	}

	return data, mimeType, nil
}
