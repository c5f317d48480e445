package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/tabsense/internal/common"
)

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestLoadAudioFile_KnownExtension(t *testing.T) {
	path := writeTempFile(t, "song.mp3", []byte{0xFF, 0xFB, 0x90, 0x00})

	data, mimeType, err := loadAudioFile(path)
	require.NoError(t, err)
	assert.Equal(t, "audio/mpeg", mimeType)
	assert.Len(t, data, 4)
}

func TestLoadAudioFile_ExtensionIsCaseInsensitive(t *testing.T) {
	path := writeTempFile(t, "song.WAV", []byte("RIFFxxxxWAVE"))

	_, mimeType, err := loadAudioFile(path)
	require.NoError(t, err)
	assert.Equal(t, "audio/wav", mimeType)
}

func TestLoadAudioFile_RejectsNonAudio(t *testing.T) {
	path := writeTempFile(t, "notes.txt", []byte("lyrics, not audio"))

	_, _, err := loadAudioFile(path)
	require.ErrorIs(t, err, common.ErrorNotAudio)
	assert.Contains(t, err.Error(), "notes.txt")
}

func TestLoadAudioFile_MissingFile(t *testing.T) {
	_, _, err := loadAudioFile(filepath.Join(t.TempDir(), "nope.mp3"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrorNotAudio)
}
