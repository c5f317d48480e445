package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/tabsense/internal/common"
)

// uploadScreen lets the user pick an audio file or jump to the library.
// A non-audio file is rejected with a notice and the screen stays put.
func (a *App) uploadScreen(ctx context.Context) error {
	line, err := getSimpleText(a.reader,
		"[upload] Commands: file <path>, library, logout, exit", a.out)
	if err != nil {
		return err
	}

	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}

	switch parts[0] {
	case "f", "file":
		if len(parts) < 2 {
			fmt.Fprintln(a.out, "Usage: file <path>")
			return nil
		}
		return a.pickAudio(strings.Join(parts[1:], " "))

	case "l", "library":
		return a.transition(StateLibrary)

	case "logout":
		return a.logout(ctx)

	case "exit", "quit":
		a.quit = true
		return nil

	default:
		fmt.Fprintln(a.out, "Unknown command:", parts[0])
		return nil
	}
}

func (a *App) pickAudio(path string) error {
	data, mimeType, err := loadAudioFile(path)
	if err != nil {
		if errors.Is(err, common.ErrorNotAudio) {
			fmt.Fprintln(a.out, "Please select an audio file:", err.Error())
		} else {
			fmt.Fprintln(a.out, err.Error())
		}
		return nil
	}

	a.audioData = data
	a.audioMIME = mimeType
	a.audioName = filepath.Base(path)
	return a.transition(StateConfiguring)
}
