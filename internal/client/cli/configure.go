package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/tabsense/internal/gemini"
)

// configureScreen collects optional song metadata for the picked audio.
// Known title and artist let the model research the song; empty fields
// leave it working from the audio alone.
func (a *App) configureScreen(ctx context.Context) error {
	fmt.Fprintf(a.out, "Configuring %s (leave fields empty if unknown)\n", a.audioName)

	meta := gemini.SongMetadata{}

	var err error
	if meta.Title, err = getSimpleText(a.reader, "Song title", a.out); err != nil {
		return err
	}
	if meta.Artist, err = getSimpleText(a.reader, "Artist", a.out); err != nil {
		return err
	}
	if meta.Tuning, err = getSimpleText(a.reader, "Tuning (e.g. Standard E, Drop D)", a.out); err != nil {
		return err
	}
	if meta.BPM, err = getSimpleText(a.reader, "Tempo (BPM)", a.out); err != nil {
		return err
	}
	if meta.Note, err = getSimpleText(a.reader, "Note for the transcriber", a.out); err != nil {
		return err
	}

	cmd, err := getSimpleText(a.reader, "Commands: start, back, logout", a.out)
	if err != nil {
		return err
	}

	switch cmd {
	case "s", "start", "":
		a.meta = meta
		return a.transition(StateProcessing)
	case "b", "back":
		a.clearWork()
		return a.transition(StateUpload)
	case "logout":
		return a.logout(ctx)
	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
		return nil
	}
}
