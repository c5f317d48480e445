package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/tabsense/internal/client/api"
)

// resultScreen shows the tablature. A fresh transcription can be saved to
// the library; a tab loaded from the library offers a way back instead,
// since it is already stored.
func (a *App) resultScreen(ctx context.Context) error {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, a.result)
	fmt.Fprintln(a.out)

	prompt := "[result] Commands: save, new, logout, exit"
	if a.loadedTab != nil {
		prompt = "[result] Commands: back, new, logout, exit"
	}

	cmd, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return err
	}

	switch cmd {
	case "s", "save":
		if a.loadedTab != nil {
			fmt.Fprintln(a.out, "This tab is already in your library.")
			return nil
		}
		return a.saveResult(ctx)

	case "b", "back":
		if a.loadedTab == nil {
			fmt.Fprintln(a.out, "Unknown command:", cmd)
			return nil
		}
		a.clearWork()
		return a.transition(StateLibrary)

	case "n", "new":
		a.clearWork()
		return a.transition(StateUpload)

	case "logout":
		return a.logout(ctx)

	case "exit", "quit":
		a.quit = true
		return nil

	case "":
		return nil

	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
		return nil
	}
}

func (a *App) saveResult(ctx context.Context) error {
	tab, err := a.api.SaveTab(ctx, &api.SaveTabRequest{
		Title:   a.meta.Title,
		Artist:  a.meta.Artist,
		Tuning:  a.meta.Tuning,
		BPM:     a.meta.BPM,
		Content: a.result,
	})
	if err != nil {
		fmt.Fprintln(a.out, "Could not save tab:", err.Error())
		return nil
	}

	fmt.Fprintf(a.out, "Saved %q to your library.\n", tab.Title)
	a.clearWork()
	return a.transition(StateLibrary)
}
