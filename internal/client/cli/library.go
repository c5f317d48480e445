package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/tabsense/internal/gemini"
)

// libraryScreen lists the user's saved tabs, newest first, and lets them
// open or delete one. An empty library is a normal view, not an error.
func (a *App) libraryScreen(ctx context.Context) error {
	tabs, err := a.api.ListTabs(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load library:", err.Error())
		return a.transition(StateUpload)
	}

	if len(tabs) == 0 {
		fmt.Fprintln(a.out, "Your library is empty. Transcribe a song to get started.")
	} else {
		for i, tab := range tabs {
			fmt.Fprintf(a.out, "%3d. %s - %s (%s, %s BPM) %s\n",
				i+1, tab.Artist, tab.Title, tab.Tuning, tab.BPM,
				tab.CreatedAt.Format("2006-01-02"))
		}
	}

	line, err := getSimpleText(a.reader,
		"[library] Commands: open <n>, delete <n>, new, logout, exit", a.out)
	if err != nil {
		return err
	}

	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}

	switch parts[0] {
	case "o", "open":
		idx, ok := pickIndex(parts, len(tabs))
		if !ok {
			fmt.Fprintln(a.out, "Usage: open <n>")
			return nil
		}
		tab := tabs[idx]
		a.loadedTab = &tab
		a.result = tab.Content
		a.meta = gemini.SongMetadata{
			Title:  tab.Title,
			Artist: tab.Artist,
			Tuning: tab.Tuning,
			BPM:    tab.BPM,
		}
		return a.transition(StateResult)

	case "d", "delete":
		idx, ok := pickIndex(parts, len(tabs))
		if !ok {
			fmt.Fprintln(a.out, "Usage: delete <n>")
			return nil
		}
		if err := a.api.DeleteTab(ctx, tabs[idx].ID); err != nil {
			fmt.Fprintln(a.out, "Could not delete tab:", err.Error())
			return nil
		}
		fmt.Fprintf(a.out, "Removed %q.\n", tabs[idx].Title)
		return nil

	case "n", "new":
		return a.transition(StateUpload)

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

// pickIndex parses the 1-based selection argument and bounds-checks it.
func pickIndex(parts []string, n int) (int, bool) {
	if len(parts) < 2 {
		return 0, false
	}
	i, err := strconv.Atoi(parts[1])
	if err != nil || i < 1 || i > n {
		return 0, false
	}
	return i - 1, true
}
