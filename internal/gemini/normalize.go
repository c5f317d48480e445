package gemini

import (
	"regexp"
	"strings"
)

// Models occasionally wrap the tab in a markdown code fence despite being
// told not to. Fences are stripped until the string stops changing, so a
// fence exposed by a previous pass does not survive; the tab text itself is
// returned verbatim and never reformatted or validated.
var (
	leadingFence  = regexp.MustCompile("^```(?:txt|guitar|text)?\n?")
	trailingFence = regexp.MustCompile("\n?```$")
)

// normalizeOutput cleans a raw model response: surrounding whitespace is
// trimmed and accidental markdown fences are stripped. The function is
// idempotent: feeding its output back through yields the same string.
func normalizeOutput(text string) string {
	clean := strings.TrimSpace(text)
	for {
		next := leadingFence.ReplaceAllString(clean, "")
		next = trailingFence.ReplaceAllString(next, "")
		next = strings.TrimSpace(next)
		if next == clean {
			return clean
		}
		clean = next
	}
}
