package gemini

import (
	"fmt"
	"strings"
)

// systemInstruction fixes the output contract: ASCII tab only, the notation
// legend, the header block, section organization and six-string alignment.
const systemInstruction = `You are TabSense AI, a world-class guitar transcriber.
Your task is to convert guitar audio into accurate ASCII tablature.

RULES:
1. Output ONLY the ASCII tablature.
2. Use standard notation: h (hammer-on), p (pull-off), b (bend), / (slide), ~ (vibrato), PM (palm mute).
3. Include a header with Song Title, Artist, Tuning, and BPM.
4. Organize the tab into logical sections (Intro, Verse, Chorus, etc.).
5. Do NOT include markdown code block backticks (` + "```" + `) in your final string response.
6. Ensure the horizontal lines are properly aligned for 6 strings (e, B, G, D, A, E).
7. Think through the fingering logic to ensure the tab is physically playable on a standard guitar.`

// SongMetadata is optional context supplied by the user for a transcription.
type SongMetadata struct {
	Title  string
	Artist string
	Tuning string
	BPM    string
	Note   string
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// buildUserPrompt assembles the request text for one transcription.
//
// When a title or artist is known the prompt is research-directed: the model
// is told the metadata and instructed to cross-reference external tab sources,
// preferring the audio's evidence on any conflict. Without metadata the model
// performs a blind transcription, inferring key, tuning and tempo from the
// signal alone.
func buildUserPrompt(meta *SongMetadata) string {
	userContext := "An audio file is provided as the primary source for transcription."
	researchDirectives := ""

	if meta != nil && (meta.Title != "" || meta.Artist != "") {
		searchTerm := strings.TrimSpace(meta.Title + " " + meta.Artist)

		userContext += fmt.Sprintf(`
SONG METADATA:
Title: %s
Artist: %s
Target Tuning: %s
Target BPM: %s
User Note: %s
`,
			orDefault(meta.Title, "Unknown"),
			orDefault(meta.Artist, "Unknown"),
			orDefault(meta.Tuning, "Standard E"),
			orDefault(meta.BPM, "Unknown"),
			orDefault(meta.Note, "None"))

		researchDirectives = fmt.Sprintf(`
Use 'googleSearch' to look up the official guitar tuning and existing tablature for %q.
Verify against the audio. If the audio implies a different key or tuning than common online tabs, prioritize the audio analysis.
Compare what is played in the audio with standard transcriptions to ensure 100%% accuracy.
`, searchTerm)
	} else {
		userContext += `
No metadata provided. Perform a blind transcription. Detect key, tuning, and tempo purely from the audio.
`
	}

	return userContext + "\n\n" + researchDirectives + "\n\nAnalyze the audio carefully and produce the professional ASCII guitar tab."
}
