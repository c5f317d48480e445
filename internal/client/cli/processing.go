package cli

import (
	"context"
	"fmt"
)

// processingScreen runs the transcription. This is the only long-latency
// step of the wizard; the loop is single-threaded, so no other request can
// be started while it is outstanding. Failure surfaces the error and
// returns to the upload screen.
func (a *App) processingScreen(ctx context.Context) error {
	model, err := a.transcriberClient()
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		a.clearWork()
		return a.transition(StateUpload)
	}

	fmt.Fprintf(a.out, "Transcribing %s... this can take a minute.\n", a.audioName)

	content, err := model.Transcribe(ctx, a.audioData, a.audioMIME, &a.meta)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		a.clearWork()
		return a.transition(StateUpload)
	}

	a.result = content
	a.loadedTab = nil
	return a.transition(StateResult)
}
