// Package cli implements the interactive transcription wizard. The wizard is
// a single-threaded loop over an explicit state machine; each state renders
// one screen and decides the next state through the transition table.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/tabsense/internal/client/api"
	"github.com/dmitrijs2005/tabsense/internal/client/config"
	"github.com/dmitrijs2005/tabsense/internal/client/store"
	"github.com/dmitrijs2005/tabsense/internal/gemini"
)

// backendAPI is the surface of the REST client the wizard needs.
// *api.Client satisfies it; tests can provide a stub.
type backendAPI interface {
	Register(ctx context.Context, username, password string) (*api.AuthResult, error)
	Login(ctx context.Context, username, password string) (*api.AuthResult, error)
	Me(ctx context.Context) (*api.User, error)
	ListTabs(ctx context.Context) ([]api.Tab, error)
	SaveTab(ctx context.Context, req *api.SaveTabRequest) (*api.Tab, error)
	DeleteTab(ctx context.Context, id string) error
	SetToken(token string)
}

// transcriber turns audio into tablature. *gemini.Client satisfies it.
type transcriber interface {
	Transcribe(ctx context.Context, audio []byte, mimeType string, meta *gemini.SongMetadata) (string, error)
}

// sessionStore persists the login between runs.
type sessionStore interface {
	Save(ctx context.Context, sess *store.Session) error
	Load(ctx context.Context) (*store.Session, error)
	Clear(ctx context.Context) error
	Close() error
}

// App drives the wizard. It owns the working data that flows between
// screens: the picked audio, the metadata form, and the current result.
type App struct {
	config  *config.Config
	api     backendAPI
	session sessionStore
	model   transcriber
	reader  *bufio.Reader
	out     io.Writer

	state State
	user  *api.User

	audioData []byte
	audioMIME string
	audioName string
	meta      gemini.SongMetadata
	result    string
	loadedTab *api.Tab
	quit      bool
}

// NewApp wires the wizard against the real backend, session store and model
// client described by cfg.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	sess, err := store.Open(ctx, cfg.SessionDBPath)
	if err != nil {
		return nil, fmt.Errorf("error initializing session store: %w", err)
	}

	return &App{
		config:  cfg,
		api:     api.NewClient(cfg.ServerEndpointAddr),
		session: sess,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		state:   StateLoggedOut,
	}, nil
}

// transcriberClient lazily constructs the model client. The key is checked
// here so a missing key fails loudly at the moment of use, never silently.
func (a *App) transcriberClient() (transcriber, error) {
	if a.model != nil {
		return a.model, nil
	}
	if a.config.GeminiAPIKey == "" {
		return nil, errors.New("Gemini API key is not configured (set TABSENSE_GEMINI_API_KEY)")
	}
	a.model = gemini.NewClient(a.config.GeminiAPIKey, gemini.WithModel(a.config.GeminiModel))
	return a.model, nil
}

// Run executes the wizard loop until the user exits or input ends.
func (a *App) Run(ctx context.Context) error {
	defer a.session.Close()

	a.restoreSession(ctx)

	for !a.quit {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		var err error
		switch a.state {
		case StateLoggedOut:
			err = a.loggedOutScreen(ctx)
		case StateUpload:
			err = a.uploadScreen(ctx)
		case StateConfiguring:
			err = a.configureScreen(ctx)
		case StateProcessing:
			err = a.processingScreen(ctx)
		case StateResult:
			err = a.resultScreen(ctx)
		case StateLibrary:
			err = a.libraryScreen(ctx)
		default:
			err = fmt.Errorf("unknown state %s", a.state)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
	return nil
}

// clearWork drops everything tied to the current song: the picked audio, the
// metadata form and the result.
func (a *App) clearWork() {
	a.audioData = nil
	a.audioMIME = ""
	a.audioName = ""
	a.meta = gemini.SongMetadata{}
	a.result = ""
	a.loadedTab = nil
}
