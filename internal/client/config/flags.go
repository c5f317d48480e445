package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/tabsense/internal/flagx"
)

// parseEnv overlays values from the environment. Only variables that are set
// override earlier layers. GEMINI_API_KEY is accepted as a fallback for the
// key so the same variable works for both this client and other Gemini tools.
func parseEnv(cfg *Config) {
	if v := os.Getenv("TABSENSE_SERVER_ADDR"); v != "" {
		cfg.ServerEndpointAddr = v
	}
	if v := os.Getenv("TABSENSE_GEMINI_MODEL"); v != "" {
		cfg.GeminiModel = v
	}
	if v := os.Getenv("TABSENSE_GEMINI_API_KEY"); v != "" {
		cfg.GeminiAPIKey = v
	} else if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.GeminiAPIKey = v
	}
	if v := os.Getenv("TABSENSE_SESSION_DB"); v != "" {
		cfg.SessionDBPath = v
	}
}

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   address of the backend server (default from Config)
//	-m string   generative model id used for transcription
//	-k string   Gemini API key (prefer the environment variable)
//	-p string   path of the local session database
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-m", "-k", "-p"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address of the backend server")
	fs.StringVar(&cfg.GeminiModel, "m", cfg.GeminiModel, "generative model id")
	fs.StringVar(&cfg.GeminiAPIKey, "k", cfg.GeminiAPIKey, "Gemini API key")
	fs.StringVar(&cfg.SessionDBPath, "p", cfg.SessionDBPath, "path of the local session database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
