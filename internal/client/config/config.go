// Package config handles configuration for the CLI client component.
package config

import (
	"os"
	"path/filepath"
)

// Config holds runtime settings for the TabSense CLI.
//
// Fields:
//   - ServerEndpointAddr: base URL of the backend HTTP API.
//   - GeminiAPIKey: API key for the generative model. Transcription is
//     refused without it; there is no fallback value.
//   - GeminiModel: model id used for transcription requests.
//   - SessionDBPath: path of the local SQLite session store.
type Config struct {
	ServerEndpointAddr string
	GeminiAPIKey       string
	GeminiModel        string
	SessionDBPath      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://127.0.0.1:5000"
	c.GeminiModel = "gemini-3-pro-preview"

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	c.SessionDBPath = filepath.Join(home, ".tabsense", "session.db")
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
