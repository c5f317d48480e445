package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/tabsense/internal/flagx"
)

// parseEnv overlays values from the environment. Only variables that are set
// override earlier layers.
func parseEnv(config *Config) {
	if v := os.Getenv("TABSENSE_ADDR"); v != "" {
		config.EndpointAddr = v
	}
	if v := os.Getenv("TABSENSE_DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("TABSENSE_SECRET_KEY"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("TABSENSE_ADMIN_PASSWORD"); v != "" {
		config.AdminPassword = v
	}
}

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":5000")
//	-d string   PostgreSQL DSN
//	-s string   token HMAC secret key
//	-t int      session token validity, minutes
//	-w string   admin seed password
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-w"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.AdminPassword, "w", config.AdminPassword, "admin seed password")

	tokenValidity := fs.Int("t", int(config.TokenValidityDuration.Minutes()), "token_validity_duration (in minutes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenValidityDuration = time.Duration(*tokenValidity) * time.Minute
}
