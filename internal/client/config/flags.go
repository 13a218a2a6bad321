package config

import (
	"flag"
	"os"

	"pilotdeck/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend gateway
//	-k string   public API key of the project
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-k"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.GatewayURL, "a", cfg.GatewayURL, "base URL of the backend gateway")
	fs.StringVar(&cfg.GatewayAPIKey, "k", cfg.GatewayAPIKey, "public API key")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
