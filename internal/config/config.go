// Package config loads runtime settings for the numguess command.
//
// Values come from the process environment (optionally seeded from a .env
// file) and may be overridden by command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds ambient settings. Gameplay has no knobs.
type Config struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`
	Lang      string `env:"NUMGUESS_LANG" envDefault:"en"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads .env (if present), then the environment, then args.
// Flag errors and usage go to errOut.
func Load(args []string, errOut io.Writer) (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("numguess", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&cfg.Lang, "lang", cfg.Lang, "message language (en|sv)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "trace|debug|info|warn|error|disabled")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "console|json")
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	switch cfg.LogFormat {
	case "console", "json":
	default:
		return Config{}, errors.New("log format must be console or json")
	}
	return cfg, nil
}
