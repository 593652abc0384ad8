package main

import (
	"errors"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/robalobadob/numguess/internal/config"
	"github.com/robalobadob/numguess/internal/console"
	"github.com/robalobadob/numguess/internal/game"
	"github.com/robalobadob/numguess/internal/messages"
	"github.com/robalobadob/numguess/internal/random"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run plays one session and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load(args, stderr)
	if err != nil {
		_, _ = io.WriteString(stderr, err.Error()+"\n")
		return 2
	}
	logger := newLogger(cfg, stderr)

	if err := messages.Init(); err != nil {
		logger.Error().Err(err).Msg("failed to load messages")
		return 1
	}
	src, err := random.NewSource()
	if err != nil {
		logger.Error().Err(err).Msg("failed to seed random source")
		return 1
	}

	c := console.New(stdin, stdout, console.Options{
		Printer: messages.Printer(messages.Match(cfg.Lang)),
		Source:  src,
		Logger:  &logger,
	})
	_, err = c.Play()
	switch {
	case err == nil, errors.Is(err, game.ErrInvalidDifficulty):
		return 0
	default:
		logger.Error().Err(err).Msg("game aborted")
		return 1
	}
}

func newLogger(cfg config.Config, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		lvl = zerolog.WarnLevel
	}
	if cfg.LogFormat == "console" {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
