// internal/console/console.go
//
// Terminal driver for one number-guessing session.
// Responsibilities:
//   - Prompt for a difficulty and resolve it.
//   - Print the guessing range, then read guesses line by line.
//   - Print too low / too high / success feedback until the secret is found.
//
// Notes:
//   - Reads block; there is no timeout and no attempt cap.
//   - A malformed guess aborts the session with *game.ParseError.
//   - An unknown difficulty is reported to the player and returned as
//     game.ErrInvalidDifficulty so the caller can end cleanly.

package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/robalobadob/numguess/internal/game"
	"github.com/robalobadob/numguess/internal/messages"
	"github.com/robalobadob/numguess/internal/random"
)

// Options wires the collaborators of a Console.
type Options struct {
	Printer *message.Printer // defaults to English
	Source  random.Source    // secret source; required
	Logger  *zerolog.Logger  // defaults to a no-op logger
}

// Console plays a single session over a line-oriented reader and writer.
type Console struct {
	in  *bufio.Reader
	out io.Writer
	p   *message.Printer
	src random.Source
	log zerolog.Logger
}

// New constructs a Console reading from in and writing to out.
func New(in io.Reader, out io.Writer, opts Options) *Console {
	c := &Console{
		in:  bufio.NewReader(in),
		out: out,
		p:   opts.Printer,
		src: opts.Source,
		log: zerolog.Nop(),
	}
	if c.p == nil {
		c.p = messages.Printer(language.English)
	}
	if opts.Logger != nil {
		c.log = *opts.Logger
	}
	return c
}

// Play runs the session to completion and returns it.
//
// Returns:
//   - the solved session and nil on success;
//   - an error wrapping game.ErrInvalidDifficulty if the label is unknown;
//   - the unsolved session and a *game.ParseError for a malformed guess;
//   - an error wrapping io.ErrUnexpectedEOF if input ends early.
func (c *Console) Play() (*game.Session, error) {
	c.say(messages.PromptDifficulty, labels())
	label, err := c.readLine()
	if err != nil {
		return nil, fmt.Errorf("read difficulty: %w", err)
	}

	d, err := game.ParseDifficulty(label)
	if err != nil {
		c.log.Warn().Str("label", label).Msg("invalid difficulty")
		c.say(messages.InvalidDifficulty)
		return nil, err
	}

	s, err := game.NewSession(d, c.src)
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	log := c.log.With().Str("session", s.ID).Logger()
	log.Info().Str("difficulty", d.String()).Int("max", d.MaxNumber()).Msg("session started")

	c.say(messages.PromptRange, d.MaxNumber())
	for s.State() != game.StateSolved {
		line, err := c.readLine()
		if err != nil {
			return s, fmt.Errorf("read guess: %w", err)
		}
		n, err := game.ParseGuess(line)
		if err != nil {
			log.Error().Err(err).Int("attempt", s.Attempts()+1).Msg("guess parse failed")
			c.say(messages.NotANumber, line)
			return s, err
		}
		fb, err := s.ApplyGuess(n)
		if err != nil {
			return s, err
		}
		log.Debug().Int("attempt", s.Attempts()).Str("feedback", string(fb)).Msg("guess evaluated")
		c.say(feedbackKey(fb))
	}

	log.Info().Int("attempts", s.Attempts()).Msg("session solved")
	return s, nil
}

// readLine returns the next line without its line ending.
// A final line without a trailing newline still counts.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		if line == "" {
			return "", io.ErrUnexpectedEOF
		}
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

func (c *Console) say(key string, args ...any) {
	_, _ = c.p.Fprintf(c.out, key, args...)
	_, _ = io.WriteString(c.out, "\n")
}

func feedbackKey(fb game.Feedback) string {
	switch fb {
	case game.FeedbackTooLow:
		return messages.FeedbackTooLow
	case game.FeedbackTooHigh:
		return messages.FeedbackTooHigh
	default:
		return messages.FeedbackCorrect
	}
}

func labels() string {
	ds := game.Difficulties()
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.String()
	}
	return strings.Join(out, ", ")
}
