// internal/game/engine.go
//
// Core game engine for a single number-guessing session.
// Responsibilities:
//   - Create a session with a secret drawn once from the difficulty's range.
//   - Compare guesses against the secret and report too low / too high / correct.
//   - Track state transitions: awaiting_input → solved.
//
// Notes:
//   - The secret comes from the random package through an injectable Source.
//   - There is no attempt cap; a session only ends when it is solved.
package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/robalobadob/numguess/internal/random"
)

// ErrSessionSolved is returned when a guess is applied to a finished session.
var ErrSessionSolved = errors.New("session already solved")

// NewSession constructs a new session for d, drawing its secret from src.
func NewSession(d Difficulty, src random.Source) (*Session, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDifficulty, int(d))
	}
	secret, err := random.Secret(src, d.MaxNumber())
	if err != nil {
		return nil, fmt.Errorf("draw secret: %w", err)
	}
	return &Session{
		ID:         uuid.NewString(),
		Difficulty: d,
		secret:     secret,
	}, nil
}

// ApplyGuess evaluates n against the secret, recording it on the session.
//
// State transitions:
//   - n == secret → solved; further guesses fail with ErrSessionSolved.
//   - otherwise the session keeps awaiting input.
func (s *Session) ApplyGuess(n int) (Feedback, error) {
	if s.solved {
		return "", ErrSessionSolved
	}
	s.guesses = append(s.guesses, n)

	switch {
	case n < s.secret:
		return FeedbackTooLow, nil
	case n > s.secret:
		return FeedbackTooHigh, nil
	default:
		s.solved = true
		return FeedbackCorrect, nil
	}
}

// State reports where the session is in its lifecycle.
func (s *Session) State() State {
	if s.solved {
		return StateSolved
	}
	return StateAwaitingInput
}

// Attempts is the number of guesses applied so far.
func (s *Session) Attempts() int { return len(s.guesses) }

// Guesses returns a copy of the guesses applied so far.
func (s *Session) Guesses() []int {
	return append([]int(nil), s.guesses...)
}
