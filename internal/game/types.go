// internal/game/types.go
//
// Core type definitions for the number-guessing engine.
// Defines:
//   - Feedback: result of comparing one guess against the secret.
//   - State:    where a session sits in its lifecycle.
//   - Session:  state for one play-through.

package game

// Feedback represents the evaluation result for a single guess.
// Possible values:
//   - "too_low":  guess is below the secret.
//   - "too_high": guess is above the secret.
//   - "correct":  guess equals the secret.
type Feedback string

const (
	FeedbackTooLow  Feedback = "too_low"
	FeedbackTooHigh Feedback = "too_high"
	FeedbackCorrect Feedback = "correct"
)

// State is the coarse lifecycle position of a session.
// Evaluation happens inside ApplyGuess and is never observable.
type State string

const (
	StateAwaitingInput State = "awaiting_input"
	StateSolved        State = "solved"
)

// Session holds the state of a single game.
type Session struct {
	ID         string     // Unique session identifier (uuid).
	Difficulty Difficulty // Chosen difficulty; fixed for the session.
	secret     int        // Number to guess; never exposed.
	guesses    []int      // Guesses applied so far, in order.
	solved     bool       // True once a guess matched the secret.
}
