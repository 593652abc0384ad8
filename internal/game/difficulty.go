package game

import (
	"errors"
	"fmt"

	"golang.org/x/text/cases"
)

// ErrInvalidDifficulty is returned for labels outside the difficulty set.
var ErrInvalidDifficulty = errors.New("invalid difficulty")

// Difficulty bounds the range the secret is drawn from.
type Difficulty int

const (
	Easy Difficulty = iota + 1
	Medium
	Hard
)

// Difficulties returns every difficulty in display order.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

// MaxNumber is the inclusive upper bound of the secret, or 0 for an unknown difficulty.
func (d Difficulty) MaxNumber() int {
	switch d {
	case Easy:
		return 10
	case Medium:
		return 50
	case Hard:
		return 100
	default:
		return 0
	}
}

// Valid reports whether d is one of Easy, Medium or Hard.
func (d Difficulty) Valid() bool {
	return d.MaxNumber() > 0
}

// ParseDifficulty maps a label to its difficulty, ignoring case.
// Matching is exact after case folding: no trimming, no prefixes.
func ParseDifficulty(label string) (Difficulty, error) {
	folded := cases.Fold().String(label)
	for _, d := range Difficulties() {
		if folded == d.String() {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDifficulty, label)
}
