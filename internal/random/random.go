// internal/random/random.go
//
// Secret number generation for a game session.
// Responsibilities:
//   - Seed a fresh PRNG from crypto/rand on every invocation.
//   - Draw a secret uniformly from [1, max] through an injectable Source.
//
// Notes:
//   - Tests inject a fixed Source to pin the secret.

package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrInvalidMax is returned when a secret cannot be drawn for the given bound.
var ErrInvalidMax = errors.New("random: max must be positive")

// Source yields pseudo-random integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// NewSource returns a PCG generator seeded from crypto/rand,
// so two runs never share a sequence.
func NewSource() (*rand.Rand, error) {
	hi, err := NewSeed()
	if err != nil {
		return nil, err
	}
	lo, err := NewSeed()
	if err != nil {
		return nil, err
	}
	return rand.New(rand.NewPCG(hi, lo)), nil
}

// Secret draws an integer uniformly from [1, maxNumber] inclusive.
func Secret(src Source, maxNumber int) (int, error) {
	if src == nil {
		return 0, fmt.Errorf("%w: nil source", ErrInvalidMax)
	}
	if maxNumber <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidMax, maxNumber)
	}
	return src.IntN(maxNumber) + 1, nil
}
