package game

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError reports a guess line that is not a base-10 integer.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse guess %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseGuess parses one input line as a guess. Surrounding whitespace is ignored.
func ParseGuess(line string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, &ParseError{Input: line, Err: err}
	}
	return n, nil
}
