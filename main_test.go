package main

import (
	"bytes"
	"strconv"
	"strings"
	"testing"
)

func TestRunExitCodes(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("NUMGUESS_LANG", "en")

	cases := []struct {
		name  string
		args  []string
		input string
		code  int
		out   string
	}{
		{"invalid difficulty", nil, "impossible\n", 0, "Invalid difficulty."},
		{"malformed guess", nil, "easy\nabc\n", 1, `"abc" is not a whole number.`},
		{"no input", nil, "", 1, "Choose a difficulty"},
		{"bad flag", []string{"-nope"}, "", 2, ""},
		{"swedish", []string{"-lang", "sv"}, "nope\n", 0, "Fel svårighetsgrad."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tc.args, strings.NewReader(tc.input), &stdout, &stderr)
			if code != tc.code {
				t.Fatalf("exit code = %d, want %d (stderr: %s)", code, tc.code, stderr.String())
			}
			if !strings.Contains(stdout.String(), tc.out) {
				t.Fatalf("stdout %q missing %q", stdout.String(), tc.out)
			}
		})
	}
}

func TestRunSolvesEventually(t *testing.T) {
	t.Setenv("LOG_LEVEL", "disabled")
	t.Setenv("NUMGUESS_LANG", "en")

	// Walk every value in range; the secret must be among them.
	var in strings.Builder
	in.WriteString("easy\n")
	for i := 1; i <= 10; i++ {
		in.WriteString(strings.Repeat(" ", i%2) + strconv.Itoa(i) + "\n")
	}
	var stdout, stderr bytes.Buffer
	if code := run(nil, strings.NewReader(in.String()), &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d (stderr: %s)", code, stderr.String())
	}
	if !strings.HasSuffix(stdout.String(), "Congratulations! You guessed it!\n") {
		t.Fatalf("expected success message last, got:\n%s", stdout.String())
	}
	if strings.Contains(stdout.String(), "Too high") {
		t.Fatalf("ascending walk cannot overshoot:\n%s", stdout.String())
	}
}
