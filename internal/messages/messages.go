// internal/messages/messages.go
//
// Player-facing text for the terminal game.
//
// Responsibilities:
//   - Register the embedded catalogs (assets/messages/*.txt) with x/text/message.
//   - Resolve a requested language to the closest supported catalog.
//   - Hand out printers bound to that language.
//
// Constraints:
//   • English is the fallback for unknown or unparsable languages.
//   • Registration runs once (sync.Once).

package messages

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/robalobadob/numguess/assets"
)

// Catalog keys.
const (
	PromptDifficulty  = "prompt.difficulty"
	PromptRange       = "prompt.range"
	FeedbackTooLow    = "feedback.too_low"
	FeedbackTooHigh   = "feedback.too_high"
	FeedbackCorrect   = "feedback.correct"
	InvalidDifficulty = "error.invalid_difficulty"
	NotANumber        = "error.not_a_number"
)

var (
	initOnce  sync.Once
	supported []language.Tag // fallback first
	matcher   language.Matcher
	initErr   error
)

// Init registers every embedded catalog exactly once.
func Init() error {
	initOnce.Do(func() {
		langs, err := assets.Languages()
		if err != nil {
			initErr = fmt.Errorf("messages: list catalogs: %w", err)
			return
		}
		tags := []language.Tag{language.English}
		for _, lang := range langs {
			tag, err := language.Parse(lang)
			if err != nil {
				initErr = fmt.Errorf("messages: catalog %q: %w", lang, err)
				return
			}
			entries, err := assets.Catalog(lang)
			if err != nil {
				initErr = fmt.Errorf("messages: %w", err)
				return
			}
			for key, text := range entries {
				if err := message.SetString(tag, key, text); err != nil {
					initErr = fmt.Errorf("messages: set %s/%s: %w", lang, key, err)
					return
				}
			}
			if tag != language.English {
				tags = append(tags, tag)
			}
		}
		if len(langs) == 0 {
			initErr = errors.New("messages: no catalogs embedded")
			return
		}
		supported = tags
		matcher = language.NewMatcher(tags)
	})
	return initErr
}

// Supported returns the registered languages, English first.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// Match resolves lang (a BCP 47 tag, or a POSIX locale such as sv_SE.UTF-8)
// to the closest supported language, falling back to English.
func Match(lang string) language.Tag {
	if matcher == nil {
		return language.English
	}
	lang = strings.TrimSpace(lang)
	if i := strings.IndexByte(lang, '.'); i >= 0 {
		lang = lang[:i]
	}
	lang = strings.ReplaceAll(lang, "_", "-")

	tag, err := language.Parse(lang)
	if err != nil {
		return supported[0]
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return supported[0]
	}
	return supported[idx]
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}
