package messages

import (
	"testing"

	"golang.org/x/text/language"
)

func TestMain(m *testing.M) {
	if err := Init(); err != nil {
		panic(err)
	}
	m.Run()
}

func TestSupported(t *testing.T) {
	tags := Supported()
	if len(tags) != 2 || tags[0] != language.English || tags[1] != language.Swedish {
		t.Fatalf("supported = %v, want [en sv]", tags)
	}
}

func TestMatch(t *testing.T) {
	cases := []struct {
		in   string
		want language.Tag
	}{
		{"en", language.English},
		{"sv", language.Swedish},
		{"sv-SE", language.Swedish},
		{"sv_SE.UTF-8", language.Swedish},
		{"en-GB", language.English},
		{"ja", language.English},
		{"", language.English},
		{"!!", language.English},
	}
	for _, tc := range cases {
		if got := Match(tc.in); got != tc.want {
			t.Fatalf("Match(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestPrinterLocalizes(t *testing.T) {
	en := Printer(language.English)
	if got := en.Sprintf(PromptRange, 50); got != "Guess a number between 1 and 50" {
		t.Fatalf("en range prompt = %q", got)
	}
	sv := Printer(language.Swedish)
	if got := sv.Sprintf(FeedbackCorrect); got != "Grattis! Du gissade rätt!" {
		t.Fatalf("sv correct = %q", got)
	}
	if got := sv.Sprintf(InvalidDifficulty); got != "Fel svårighetsgrad." {
		t.Fatalf("sv invalid difficulty = %q", got)
	}
}

func TestInitIsIdempotent(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("second init: %v", err)
	}
}
