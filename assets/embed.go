package assets

import (
	"bufio"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed messages/*.txt
var FS embed.FS

const messagesDir = "messages"

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// Languages lists the catalog names (file stems) under messages/, sorted.
func Languages() ([]string, error) {
	entries, err := fs.ReadDir(FS, messagesDir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".txt" {
			continue
		}
		out = append(out, strings.TrimSuffix(e.Name(), ".txt"))
	}
	sort.Strings(out)
	return out, nil
}

// Catalog returns the key/text pairs of messages/<lang>.txt.
func Catalog(lang string) (map[string]string, error) {
	name := path.Join(messagesDir, lang+".txt")
	lines, err := readLines(name)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(lines))
	for i, line := range lines {
		key, text, ok := strings.Cut(line, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%s: malformed entry %d: %q", name, i+1, line)
		}
		out[key] = strings.TrimSpace(text)
	}
	return out, nil
}
