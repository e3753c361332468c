package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed words.txt zipf.txt
var FS embed.FS

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
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// WordsList returns the embedded default dictionary, one word per line.
func WordsList() ([]string, error) {
	return readLines("words.txt")
}

// ZipfLines returns the embedded default word-commonality table,
// one "word zipf" pair per line.
func ZipfLines() ([]string, error) {
	return readLines("zipf.txt")
}
