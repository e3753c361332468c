// internal/words/words.go
//
// Dictionary source for the solver.
//
// Responsibilities:
//   - Load the universe of legal guess words from an environment-provided
//     file or fall back to the embedded default list.
//   - Maintain a lookup set for quick membership checks.
//   - Supply Dictionary, IsWord and Count helpers.
//
// Initialization behavior (Init):
//   1. If WORDS_FILE is set, load one word per line from that path.
//   2. Otherwise, fall back to the embedded default list in assets.
//
// Environment variables:
//   WORDS_FILE=/path/to/words.txt
//
// Constraints:
//   • Words must be 5 alphabetic letters (a-z).
//   • Lists are normalized to lowercase and de-duplicated, keeping order.
//   • Initialization is run once (sync.Once).

package words

import (
	"bufio"
	"errors"
	"os"
	"strings"
	"sync"

	"github.com/samber/lo"

	"github.com/lexio/wordle-assist/assets"
	"github.com/lexio/wordle-assist/internal/solver"
)

var (
	initOnce   sync.Once
	dictionary []string            // full universe of legal guesses
	wordSet    map[string]struct{} // dictionary membership
	initialErr error
)

// Init loads the dictionary exactly once.
// Returns an error if the resulting list is empty.
func Init() error {
	initOnce.Do(func() {
		var list []string

		if path := os.Getenv("WORDS_FILE"); path != "" {
			var err error
			list, err = readWordFile(path)
			if err != nil {
				initialErr = err
				return
			}
		} else {
			lines, err := assets.WordsList()
			if err != nil {
				initialErr = err
				return
			}
			list = normalize(lines)
		}

		dictionary = list
		wordSet = toSet(list)

		if len(dictionary) == 0 {
			initialErr = errors.New("words: dictionary is empty")
		}
	})
	return initialErr
}

// readWordFile loads one word per line from a file,
// lowercases, trims, and keeps only valid 5-letter alphabetic words.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return normalize(lines), nil
}

// normalize lowercases and trims lines, keeps only valid 5-letter words,
// and drops duplicates while preserving first-seen order.
func normalize(lines []string) []string {
	out := lo.FilterMap(lines, func(line string, _ int) (string, bool) {
		w := strings.TrimSpace(strings.ToLower(line))
		return w, len(w) == solver.WordLen && isAlpha(w)
	})
	return lo.Uniq(out)
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Dictionary returns a copy of the loaded word universe. The copy keeps the
// loaded list immutable for the process lifetime; each solver session takes
// its own snapshot anyway.
func Dictionary() []string {
	out := make([]string, len(dictionary))
	copy(out, dictionary)
	return out
}

// IsWord reports whether w is in the loaded dictionary.
func IsWord(w string) bool {
	_, ok := wordSet[strings.ToLower(w)]
	return ok
}

// Count returns the number of loaded words.
func Count() int { return len(dictionary) }
