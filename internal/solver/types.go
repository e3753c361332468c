// internal/solver/types.go
//
// Core type definitions for the solver engine.
// Defines:
//   - Mark: per-letter feedback for a guess (correct/present/absent).
//   - Feedback: the five positional marks returned by the puzzle.
//   - ScoredWord: a candidate paired with its heuristic score.
//   - LetterFrequencies: per-letter candidate membership counts.
//   - Commonality: injectable word-naturalness lookup.

package solver

import (
	"errors"
	"fmt"
	"strings"
)

// WordLen is the fixed word length the solver operates on.
const WordLen = 5

// ErrInvalidInput is the error kind for caller contract violations:
// wrong guess/feedback length, unrecognized marks, non-alphabetic
// characters. Wrapped errors carry the offending input.
var ErrInvalidInput = errors.New("invalid input")

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct": letter is in the correct position.
//   - "present": letter exists in the answer but in a different position.
//   - "absent":  letter does not exist in the answer at all.
type Mark string

const (
	MarkCorrect Mark = "correct"
	MarkPresent Mark = "present"
	MarkAbsent  Mark = "absent"
)

// Feedback is the per-position outcome of one guess, always WordLen marks.
// It is produced by the puzzle (or derived for tests), never by the filter.
type Feedback []Mark

// ParseFeedback decodes the puzzle's wire encoding: one character per
// position, '-' for absent, 'y' for present, 'g' for correct,
// case-insensitive.
func ParseFeedback(s string) (Feedback, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != WordLen {
		return nil, fmt.Errorf("%w: feedback %q must be %d marks", ErrInvalidInput, s, WordLen)
	}
	fb := make(Feedback, WordLen)
	for i := 0; i < WordLen; i++ {
		switch s[i] {
		case '-':
			fb[i] = MarkAbsent
		case 'y':
			fb[i] = MarkPresent
		case 'g':
			fb[i] = MarkCorrect
		default:
			return nil, fmt.Errorf("%w: feedback %q has unrecognized mark %q at position %d", ErrInvalidInput, s, s[i], i)
		}
	}
	return fb, nil
}

// String re-encodes the feedback in the '-'/'y'/'g' wire alphabet.
func (fb Feedback) String() string {
	var b strings.Builder
	for _, m := range fb {
		switch m {
		case MarkCorrect:
			b.WriteByte('g')
		case MarkPresent:
			b.WriteByte('y')
		default:
			b.WriteByte('-')
		}
	}
	return b.String()
}

// Validate checks length and mark values.
func (fb Feedback) Validate() error {
	if len(fb) != WordLen {
		return fmt.Errorf("%w: feedback has %d marks, want %d", ErrInvalidInput, len(fb), WordLen)
	}
	for i, m := range fb {
		switch m {
		case MarkCorrect, MarkPresent, MarkAbsent:
		default:
			return fmt.Errorf("%w: unrecognized mark %q at position %d", ErrInvalidInput, string(m), i)
		}
	}
	return nil
}

// ScoredWord pairs a candidate with its heuristic score for one turn.
// Recomputed every turn, never persisted.
type ScoredWord struct {
	Word  string  `json:"word"`
	Score float64 `json:"score"`
}

// LetterFrequencies counts, for each letter a-z, how many candidate words
// contain that letter at least once. A doubled letter in one word still
// contributes 1 to that letter's count.
type LetterFrequencies [26]int

// Commonality maps a word to a naturalness score (higher is more common,
// e.g. a zipf scale). Implementations must be pure lookups; the policy for
// unknown words (typically 0) is the implementation's contract.
type Commonality interface {
	Score(word string) float64
}

// CommonalityFunc adapts a plain function to the Commonality interface.
type CommonalityFunc func(word string) float64

// Score calls f(word).
func (f CommonalityFunc) Score(word string) float64 { return f(word) }

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
