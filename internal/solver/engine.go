// internal/solver/engine.go
//
// Candidate filtering engine.
// Responsibilities:
//   - Reset the candidate set to the full dictionary.
//   - Narrow the candidate set with the per-position feedback predicate.
//   - Re-derive feedback for a (guess, candidate) pair under the same rules.
//
// Notes:
//   - An absent mark means the letter appears nowhere in the word, not just
//     "not at this position". That matches the behavior this solver was
//     tuned against and can over-filter when a guess repeats a letter with
//     mixed marks across its occurrences. Kept as a documented deviation
//     from the official repeated-letter accounting.
//   - All operations are pure: the candidate set is threaded explicitly
//     through calls, so independent sessions need no locking.

package solver

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Reset returns a fresh candidate set containing the full dictionary.
func Reset(dictionary []string) []string {
	out := make([]string, len(dictionary))
	copy(out, dictionary)
	return out
}

// ApplyFeedback returns the subset of candidates consistent with guessing
// guess and observing fb. The result is always a subset of candidates; an
// empty result is a legitimate value (contradictory feedback or a solution
// outside the dictionary), not an error.
//
// Returns ErrInvalidInput if the guess is not WordLen lowercase letters or
// the feedback fails validation. No partial filtering happens on error.
func ApplyFeedback(candidates []string, guess string, fb Feedback) ([]string, error) {
	guess = strings.ToLower(strings.TrimSpace(guess))
	if len(guess) != WordLen {
		return nil, fmt.Errorf("%w: guess %q must be %d letters", ErrInvalidInput, guess, WordLen)
	}
	if !isAlpha(guess) {
		return nil, fmt.Errorf("%w: guess %q must be letters a-z only", ErrInvalidInput, guess)
	}
	if err := fb.Validate(); err != nil {
		return nil, err
	}
	return lo.Filter(candidates, func(w string, _ int) bool {
		return consistent(w, guess, fb)
	}), nil
}

// consistent evaluates the survival predicate for one candidate: every
// position must hold simultaneously (conjunctive, order-independent).
func consistent(w, guess string, fb Feedback) bool {
	for i, m := range fb {
		g := guess[i]
		switch m {
		case MarkCorrect:
			if w[i] != g {
				return false
			}
		case MarkAbsent:
			if strings.IndexByte(w, g) >= 0 {
				return false
			}
		case MarkPresent:
			if w[i] == g || strings.IndexByte(w, g) < 0 {
				return false
			}
		}
	}
	return true
}

// DeriveFeedback computes the feedback that guessing guess against answer
// word yields under the same simplified rules the filter uses. For any word
// surviving ApplyFeedback(c, guess, fb), DeriveFeedback(guess, word)
// round-trips to fb.
func DeriveFeedback(guess, word string) Feedback {
	fb := make(Feedback, WordLen)
	for i := 0; i < WordLen; i++ {
		switch {
		case word[i] == guess[i]:
			fb[i] = MarkCorrect
		case strings.IndexByte(word, guess[i]) >= 0:
			fb[i] = MarkPresent
		default:
			fb[i] = MarkAbsent
		}
	}
	return fb
}
