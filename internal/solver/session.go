// internal/solver/session.go
//
// Session state for a single solver attempt.
// A Session owns one candidate set and its turn history. Sessions are
// created per puzzle attempt and discarded afterwards; nothing is shared
// across sessions, so independent sessions may run concurrently without
// locking.

package solver

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Turn records one applied (guess, feedback) pair.
type Turn struct {
	Guess    string   `json:"guess"`
	Feedback Feedback `json:"feedback"`
}

// Session holds the state of one solver attempt.
type Session struct {
	ID         string    // Unique session identifier.
	Dictionary []string  // Full universe of legal guesses, never mutated.
	Candidates []string  // Words still consistent with all feedback so far.
	Turns      []Turn    // Applied guesses, in order.
	CreatedAt  time.Time // Session start, UTC.
}

// NewSession starts a session over the given dictionary with the candidate
// set equal to the full dictionary.
func NewSession(dictionary []string) *Session {
	return &Session{
		ID:         uuid.NewString(),
		Dictionary: dictionary,
		Candidates: Reset(dictionary),
		Turns:      []Turn{},
		CreatedAt:  time.Now().UTC(),
	}
}

// Apply narrows the candidate set with one (guess, feedback) observation
// and records the turn. Returns the remaining candidate count. On
// ErrInvalidInput the session is left untouched.
func (s *Session) Apply(guess string, fb Feedback) (int, error) {
	guess = strings.ToLower(strings.TrimSpace(guess))
	next, err := ApplyFeedback(s.Candidates, guess, fb)
	if err != nil {
		return len(s.Candidates), err
	}
	s.Candidates = next
	s.Turns = append(s.Turns, Turn{Guess: guess, Feedback: fb})
	return len(s.Candidates), nil
}

// Suggest ranks the current candidates and returns the top k. The letter
// frequency table is rebuilt against the current candidate set on every
// call.
func (s *Session) Suggest(c Commonality, k int) []ScoredWord {
	freq := BuildLetterFrequencies(s.Candidates)
	return TopK(s.Candidates, freq, c, k)
}

// Exhausted reports whether no candidates remain. This is an informational
// state, not an error: it happens on contradictory feedback or when the
// solution is outside the loaded dictionary.
func (s *Session) Exhausted() bool { return len(s.Candidates) == 0 }
