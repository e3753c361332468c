package solver

import (
	"errors"
	"testing"
)

func TestSessionLifecycle(t *testing.T) {
	dict := []string{"crane", "brine", "prune", "bride", "pride", "slate"}
	s := NewSession(dict)

	if s.ID == "" {
		t.Error("session has no ID")
	}
	if len(s.Candidates) != len(dict) {
		t.Fatalf("new session has %d candidates, want %d", len(s.Candidates), len(dict))
	}

	remaining, err := s.Apply("crane", mustFeedback(t, "-g-gg"))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if remaining != 2 { // brine, prune
		t.Errorf("remaining = %d, want 2", remaining)
	}
	if len(s.Turns) != 1 || s.Turns[0].Guess != "crane" {
		t.Errorf("turn not recorded: %+v", s.Turns)
	}
	if s.Exhausted() {
		t.Error("session reported exhausted with candidates remaining")
	}

	// Suggestions rank against the narrowed set.
	oracle := CommonalityFunc(func(w string) float64 {
		if w == "prune" {
			return 5
		}
		return 0
	})
	top := s.Suggest(oracle, 1)
	if len(top) != 1 || top[0].Word != "prune" {
		t.Errorf("Suggest = %v, want prune first", top)
	}

	// The dictionary itself never shrinks.
	if len(s.Dictionary) != len(dict) {
		t.Errorf("dictionary mutated: %d words, want %d", len(s.Dictionary), len(dict))
	}
}

func TestSessionApplyInvalidLeavesStateUntouched(t *testing.T) {
	s := NewSession([]string{"crane", "slate"})

	remaining, err := s.Apply("cr", mustFeedback(t, "-----"))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("error %v is not ErrInvalidInput", err)
	}
	if remaining != 2 || len(s.Candidates) != 2 {
		t.Errorf("candidates changed on invalid input: %v", s.Candidates)
	}
	if len(s.Turns) != 0 {
		t.Errorf("invalid guess recorded as a turn: %+v", s.Turns)
	}
}

func TestSessionExhausted(t *testing.T) {
	s := NewSession([]string{"cable", "table"})
	if _, err := s.Apply("fable", mustFeedback(t, "ggggg")); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !s.Exhausted() {
		t.Error("expected exhausted session")
	}
	if top := s.Suggest(noCommonality, 4); len(top) != 0 {
		t.Errorf("Suggest over exhausted session = %v, want empty", top)
	}
}
