package solver

import (
	"reflect"
	"testing"
)

var noCommonality = CommonalityFunc(func(string) float64 { return 0 })

func TestBuildLetterFrequencies(t *testing.T) {
	candidates := []string{"apple", "anger", "zebra"}
	freq := BuildLetterFrequencies(candidates)

	// Distinct-letter membership: apple's doubled 'p' counts once.
	wants := map[byte]int{
		'a': 3, 'p': 1, 'l': 1, 'e': 3,
		'n': 1, 'g': 1, 'r': 2, 'z': 1, 'b': 1,
	}
	for letter, want := range wants {
		if got := freq[letter-'a']; got != want {
			t.Errorf("freq[%c] = %d, want %d", letter, got, want)
		}
	}
	for i, n := range freq {
		if n > len(candidates) {
			t.Errorf("freq[%c] = %d exceeds candidate count %d", 'a'+i, n, len(candidates))
		}
	}
}

func TestBuildLetterFrequenciesEmpty(t *testing.T) {
	freq := BuildLetterFrequencies(nil)
	if freq != (LetterFrequencies{}) {
		t.Errorf("empty candidate set should yield the zero table, got %v", freq)
	}
}

func TestScore(t *testing.T) {
	candidates := []string{"apple", "anger", "zebra"}
	freq := BuildLetterFrequencies(candidates)

	// apple: distinct letters a(3) + p(1) + l(1) + e(3) = 8.
	if got := Score("apple", freq, noCommonality); got != 8 {
		t.Errorf("Score(apple) = %v, want 8", got)
	}
	// Commonality weighs in at 2x.
	oracle := CommonalityFunc(func(w string) float64 {
		if w == "apple" {
			return 1.5
		}
		return 0
	})
	if got := Score("apple", freq, oracle); got != 11 {
		t.Errorf("Score(apple) with commonality = %v, want 11", got)
	}
	// zebra: z(1) + e(3) + b(1) + r(2) + a(3) = 10.
	if got := Score("zebra", freq, noCommonality); got != 10 {
		t.Errorf("Score(zebra) = %v, want 10", got)
	}
}

func TestTopKBounds(t *testing.T) {
	candidates := []string{"apple", "anger", "zebra"}
	freq := BuildLetterFrequencies(candidates)

	tests := []struct {
		k    int
		want int
	}{
		{-1, 0},
		{0, 0},
		{1, 1},
		{3, 3},
		{10, 3}, // k beyond candidate count returns all
	}
	for _, tt := range tests {
		if got := TopK(candidates, freq, noCommonality, tt.k); len(got) != tt.want {
			t.Errorf("len(TopK(k=%d)) = %d, want %d", tt.k, len(got), tt.want)
		}
	}
	if got := TopK(nil, LetterFrequencies{}, noCommonality, 4); len(got) != 0 {
		t.Errorf("TopK over empty candidates = %v, want empty", got)
	}
}

func TestTopKOrdering(t *testing.T) {
	candidates := []string{"apple", "anger", "zebra"}
	freq := BuildLetterFrequencies(candidates)
	// anger: a3+n1+g1+e3+r2 = 10, zebra = 10, apple = 8.
	got := TopK(candidates, freq, noCommonality, 3)
	for i := 1; i < len(got); i++ {
		if got[i].Score > got[i-1].Score {
			t.Fatalf("TopK not descending: %v", got)
		}
	}
	// Equal scores keep candidate order: anger before zebra.
	if got[0].Word != "anger" || got[1].Word != "zebra" || got[2].Word != "apple" {
		t.Errorf("TopK order = %v, want [anger zebra apple]", got)
	}
}

func TestTopKDeterministic(t *testing.T) {
	candidates := []string{"slate", "crane", "trace", "react"}
	freq := BuildLetterFrequencies(candidates)
	first := TopK(candidates, freq, noCommonality, 4)
	second := TopK(candidates, freq, noCommonality, 4)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("TopK not deterministic: %v vs %v", first, second)
	}
}
