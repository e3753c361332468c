// internal/solver/scorer.go
//
// Heuristic ranking of candidates for the next guess.
// score(word) = Σ over distinct letters of candidate-membership counts
//             + 2 × commonality(word)
//
// Distinct letters only: a repeated letter wastes a slot's information
// potential, so it is counted once. The 2× commonality weight is a tuned
// constant balancing informativeness against likelihood of being the actual
// solution.

package solver

import "sort"

// commonalityWeight is the fixed multiplier on the commonality term.
const commonalityWeight = 2

// BuildLetterFrequencies counts, for each letter, how many words in
// candidates contain it at least once. Must be rebuilt from scratch after
// every narrowing; an empty candidate set yields the zero table.
func BuildLetterFrequencies(candidates []string) LetterFrequencies {
	var freq LetterFrequencies
	for _, w := range candidates {
		var seen [26]bool
		for i := 0; i < len(w); i++ {
			j := int(w[i] - 'a')
			if j >= 0 && j < 26 && !seen[j] {
				seen[j] = true
				freq[j]++
			}
		}
	}
	return freq
}

// Score computes the heuristic rank of word against the current frequency
// table and commonality lookup.
func Score(word string, freq LetterFrequencies, c Commonality) float64 {
	var seen [26]bool
	score := 0.0
	for i := 0; i < len(word); i++ {
		j := int(word[i] - 'a')
		if j < 0 || j >= 26 || seen[j] {
			continue
		}
		seen[j] = true
		score += float64(freq[j])
	}
	if c != nil {
		score += commonalityWeight * c.Score(word)
	}
	return score
}

// TopK returns the k highest-scoring candidates in descending score order.
// Ties keep the original candidate order (stable sort), so identical inputs
// always produce identical output. k <= 0 or an empty candidate set returns
// an empty sequence; k beyond the candidate count returns all candidates.
func TopK(candidates []string, freq LetterFrequencies, c Commonality, k int) []ScoredWord {
	if k <= 0 || len(candidates) == 0 {
		return []ScoredWord{}
	}
	scored := make([]ScoredWord, len(candidates))
	for i, w := range candidates {
		scored[i] = ScoredWord{Word: w, Score: Score(w, freq, c)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if k < len(scored) {
		scored = scored[:k]
	}
	return scored
}
