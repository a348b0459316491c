package examgen

import (
	"math/rand"
	"testing"
)

// TestShuffleChoices_PreservesValuesAndAnswer asserts the remap invariant
// under every one of the 24 possible permutations of four letters, driving
// seeds until all have been observed.
func TestShuffleChoices_PreservesValuesAndAnswer(t *testing.T) {
	permutations := make(map[string]bool)

	for seed := int64(0); len(permutations) < 24; seed++ {
		if seed == 10000 {
			t.Fatalf("only %d of 24 permutations observed after 10000 seeds", len(permutations))
		}

		q := Question{
			QuestionText:  "What is $2 + 2$?",
			Choices:       map[string]string{"A": "$4$", "B": "$5$", "C": "$6$", "D": "$7$"},
			CorrectAnswer: "A",
		}

		ShuffleChoices(&q, rand.New(rand.NewSource(seed)))

		if len(q.Choices) != 4 {
			t.Fatalf("seed %d: expected 4 choices, got %d", seed, len(q.Choices))
		}
		if q.Choices[q.CorrectAnswer] != "$4$" {
			t.Fatalf("seed %d: correct answer %q holds %q, want $4$", seed, q.CorrectAnswer, q.Choices[q.CorrectAnswer])
		}

		seen := make(map[string]bool)
		for _, v := range q.Choices {
			seen[v] = true
		}
		for _, v := range []string{"$4$", "$5$", "$6$", "$7$"} {
			if !seen[v] {
				t.Fatalf("seed %d: value %q lost in shuffle", seed, v)
			}
		}

		// Record which permutation this seed produced, keyed by where
		// each original value landed.
		permutations[q.Choices["A"]+q.Choices["B"]+q.Choices["C"]+q.Choices["D"]] = true
	}
}

func TestShuffleChoices_MovesAnswerLetter(t *testing.T) {
	moved := false
	for seed := int64(0); seed < 20 && !moved; seed++ {
		q := Question{
			Choices:       map[string]string{"A": "1", "B": "2", "C": "3", "D": "4"},
			CorrectAnswer: "B",
		}
		ShuffleChoices(&q, rand.New(rand.NewSource(seed)))
		if q.CorrectAnswer != "B" {
			moved = true
		}
	}
	if !moved {
		t.Fatal("shuffle never moved the answer letter across 20 seeds")
	}
}
