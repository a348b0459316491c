package examgen

import "math/rand"

// ShuffleChoices applies a uniform random permutation to the question's
// choice letters and remaps CorrectAnswer to follow its value. Without
// this the generator places the correct value under the same letter far
// more often than chance.
func ShuffleChoices(q *Question, rng *rand.Rand) {
	perm := append([]string(nil), choiceLetters...)
	rng.Shuffle(len(perm), func(i, j int) {
		perm[i], perm[j] = perm[j], perm[i]
	})

	original := q.CorrectAnswer
	shuffled := make(map[string]string, len(q.Choices))
	for i, oldLetter := range choiceLetters {
		shuffled[perm[i]] = q.Choices[oldLetter]
		if oldLetter == original {
			q.CorrectAnswer = perm[i]
		}
	}
	q.Choices = shuffled
}
