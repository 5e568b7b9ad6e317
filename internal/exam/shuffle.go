package exam

import "math/rand/v2"

// Shuffler produces uniform random permutations. The zero value is not usable;
// construct with NewShuffler or NewSeededShuffler.
type Shuffler struct {
	intN func(n int) int
}

// NewShuffler returns a Shuffler backed by the auto-seeded global source.
func NewShuffler() *Shuffler {
	return &Shuffler{intN: rand.IntN}
}

// NewSeededShuffler returns a deterministic Shuffler. Two shufflers with the same
// seed produce the same sequence of permutations.
func NewSeededShuffler(seed uint64) *Shuffler {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return &Shuffler{intN: r.IntN}
}

// Shuffle permutes items in place (Fisher–Yates): for i from the last index down to 1,
// swap items[i] with items[j] where j is uniform in [0, i].
func Shuffle[T any](r *Shuffler, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := r.intN(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// Perm returns a random permutation of [0, n).
func (r *Shuffler) Perm(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	Shuffle(r, idx)
	return idx
}

// ShuffleResult is a permuted option list with the correct answer remapped.
type ShuffleResult struct {
	Options []string
	Answer  int
}

// Options permutes options and remaps answer to the position the original
// correct option moved to. The input slice is not modified. If answer is out of
// range the result carries Answer = -1, which no selection can match.
func (r *Shuffler) Options(options []string, answer int) ShuffleResult {
	perm := r.Perm(len(options))
	out := ShuffleResult{
		Options: make([]string, len(options)),
		Answer:  -1,
	}
	for pos, orig := range perm {
		out.Options[pos] = options[orig]
		if orig == answer {
			out.Answer = pos
		}
	}
	return out
}
