package exam

import (
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShuffle_PreservesElements(t *testing.T) {
	r := NewSeededShuffler(1)
	for n := 0; n <= 12; n++ {
		items := make([]int, n)
		for i := range items {
			items[i] = i * 3
		}
		orig := slices.Clone(items)

		Shuffle(r, items)

		sorted := slices.Clone(items)
		slices.Sort(sorted)
		assert.Equal(t, orig, sorted, "n=%d", n)
	}
}

func TestShuffle_RoughlyUniform(t *testing.T) {
	r := NewSeededShuffler(42)
	const trials = 6000
	counts := map[string]int{}

	for range trials {
		items := []string{"a", "b", "c"}
		Shuffle(r, items)
		counts[strings.Join(items, "")]++
	}

	require.Len(t, counts, 6, "all 3! orderings should appear")
	for perm, c := range counts {
		// Expected 1000 each; sigma is about 29.
		if c < 850 || c > 1150 {
			t.Errorf("permutation %s seen %d times, want about %d", perm, c, trials/6)
		}
	}
}

func TestShuffle_SameSeedSameOrder(t *testing.T) {
	a := []int{1, 2, 3, 4, 5, 6, 7, 8}
	b := slices.Clone(a)

	Shuffle(NewSeededShuffler(7), a)
	Shuffle(NewSeededShuffler(7), b)

	assert.Equal(t, a, b)
}

func TestPerm(t *testing.T) {
	p := NewSeededShuffler(3).Perm(5)
	sorted := slices.Clone(p)
	slices.Sort(sorted)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, sorted)
}

func TestOptions_RemapsAnswer(t *testing.T) {
	r := NewSeededShuffler(9)
	options := []string{"der", "die", "das", "den"}

	for answer := range options {
		for range 50 {
			res := r.Options(options, answer)

			require.Len(t, res.Options, len(options))
			assert.ElementsMatch(t, options, res.Options)
			require.GreaterOrEqual(t, res.Answer, 0)
			assert.Equal(t, options[answer], res.Options[res.Answer])
		}
	}
}

func TestOptions_DoesNotModifyInput(t *testing.T) {
	options := []string{"one", "two", "three", "four", "five"}
	orig := slices.Clone(options)

	for range 20 {
		NewShuffler().Options(options, 2)
	}

	assert.Equal(t, orig, options)
}

func TestOptions_OutOfRangeAnswer(t *testing.T) {
	r := NewSeededShuffler(5)
	tests := []int{-1, 3, 100}

	for _, answer := range tests {
		t.Run(strconv.Itoa(answer), func(t *testing.T) {
			res := r.Options([]string{"x", "y", "z"}, answer)
			assert.Equal(t, -1, res.Answer)
			assert.ElementsMatch(t, []string{"x", "y", "z"}, res.Options)
		})
	}
}

func TestOptions_DuplicateOptionText(t *testing.T) {
	r := NewSeededShuffler(11)
	options := []string{"same", "same", "other"}

	for range 30 {
		res := r.Options(options, 2)
		assert.Equal(t, "other", res.Options[res.Answer])
	}
}
