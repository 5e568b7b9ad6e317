package exam

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQuestions(n int) []Question {
	qs := make([]Question, n)
	for i := range qs {
		qs[i] = Question{
			Text:    "question " + string(rune('A'+i)),
			Options: []string{"w", "x", "y", "z"},
			Answer:  i % 4,
		}
	}
	return qs
}

func testSession() *Session {
	return NewSession(WithShuffler(NewSeededShuffler(1)))
}

// wrongIndex returns an option index that is not the correct one.
func wrongIndex(p *Presentation) int {
	if p.answer == 0 {
		return 1
	}
	return 0
}

func TestSession_NewIsNotStarted(t *testing.T) {
	s := testSession()
	assert.Equal(t, StatusNotStarted, s.Status())
	assert.Equal(t, 0, s.Total())
	assert.Equal(t, 0, s.Score())
	assert.Nil(t, s.Current())
}

func TestSession_StartEmpty(t *testing.T) {
	s := testSession()

	err := s.Start(nil)
	assert.ErrorIs(t, err, ErrEmptySet)
	assert.Equal(t, StatusNotStarted, s.Status())

	err = s.Start([]Question{})
	assert.ErrorIs(t, err, ErrEmptySet)
	assert.Equal(t, StatusNotStarted, s.Status())
}

func TestSession_StartShufflesCopy(t *testing.T) {
	qs := testQuestions(8)
	orig := make([]string, len(qs))
	for i, q := range qs {
		orig[i] = q.Text
	}

	s := testSession()
	require.NoError(t, s.Start(qs))

	assert.Equal(t, StatusInProgress, s.Status())
	assert.Equal(t, 8, s.Total())
	assert.Equal(t, 0, s.Position())
	assert.Equal(t, 0, s.Score())

	for i, q := range qs {
		assert.Equal(t, orig[i], q.Text, "caller slice must not be reordered")
	}

	var seen []string
	for range s.Total() {
		p, err := s.PresentCurrent()
		require.NoError(t, err)
		seen = append(seen, p.Question.Text)
		require.NoError(t, s.Advance())
	}
	assert.ElementsMatch(t, orig, seen)
	assert.Equal(t, StatusFinished, s.Status())
}

func TestSession_SubmitBeforeStart(t *testing.T) {
	s := testSession()

	_, err := s.SubmitAnswer(0)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, StatusNotStarted, s.Status())
}

func TestSession_SubmitBeforePresent(t *testing.T) {
	s := testSession()
	require.NoError(t, s.Start(testQuestions(2)))

	_, err := s.SubmitAnswer(0)
	assert.ErrorIs(t, err, ErrNoQuestion)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, 0, s.Score())
}

func TestSession_TwoQuestionScenario(t *testing.T) {
	s := testSession()
	require.NoError(t, s.Start(testQuestions(2)))

	p, err := s.PresentCurrent()
	require.NoError(t, err)
	assert.Equal(t, 0, p.Index)

	res, err := s.SubmitAnswer(p.answer)
	require.NoError(t, err)
	assert.True(t, res.Correct)
	assert.Equal(t, 1, s.Score())

	require.NoError(t, s.Advance())
	assert.Equal(t, 1, s.Position())

	p, err = s.PresentCurrent()
	require.NoError(t, err)
	res, err = s.SubmitAnswer(wrongIndex(p))
	require.NoError(t, err)
	assert.False(t, res.Correct)
	assert.Equal(t, p.answer, res.CorrectIndex)

	require.NoError(t, s.Advance())
	assert.Equal(t, StatusFinished, s.Status())
	assert.Equal(t, 1, s.Score())
	assert.Equal(t, 2, s.Total())
}

func TestSession_SubmitIsIdempotent(t *testing.T) {
	s := testSession()
	require.NoError(t, s.Start(testQuestions(3)))

	p, err := s.PresentCurrent()
	require.NoError(t, err)

	first, err := s.SubmitAnswer(p.answer)
	require.NoError(t, err)
	require.Equal(t, 1, s.Score())

	second, err := s.SubmitAnswer(wrongIndex(p))
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, s.Score())
	assert.Len(t, s.Answers(), 1)
}

func TestSession_OutOfRangeIsIncorrect(t *testing.T) {
	for _, sel := range []int{-1, 4, 99} {
		s := testSession()
		require.NoError(t, s.Start(testQuestions(1)))
		_, err := s.PresentCurrent()
		require.NoError(t, err)

		res, err := s.SubmitAnswer(sel)
		require.NoError(t, err, "selected=%d", sel)
		assert.False(t, res.Correct)
		assert.Equal(t, 0, s.Score())
		assert.Equal(t, "", s.Answers()[0].SelectedText)
	}
}

func TestSession_StartRejectsInvalidRecords(t *testing.T) {
	tests := []struct {
		name string
		q    Question
	}{
		{"answer past end", Question{Text: "q", Options: []string{"A", "B"}, Answer: 5}},
		{"negative answer", Question{Text: "q", Options: []string{"A", "B"}, Answer: -1}},
		{"no options", Question{Text: "q"}},
		{"one option", Question{Text: "q", Options: []string{"A"}}},
		{"no text", Question{Options: []string{"A", "B"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testSession()
			qs := append(testQuestions(2), tt.q)

			err := s.Start(qs)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrLoadFailed)
			assert.Contains(t, err.Error(), "question 3")
			assert.Equal(t, StatusNotStarted, s.Status())
			assert.Equal(t, 0, s.Total())

			_, err = s.SubmitAnswer(-1)
			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.Equal(t, 0, s.Score())
		})
	}
}

func TestSession_NegativeSelectionNeverMatches(t *testing.T) {
	s := testSession()
	require.NoError(t, s.Start(testQuestions(1)))
	_, err := s.PresentCurrent()
	require.NoError(t, err)

	// Even a presentation whose remapped answer is the no-match marker must not
	// credit a negative selection.
	s.current.answer = -1
	res, err := s.SubmitAnswer(-1)
	require.NoError(t, err)
	assert.False(t, res.Correct)
	assert.Equal(t, 0, s.Score())
}

func TestSession_PresentReshufflesUntilAnswered(t *testing.T) {
	s := testSession()
	q := Question{Text: "pick", Options: []string{"a", "b", "c", "d", "e", "f"}, Answer: 4}
	require.NoError(t, s.Start([]Question{q}))

	orders := map[string]bool{}
	for range 20 {
		p, err := s.PresentCurrent()
		require.NoError(t, err)
		assert.Equal(t, "e", p.Options[p.answer])
		orders[joinOptions(p.Options)] = true
	}
	assert.Greater(t, len(orders), 1, "options should be reshuffled on each presentation")

	p, err := s.PresentCurrent()
	require.NoError(t, err)
	_, err = s.SubmitAnswer(p.answer)
	require.NoError(t, err)

	again, err := s.PresentCurrent()
	require.NoError(t, err)
	assert.Same(t, p, again)
}

func joinOptions(opts []string) string {
	var out string
	for _, o := range opts {
		out += o + "|"
	}
	return out
}

func TestSession_AdvanceWithoutAnswer(t *testing.T) {
	s := testSession()
	require.NoError(t, s.Start(testQuestions(3)))

	_, err := s.PresentCurrent()
	require.NoError(t, err)
	require.NoError(t, s.Advance())

	assert.Equal(t, 1, s.Position())
	assert.Equal(t, 0, s.Score())
	assert.Empty(t, s.Answers())
	assert.Nil(t, s.Current())
}

func TestSession_EarlyFinish(t *testing.T) {
	s := testSession()
	require.NoError(t, s.Start(testQuestions(5)))

	require.NoError(t, s.Finish())

	assert.Equal(t, StatusFinished, s.Status())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 5, s.Total())
}

func TestSession_FinishedRejectsMutation(t *testing.T) {
	s := testSession()
	require.NoError(t, s.Start(testQuestions(2)))
	p, err := s.PresentCurrent()
	require.NoError(t, err)
	_, err = s.SubmitAnswer(p.answer)
	require.NoError(t, err)
	require.NoError(t, s.Finish())

	_, err = s.PresentCurrent()
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = s.SubmitAnswer(0)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.ErrorIs(t, s.Advance(), ErrInvalidTransition)
	assert.ErrorIs(t, s.Finish(), ErrInvalidTransition)

	assert.Equal(t, StatusFinished, s.Status())
	assert.Equal(t, 1, s.Score())
	assert.Equal(t, 0, s.Position())
}

func TestSession_NotStartedRejectsMutation(t *testing.T) {
	s := testSession()

	_, err := s.PresentCurrent()
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.ErrorIs(t, s.Advance(), ErrInvalidTransition)
	assert.ErrorIs(t, s.Finish(), ErrInvalidTransition)
	assert.Equal(t, StatusNotStarted, s.Status())
	assert.Equal(t, 0, s.Position())
}

func TestSession_PresentPastEndFinishes(t *testing.T) {
	s := testSession()
	require.NoError(t, s.Start(testQuestions(1)))

	// Force the position past the end without going through Advance.
	s.position = 1

	p, err := s.PresentCurrent()
	assert.Nil(t, p)
	assert.True(t, errors.Is(err, ErrSessionFinished))
	assert.Equal(t, StatusFinished, s.Status())
}

func TestSession_StartDiscardsPrevious(t *testing.T) {
	s := testSession()
	require.NoError(t, s.Start(testQuestions(4)))
	p, err := s.PresentCurrent()
	require.NoError(t, err)
	_, err = s.SubmitAnswer(p.answer)
	require.NoError(t, err)
	require.NoError(t, s.Advance())

	require.NoError(t, s.Start(testQuestions(2)))

	assert.Equal(t, StatusInProgress, s.Status())
	assert.Equal(t, 0, s.Position())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 2, s.Total())
	assert.Empty(t, s.Answers())
}

func TestSession_Reset(t *testing.T) {
	s := testSession()
	require.NoError(t, s.Start(testQuestions(3)))
	_, err := s.PresentCurrent()
	require.NoError(t, err)

	s.Reset()

	assert.Equal(t, StatusNotStarted, s.Status())
	assert.Equal(t, 0, s.Total())
	assert.Nil(t, s.Current())
}

func TestSession_Elapsed(t *testing.T) {
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	s := NewSession(WithShuffler(NewSeededShuffler(1)), WithClock(clock))

	assert.Equal(t, time.Duration(0), s.Elapsed())

	require.NoError(t, s.Start(testQuestions(2)))
	now = now.Add(90 * time.Second)
	assert.Equal(t, 90*time.Second, s.Elapsed())

	require.NoError(t, s.Finish())
	now = now.Add(time.Hour)
	assert.Equal(t, 90*time.Second, s.Elapsed())
}

func TestPresentationText(t *testing.T) {
	p := &Presentation{Index: 2, Question: Question{Text: "Choose the article"}}
	assert.Equal(t, "3. Choose the article", p.Text())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "not-started", StatusNotStarted.String())
	assert.Equal(t, "in-progress", StatusInProgress.String())
	assert.Equal(t, "finished", StatusFinished.String())
	assert.Equal(t, "unknown", Status(9).String())
}
