package exam

import (
	"fmt"
	"time"
)

// Status is the lifecycle phase of a session.
type Status int

const (
	StatusNotStarted Status = iota // No question set loaded
	StatusInProgress               // Serving questions
	StatusFinished                 // Ran past the last question or ended early
)

func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not-started"
	case StatusInProgress:
		return "in-progress"
	case StatusFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Presentation is one display of the current question. Options are shuffled
// afresh for every presentation; the remapped answer stays private so the caller
// can only learn it through SubmitAnswer.
type Presentation struct {
	// Index is the zero-based position of the question in the session.
	Index int

	// Question is the underlying record in its authored option order.
	Question Question

	// Options are the shuffled choices as shown to the learner.
	Options []string

	answer int
}

// Text returns the numbered prompt, e.g. "3. Choose the correct article".
func (p *Presentation) Text() string {
	return fmt.Sprintf("%d. %s", p.Index+1, p.Question.Text)
}

// AnswerResult reports the outcome of a submission.
type AnswerResult struct {
	Correct bool

	// Selected is the index the learner chose, as given.
	Selected int

	// CorrectIndex is where the correct option sits in the presented order.
	CorrectIndex int
}

// AnswerRecord is kept for every answered question, for the summary review.
type AnswerRecord struct {
	Index         int
	Question      string
	SelectedText  string
	CorrectAnswer string
	Correct       bool
}

// Session is the exam state machine: NotStarted → InProgress → Finished.
// It is not safe for concurrent use; callers serialise access.
type Session struct {
	shuffler *Shuffler
	now      func() time.Time

	status    Status
	questions []Question
	position  int
	score     int

	current  *Presentation
	answered *AnswerResult
	answers  []AnswerRecord

	startedAt  time.Time
	finishedAt time.Time
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithShuffler sets the permutation source. Tests use a seeded shuffler.
func WithShuffler(r *Shuffler) SessionOption {
	return func(s *Session) { s.shuffler = r }
}

// WithClock overrides the time source used for start and finish timestamps.
func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) { s.now = now }
}

// NewSession creates a session in StatusNotStarted.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		shuffler: NewShuffler(),
		now:      time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Start begins a new run over questions. Any previous run is discarded first.
// The question order is shuffled once here and stays fixed for the run. An empty
// set returns ErrEmptySet, and a set holding an invalid record returns an error
// wrapping ErrLoadFailed; both leave the session in StatusNotStarted.
func (s *Session) Start(questions []Question) error {
	s.Reset()
	if len(questions) == 0 {
		return ErrEmptySet
	}
	if err := ValidateSet(questions); err != nil {
		return fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	qs := make([]Question, len(questions))
	copy(qs, questions)
	Shuffle(s.shuffler, qs)

	s.questions = qs
	s.status = StatusInProgress
	s.startedAt = s.now()
	return nil
}

// PresentCurrent returns the question at the current position with freshly
// shuffled options. Calling it again before an answer is submitted reshuffles;
// once the question is answered the answered presentation is returned unchanged.
// If the position has run past the end, the session finishes and
// ErrSessionFinished is returned.
func (s *Session) PresentCurrent() (*Presentation, error) {
	if s.status != StatusInProgress {
		return nil, transitionError("present", s.status)
	}
	if s.position >= len(s.questions) {
		s.finish()
		return nil, ErrSessionFinished
	}
	if s.current != nil && s.answered != nil {
		return s.current, nil
	}

	q := s.questions[s.position]
	shuffled := s.shuffler.Options(q.Options, q.Answer)
	s.current = &Presentation{
		Index:    s.position,
		Question: q,
		Options:  shuffled.Options,
		answer:   shuffled.Answer,
	}
	return s.current, nil
}

// SubmitAnswer checks selected against the presented permutation. Out-of-range
// indexes, negative ones included, are simply incorrect. A second submission for the same question returns
// the first result and does not touch the score.
func (s *Session) SubmitAnswer(selected int) (AnswerResult, error) {
	if s.status != StatusInProgress {
		return AnswerResult{}, transitionError("submit", s.status)
	}
	if s.current == nil {
		return AnswerResult{}, ErrNoQuestion
	}
	if s.answered != nil {
		return *s.answered, nil
	}

	p := s.current
	res := AnswerResult{
		Correct:      selected >= 0 && selected == p.answer,
		Selected:     selected,
		CorrectIndex: p.answer,
	}
	if res.Correct {
		s.score++
	}
	s.answered = &res

	var chosen string
	if selected >= 0 && selected < len(p.Options) {
		chosen = p.Options[selected]
	}
	s.answers = append(s.answers, AnswerRecord{
		Index:         p.Index,
		Question:      p.Question.Text,
		SelectedText:  chosen,
		CorrectAnswer: p.Question.CorrectOption(),
		Correct:       res.Correct,
	})
	return res, nil
}

// Advance moves to the next question whether or not the current one was
// answered; a skipped question scores nothing. Moving past the last question
// finishes the session.
func (s *Session) Advance() error {
	if s.status != StatusInProgress {
		return transitionError("advance", s.status)
	}
	s.position++
	s.current = nil
	s.answered = nil
	if s.position >= len(s.questions) {
		s.finish()
	}
	return nil
}

// Finish ends the run early. The score keeps only the answers given so far.
func (s *Session) Finish() error {
	if s.status != StatusInProgress {
		return transitionError("finish", s.status)
	}
	s.finish()
	return nil
}

func (s *Session) finish() {
	s.status = StatusFinished
	s.current = nil
	s.answered = nil
	s.finishedAt = s.now()
}

// Reset returns to StatusNotStarted and drops the question set, position, score
// and answer log. Always valid.
func (s *Session) Reset() {
	s.status = StatusNotStarted
	s.questions = nil
	s.position = 0
	s.score = 0
	s.current = nil
	s.answered = nil
	s.answers = nil
	s.startedAt = time.Time{}
	s.finishedAt = time.Time{}
}

// Status returns the current lifecycle phase.
func (s *Session) Status() Status { return s.status }

// Position returns the zero-based index of the current question.
func (s *Session) Position() int { return s.position }

// Score returns the number of correct answers so far.
func (s *Session) Score() int { return s.score }

// Total returns the number of questions in the run.
func (s *Session) Total() int { return len(s.questions) }

// Current returns the active presentation, or nil between questions.
func (s *Session) Current() *Presentation { return s.current }

// LastResult returns the result for the current question if it was answered.
func (s *Session) LastResult() (AnswerResult, bool) {
	if s.answered == nil {
		return AnswerResult{}, false
	}
	return *s.answered, true
}

// Answers returns a copy of the answer log.
func (s *Session) Answers() []AnswerRecord {
	out := make([]AnswerRecord, len(s.answers))
	copy(out, s.answers)
	return out
}

// Elapsed returns time since Start, or the run duration once finished.
func (s *Session) Elapsed() time.Duration {
	switch s.status {
	case StatusInProgress:
		return s.now().Sub(s.startedAt)
	case StatusFinished:
		return s.finishedAt.Sub(s.startedAt)
	default:
		return 0
	}
}
