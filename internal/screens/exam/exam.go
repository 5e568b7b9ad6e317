package exam

import (
	"context"
	"errors"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	engine "github.com/abhisek/flashlingo/internal/exam"
	"github.com/abhisek/flashlingo/internal/llm"
	"github.com/abhisek/flashlingo/internal/router"
	"github.com/abhisek/flashlingo/internal/screen"
	"github.com/abhisek/flashlingo/internal/screens/summary"
	"github.com/abhisek/flashlingo/internal/tutor"
	"github.com/abhisek/flashlingo/internal/ui/components"
	"github.com/abhisek/flashlingo/internal/ui/layout"
)

type phase int

const (
	phaseLoading phase = iota
	phaseReady         // set staged or load failed, waiting for Start
	phaseQuestion
	phaseFeedback
)

// Options configures an ExamScreen.
type Options struct {
	// Tutor explains answers on "?". Nil hides the key.
	Tutor *tutor.Service

	Logger *slog.Logger

	// AutoStart begins the run as soon as the set is loaded.
	AutoStart bool

	// SessionOptions are passed to the underlying session; tests seed the
	// shuffler through them.
	SessionOptions []engine.SessionOption
}

// ExamScreen runs one exam over a question set.
type ExamScreen struct {
	id        engine.SetID
	ctrl      *engine.Controller
	opts      Options
	logger    *slog.Logger
	sessionID string

	ctx    context.Context
	cancel context.CancelFunc

	phase       phase
	start       components.Button
	choice      components.MultiChoice
	result      engine.AnswerResult
	present     *engine.Presentation
	quitConfirm bool

	explaining  bool
	explanation *tutor.Explanation
	explainErr  error
}

var _ screen.Screen = (*ExamScreen)(nil)
var _ screen.KeyHintProvider = (*ExamScreen)(nil)
var _ screen.StatusProvider = (*ExamScreen)(nil)
var _ screen.EscHandler = (*ExamScreen)(nil)

// New creates an ExamScreen for id, fetching through loader.
func New(loader engine.Loader, id engine.SetID, opts Options) *ExamScreen {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	sessionID := uuid.NewString()

	ctx, cancel := context.WithCancel(context.Background())
	ctx = llm.WithSessionID(ctx, sessionID)

	s := &ExamScreen{
		id:        id,
		ctrl:      engine.NewController(loader, opts.SessionOptions...),
		opts:      opts,
		logger:    logger.With(slog.String("session_id", sessionID), slog.String("set", id.String())),
		sessionID: sessionID,
		ctx:       ctx,
		cancel:    cancel,
	}
	s.start = components.NewButton("Start", "s", false, func() tea.Cmd { return s.begin() })
	return s
}

func (s *ExamScreen) Init() tea.Cmd {
	return s.load()
}

func (s *ExamScreen) Title() string {
	return "Exam"
}

// HeaderStatus shows the set and the running score.
func (s *ExamScreen) HeaderStatus() string {
	snap := s.ctrl.Snapshot()
	if snap.Status != engine.StatusInProgress {
		return s.id.String()
	}
	return s.id.String() + " · " + scoreText(snap.Score, snap.Total)
}

// HandlesEsc is always true: the screen cancels in-flight work before
// leaving and asks for confirmation while a run is in progress.
func (s *ExamScreen) HandlesEsc() bool { return true }

func (s *ExamScreen) running() bool {
	return s.ctrl.Session().Status() == engine.StatusInProgress
}

func (s *ExamScreen) KeyHints() []layout.KeyHint {
	if s.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave exam"},
			{Key: "N", Description: "Keep going"},
		}
	}
	switch s.phase {
	case phaseReady:
		if s.ctrl.LoadErr() != nil {
			return []layout.KeyHint{{Key: "R", Description: "Retry"}, {Key: "Esc", Description: "Back"}}
		}
		return []layout.KeyHint{{Key: "Enter", Description: "Start"}, {Key: "Esc", Description: "Back"}}
	case phaseQuestion:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "1-9", Description: "Answer"},
			{Key: "S", Description: "Skip"},
			{Key: "F", Description: "Finish"},
		}
	case phaseFeedback:
		hints := []layout.KeyHint{{Key: "Enter", Description: "Next"}}
		if s.canExplain() {
			hints = append(hints, layout.KeyHint{Key: "?", Description: "Explain"})
		}
		return append(hints, layout.KeyHint{Key: "F", Description: "Finish"})
	}
	return nil
}

func (s *ExamScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case setLoadedMsg:
		return s, s.handleLoaded(msg)

	case explanationMsg:
		s.handleExplanation(msg)
		return s, nil

	case components.ChoiceMsg:
		s.submit(msg.Index)
		return s, nil

	case tea.KeyPressMsg:
		return s, s.handleKey(msg)
	}
	return s, nil
}

// load fetches the set off the update goroutine; the result is staged into
// the controller when setLoadedMsg arrives.
func (s *ExamScreen) load() tea.Cmd {
	s.phase = phaseLoading
	loader, id, ctx := s.ctrl.Loader(), s.id, s.ctx
	return func() tea.Msg {
		qs, err := loader.Load(ctx, id)
		return setLoadedMsg{ID: id, Questions: qs, Err: err}
	}
}

func (s *ExamScreen) handleLoaded(msg setLoadedMsg) tea.Cmd {
	if msg.ID != s.id {
		return nil
	}
	s.phase = phaseReady
	if err := s.ctrl.Stage(msg.ID, msg.Questions, msg.Err); err != nil {
		s.start.Active = false
		if !errors.Is(err, context.Canceled) {
			s.logger.Warn("exam load failed", slog.Any("error", err))
		}
		return nil
	}
	s.start.Active = true
	s.logger.Info("exam staged", slog.Int("questions", len(msg.Questions)))
	if s.opts.AutoStart {
		return s.begin()
	}
	return nil
}

func (s *ExamScreen) begin() tea.Cmd {
	if err := s.ctrl.Begin(); err != nil {
		s.logger.Warn("exam begin failed", slog.Any("error", err))
		return nil
	}
	s.start.Active = false
	s.logger.Info("exam started", slog.Int("total", s.ctrl.Session().Total()))
	return s.presentCurrent()
}

// presentCurrent shows the question at the current position, or moves to the
// summary once the session has finished.
func (s *ExamScreen) presentCurrent() tea.Cmd {
	if s.ctrl.Session().Status() == engine.StatusFinished {
		return s.showSummary()
	}
	p, err := s.ctrl.Present()
	if errors.Is(err, engine.ErrSessionFinished) {
		return s.showSummary()
	}
	if err != nil {
		s.logger.Error("present failed", slog.Any("error", err))
		return nil
	}
	s.present = p
	s.choice = components.NewMultiChoice(p.Text(), p.Options)
	s.phase = phaseQuestion
	s.explanation, s.explainErr, s.explaining = nil, nil, false
	return nil
}

func (s *ExamScreen) submit(idx int) {
	if s.phase != phaseQuestion {
		return
	}
	res, err := s.ctrl.SubmitAnswer(idx)
	if err != nil {
		s.logger.Warn("submit rejected", slog.Any("error", err))
		return
	}
	s.result = res
	s.choice.Reveal(res.Selected, res.CorrectIndex)
	s.phase = phaseFeedback
	s.logger.Debug("answer",
		slog.Int("position", s.present.Index),
		slog.Bool("correct", res.Correct),
	)
}

func (s *ExamScreen) advance() tea.Cmd {
	if err := s.ctrl.Advance(); err != nil {
		s.logger.Warn("advance rejected", slog.Any("error", err))
		return nil
	}
	return s.presentCurrent()
}

func (s *ExamScreen) finish() tea.Cmd {
	if err := s.ctrl.Finish(); err != nil {
		s.logger.Warn("finish rejected", slog.Any("error", err))
		return nil
	}
	return s.showSummary()
}

func (s *ExamScreen) showSummary() tea.Cmd {
	sum := s.ctrl.Summary()
	s.logger.Info("exam finished",
		slog.Int("score", sum.Score),
		slog.Int("total", sum.Total),
		slog.Int("answered", sum.Answered),
		slog.Duration("duration", sum.Duration),
	)
	s.cancel()

	loader, id, opts := s.ctrl.Loader(), s.id, s.opts
	restart := func() screen.Screen {
		opts.AutoStart = true
		return New(loader, id, opts)
	}
	next := summary.New(sum, restart)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (s *ExamScreen) canExplain() bool {
	return s.opts.Tutor != nil && s.present != nil && s.opts.Tutor.Available(s.tutorInput())
}

func (s *ExamScreen) tutorInput() tutor.Input {
	return tutor.Input{
		Language:     s.id.Language,
		Question:     s.present.Question,
		Options:      s.present.Options,
		Selected:     s.result.Selected,
		CorrectIndex: s.result.CorrectIndex,
	}
}

func (s *ExamScreen) explain() tea.Cmd {
	if s.explaining || s.explanation != nil || !s.canExplain() {
		return nil
	}
	s.explaining = true
	s.explainErr = nil

	svc, in, idx, ctx := s.opts.Tutor, s.tutorInput(), s.present.Index, s.ctx
	return func() tea.Msg {
		exp, err := svc.Explain(ctx, in)
		return explanationMsg{Index: idx, Explanation: exp, Err: err}
	}
}

func (s *ExamScreen) handleExplanation(msg explanationMsg) {
	// Drop results for a question the learner has already moved past.
	if s.present == nil || msg.Index != s.present.Index || s.phase != phaseFeedback {
		return
	}
	s.explaining = false
	if msg.Err != nil {
		s.explainErr = msg.Err
		s.logger.Warn("explanation failed", slog.Any("error", msg.Err))
		return
	}
	s.explanation = msg.Explanation
}

func (s *ExamScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			s.quitConfirm = false
			s.cancel()
			s.logger.Info("exam abandoned", slog.Int("position", s.ctrl.Session().Position()))
			s.ctrl.Reset()
			return func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return nil
	}

	if key == "esc" {
		if s.running() {
			s.quitConfirm = true
			return nil
		}
		s.cancel()
		return func() tea.Msg { return router.PopScreenMsg{} }
	}

	switch s.phase {
	case phaseReady:
		if key == "r" && s.ctrl.LoadErr() != nil {
			return s.load()
		}
		var cmd tea.Cmd
		s.start, cmd = s.start.Update(msg)
		return cmd

	case phaseQuestion:
		switch key {
		case "s":
			return s.advance()
		case "f":
			return s.finish()
		}
		var cmd tea.Cmd
		s.choice, cmd = s.choice.Update(msg)
		return cmd

	case phaseFeedback:
		switch key {
		case "enter", "n", "space":
			return s.advance()
		case "?":
			return s.explain()
		case "f":
			return s.finish()
		}
	}
	return nil
}
