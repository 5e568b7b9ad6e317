package exam

import (
	"context"
	"fmt"
)

// Loader fetches the questions of a set. Implementations return an empty slice
// and a non-nil error on fetch or parse failure.
type Loader interface {
	Load(ctx context.Context, id SetID) ([]Question, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(ctx context.Context, id SetID) ([]Question, error)

// Load calls f.
func (f LoaderFunc) Load(ctx context.Context, id SetID) ([]Question, error) {
	return f(ctx, id)
}

// Controller owns one Session and the loader that feeds it. A set is loaded
// first and then started; selecting a new set discards whatever run was in
// progress.
type Controller struct {
	loader  Loader
	session *Session

	setID   SetID
	staged  []Question
	loadErr error
}

// NewController creates a controller with a fresh session.
func NewController(loader Loader, opts ...SessionOption) *Controller {
	return &Controller{
		loader:  loader,
		session: NewSession(opts...),
	}
}

// Load resets the session and fetches id without starting a run. Loader errors
// and sets that are empty or hold an invalid record return an error wrapping
// ErrLoadFailed; the session stays in StatusNotStarted either way. Loads are
// never retried here.
func (c *Controller) Load(ctx context.Context, id SetID) error {
	questions, err := c.loader.Load(ctx, id)
	return c.Stage(id, questions, err)
}

// Stage records the outcome of a fetch made elsewhere, for callers that run
// the loader off the goroutine that owns the controller. It behaves exactly
// like the second half of Load.
func (c *Controller) Stage(id SetID, questions []Question, err error) error {
	c.Reset()
	c.setID = id

	if err == nil && len(questions) == 0 {
		err = ErrEmptySet
	}
	if err == nil {
		err = ValidateSet(questions)
	}
	if err != nil {
		c.loadErr = fmt.Errorf("%w: %s: %w", ErrLoadFailed, id, err)
		return c.loadErr
	}
	c.staged = questions
	return nil
}

// Loader returns the loader the controller fetches through.
func (c *Controller) Loader() Loader { return c.loader }

// Begin starts a run over the staged set. It fails with ErrInvalidTransition
// when nothing is staged.
func (c *Controller) Begin() error {
	if len(c.staged) == 0 {
		return fmt.Errorf("%w: begin with no set loaded", ErrInvalidTransition)
	}
	return c.session.Start(c.staged)
}

// Start loads id unless it is staged and not yet begun, then begins a run. A run
// in progress over the same set is discarded and the set fetched again.
func (c *Controller) Start(ctx context.Context, id SetID) error {
	if id != c.setID || len(c.staged) == 0 || c.session.Status() != StatusNotStarted {
		if err := c.Load(ctx, id); err != nil {
			return err
		}
	}
	return c.Begin()
}

// Present returns the current question with freshly shuffled options.
func (c *Controller) Present() (*Presentation, error) {
	return c.session.PresentCurrent()
}

// SubmitAnswer checks an answer against the presented permutation.
func (c *Controller) SubmitAnswer(selected int) (AnswerResult, error) {
	return c.session.SubmitAnswer(selected)
}

// Advance moves to the next question.
func (c *Controller) Advance() error {
	return c.session.Advance()
}

// Finish ends the run early.
func (c *Controller) Finish() error {
	return c.session.Finish()
}

// Reset drops the session, the staged set and any load error.
func (c *Controller) Reset() {
	c.session.Reset()
	c.setID = SetID{}
	c.staged = nil
	c.loadErr = nil
}

// SetID returns the set selected by the last Load or Start.
func (c *Controller) SetID() SetID { return c.setID }

// LoadErr returns the error of the last failed load, if any.
func (c *Controller) LoadErr() error { return c.loadErr }

// Session exposes the underlying session for read access.
func (c *Controller) Session() *Session { return c.session }

// Summary builds the end-of-run summary for the current session.
func (c *Controller) Summary() *Summary {
	return BuildSummary(c.setID, c.session)
}

// Snapshot returns the observable state.
func (c *Controller) Snapshot() Snapshot {
	snap := snapshotOf(c.setID, c.session)
	snap.Loaded = len(c.staged)
	snap.LoadFailed = c.loadErr != nil
	return snap
}
