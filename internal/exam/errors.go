package exam

import (
	"errors"
	"fmt"
)

var (
	// ErrLoadFailed reports that the question set could not be fetched or parsed,
	// or that it contained no questions.
	ErrLoadFailed = errors.New("question set load failed")

	// ErrEmptySet is returned by Start when given no questions.
	ErrEmptySet = errors.New("question set is empty")

	// ErrInvalidTransition is returned when an operation is called outside the
	// state it is valid in. The session is never mutated in that case.
	ErrInvalidTransition = errors.New("invalid session transition")

	// ErrNoQuestion is returned by SubmitAnswer when nothing has been presented.
	ErrNoQuestion = fmt.Errorf("%w: no question presented", ErrInvalidTransition)

	// ErrSessionFinished is returned by PresentCurrent when the position has run
	// past the last question; the session has moved to StatusFinished.
	ErrSessionFinished = errors.New("session finished")
)

// transitionError wraps ErrInvalidTransition with the operation and the state it was
// attempted in.
func transitionError(op string, s Status) error {
	return fmt.Errorf("%w: %s while %s", ErrInvalidTransition, op, s)
}
