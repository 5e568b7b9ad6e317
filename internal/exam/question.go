package exam

import (
	"errors"
	"fmt"
)

// MinOptions is the smallest number of options a question may carry.
const MinOptions = 2

// SetID identifies a question set by language and set key, e.g. english/exam_01.
type SetID struct {
	Language string
	Key      string
}

// String returns the "language/key" form used in logs and status lines.
func (id SetID) String() string {
	return id.Language + "/" + id.Key
}

// IsZero reports whether no set has been selected.
func (id SetID) IsZero() bool {
	return id.Language == "" && id.Key == ""
}

// Question is a single multiple-choice record.
type Question struct {
	// Text is the prompt shown to the learner.
	Text string

	// Options are the answer choices in their authored order.
	Options []string

	// Answer is the index into Options of the correct choice.
	Answer int

	// Extra holds optional fields the content carries (questionAr, explanation, ...).
	// The session engine never reads it.
	Extra map[string]string
}

// CorrectOption returns the text of the correct option, or "" if Answer is out of range.
func (q Question) CorrectOption() string {
	if q.Answer < 0 || q.Answer >= len(q.Options) {
		return ""
	}
	return q.Options[q.Answer]
}

// Validate checks the record invariants.
func (q Question) Validate() error {
	if q.Text == "" {
		return errors.New("question text is empty")
	}
	if len(q.Options) < MinOptions {
		return fmt.Errorf("need at least %d options, got %d", MinOptions, len(q.Options))
	}
	if q.Answer < 0 || q.Answer >= len(q.Options) {
		return fmt.Errorf("answer index %d out of range [0, %d)", q.Answer, len(q.Options))
	}
	return nil
}

// ValidateSet checks every record and reports the first invalid one by its
// one-based position.
func ValidateSet(questions []Question) error {
	for i, q := range questions {
		if err := q.Validate(); err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	return nil
}
