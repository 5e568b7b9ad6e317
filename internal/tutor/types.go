package tutor

import "github.com/abhisek/flashlingo/internal/exam"

// Input is everything the tutor needs to explain one answered question.
type Input struct {
	Language string

	// Question is the record in its authored option order.
	Question exam.Question

	// Options is the order the learner saw.
	Options []string

	Selected     int
	CorrectIndex int
}

func (in Input) selectedText() string {
	if in.Selected >= 0 && in.Selected < len(in.Options) {
		return in.Options[in.Selected]
	}
	return ""
}

func (in Input) correctText() string {
	if in.CorrectIndex >= 0 && in.CorrectIndex < len(in.Options) {
		return in.Options[in.CorrectIndex]
	}
	return in.Question.CorrectOption()
}

func (in Input) key() string {
	return in.Language + "\x00" + in.Question.Text + "\x00" + in.correctText() + "\x00" + in.selectedText()
}

// Source says where an explanation came from.
type Source string

const (
	SourceContent Source = "content" // authored "explanation" field on the record
	SourceLLM     Source = "llm"
)

// Explanation is shown under the feedback for an answered question.
type Explanation struct {
	RequestID string
	Source    Source
	Text      string
	Mistake   string
	Example   string
}
