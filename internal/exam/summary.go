package exam

import "time"

// Summary holds the data displayed when a run ends.
type Summary struct {
	SetID    SetID
	Score    int
	Total    int
	Answered int
	Accuracy float64
	Duration time.Duration
	Answers  []AnswerRecord
}

// BuildSummary creates a Summary from a session. Accuracy is over the questions
// answered, not the whole set, so an early finish is not penalised twice.
func BuildSummary(id SetID, s *Session) *Summary {
	answers := s.Answers()

	var accuracy float64
	if len(answers) > 0 {
		accuracy = float64(s.Score()) / float64(len(answers))
	}

	return &Summary{
		SetID:    id,
		Score:    s.Score(),
		Total:    s.Total(),
		Answered: len(answers),
		Accuracy: accuracy,
		Duration: s.Elapsed(),
		Answers:  answers,
	}
}
