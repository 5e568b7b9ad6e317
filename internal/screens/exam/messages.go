package exam

import (
	engine "github.com/abhisek/flashlingo/internal/exam"
	"github.com/abhisek/flashlingo/internal/tutor"
)

// setLoadedMsg carries the result of fetching the question set.
type setLoadedMsg struct {
	ID        engine.SetID
	Questions []engine.Question
	Err       error
}

// explanationMsg carries a tutor explanation for the question at Index.
type explanationMsg struct {
	Index       int
	Explanation *tutor.Explanation
	Err         error
}
