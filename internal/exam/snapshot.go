package exam

import "fmt"

// Snapshot is the observable state a presentation layer re-renders from after
// every mutating call.
type Snapshot struct {
	SetID        SetID
	Status       Status
	Position     int
	Total        int
	Score        int
	QuestionText string
	Options      []string
	IsAnswered   bool

	// Loaded is the size of the staged set, before or after it was started.
	Loaded     int
	LoadFailed bool
}

func snapshotOf(id SetID, s *Session) Snapshot {
	snap := Snapshot{
		SetID:    id,
		Status:   s.Status(),
		Position: s.Position(),
		Total:    s.Total(),
		Score:    s.Score(),
	}
	if p := s.Current(); p != nil {
		snap.QuestionText = p.Text()
		snap.Options = append([]string(nil), p.Options...)
		_, snap.IsAnswered = s.LastResult()
	}
	return snap
}

// StatusLine renders the one-line status message for a snapshot.
func StatusLine(snap Snapshot) string {
	switch snap.Status {
	case StatusInProgress:
		return fmt.Sprintf("Question %d of %d", snap.Position+1, snap.Total)
	case StatusFinished:
		return "Exam finished."
	}
	switch {
	case snap.LoadFailed:
		return "Exam load failed."
	case snap.Loaded > 0:
		return fmt.Sprintf("Loaded %d questions. Press Start.", snap.Loaded)
	case !snap.SetID.IsZero():
		return "Exam selected. Press Start."
	default:
		return "Select Exam to start."
	}
}
