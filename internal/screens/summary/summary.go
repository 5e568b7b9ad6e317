package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/flashlingo/internal/exam"
	"github.com/abhisek/flashlingo/internal/router"
	"github.com/abhisek/flashlingo/internal/screen"
	"github.com/abhisek/flashlingo/internal/ui/layout"
	"github.com/abhisek/flashlingo/internal/ui/theme"
)

// maxReviewRows bounds the per-question review list; longer runs scroll.
const maxReviewRows = 12

// SummaryScreen displays the end-of-exam summary.
type SummaryScreen struct {
	summary *exam.Summary
	restart func() screen.Screen
	offset  int
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen. restart builds a fresh exam over the same set;
// nil hides the retake key.
func New(summary *exam.Summary, restart func() screen.Screen) *SummaryScreen {
	return &SummaryScreen{summary: summary, restart: restart}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Exam Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Enter", Description: "Continue"}}
	if s.restart != nil {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Retake"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "enter", "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "r":
		if s.restart != nil {
			next := s.restart()
			return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		}
	case "down", "j":
		if s.summary != nil && s.offset+maxReviewRows < len(s.summary.Answers) {
			s.offset++
		}
	case "up", "k":
		if s.offset > 0 {
			s.offset--
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}

	var b strings.Builder

	b.WriteString(center(theme.Title.Render("Exam finished.")))
	b.WriteString("\n\n")
	b.WriteString(center(theme.Subtitle.Render(sum.SetID.String() + "   " + formatDuration(sum))))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Score: %d / %d        Answered: %d        Accuracy: %.0f%%",
		sum.Score, sum.Total, sum.Answered, sum.Accuracy*100)
	b.WriteString(center(theme.Body.Render(statsLine)))
	b.WriteString("\n\n")

	if len(sum.Answers) == 0 {
		b.WriteString(center(theme.Hint.Render("No questions were answered.")))
		return b.String()
	}

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", min(width-8, 60)))
	b.WriteString(center(theme.Dimmed.Render("Review")))
	b.WriteString("\n")
	b.WriteString(center(divider))
	b.WriteString("\n\n")

	end := min(s.offset+maxReviewRows, len(sum.Answers))
	for _, a := range sum.Answers[s.offset:end] {
		b.WriteString(center(reviewLine(a)))
		b.WriteString("\n")
	}
	if len(sum.Answers) > maxReviewRows {
		b.WriteString(center(theme.Hint.Render(fmt.Sprintf("%d-%d of %d", s.offset+1, end, len(sum.Answers)))))
	}

	return b.String()
}

func reviewLine(a exam.AnswerRecord) string {
	if a.Correct {
		return theme.Correct.Render("✓ ") + theme.Body.Render(fmt.Sprintf("%d. %s  %s", a.Index+1, a.Question, a.CorrectAnswer))
	}
	chosen := a.SelectedText
	if chosen == "" {
		chosen = "(none)"
	}
	return theme.Incorrect.Render("✗ ") + theme.Body.Render(fmt.Sprintf("%d. %s  ", a.Index+1, a.Question)) +
		theme.Incorrect.Render(chosen) + theme.Dimmed.Render(" → ") + theme.Correct.Render(a.CorrectAnswer)
}

func formatDuration(sum *exam.Summary) string {
	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", mins, secs)
}
