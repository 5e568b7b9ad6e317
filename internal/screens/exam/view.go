package exam

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	engine "github.com/abhisek/flashlingo/internal/exam"
	"github.com/abhisek/flashlingo/internal/ui/components"
	"github.com/abhisek/flashlingo/internal/ui/theme"
)

func scoreText(score, total int) string {
	return fmt.Sprintf("%d/%d", score, total)
}

func (s *ExamScreen) View(width, height int) string {
	if s.quitConfirm {
		return renderQuitConfirm(width, height)
	}

	snap := s.ctrl.Snapshot()
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(s.renderStatus(snap, cw))
	b.WriteString("\n\n")

	switch s.phase {
	case phaseLoading:
		b.WriteString(theme.Hint.Render("Loading " + s.id.String() + "..."))
	case phaseReady:
		b.WriteString(s.renderReady(cw))
	case phaseQuestion:
		b.WriteString(s.choice.View())
	case phaseFeedback:
		b.WriteString(s.choice.View())
		b.WriteString("\n")
		b.WriteString(s.renderFeedback(cw))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Width(cw).Render(b.String()))
}

func (s *ExamScreen) renderStatus(snap engine.Snapshot, cw int) string {
	line := engine.StatusLine(snap)
	style := theme.Status
	if snap.LoadFailed {
		style = theme.Warning
	}
	if snap.Status != engine.StatusInProgress {
		return style.Render(line)
	}

	bar := components.NewProgressBar("", snap.Position, snap.Total, cw-lipgloss.Width(line)-2)
	return style.Render(line) + "  " + bar.View()
}

func (s *ExamScreen) renderReady(cw int) string {
	if err := s.ctrl.LoadErr(); err != nil {
		return theme.Dimmed.Width(cw).Render(err.Error()) + "\n\n" +
			theme.Hint.Render("Press R to try again.")
	}
	return s.start.View()
}

func (s *ExamScreen) renderFeedback(cw int) string {
	var b strings.Builder
	if s.result.Correct {
		b.WriteString(theme.Correct.Render("Correct!"))
	} else {
		b.WriteString(theme.Incorrect.Render("Not quite."))
		b.WriteString(theme.Body.Render(" The answer is " + s.present.Question.CorrectOption() + "."))
	}
	b.WriteString("\n")

	switch {
	case s.explaining:
		b.WriteString("\n" + theme.Hint.Render("Asking the tutor..."))
	case s.explainErr != nil:
		b.WriteString("\n" + theme.Warning.Render("No explanation available right now."))
	case s.explanation != nil:
		b.WriteString("\n" + components.Card(renderExplanation(s.explanation.Text, s.explanation.Mistake, s.explanation.Example), cw))
	}
	return b.String()
}

func renderExplanation(text, mistake, example string) string {
	parts := []string{theme.Body.Render(text)}
	if mistake != "" {
		parts = append(parts, theme.Incorrect.Render(mistake))
	}
	if example != "" {
		parts = append(parts, theme.Hint.Render("e.g. "+example))
	}
	return strings.Join(parts, "\n\n")
}

func renderQuitConfirm(width, height int) string {
	msg := theme.Warning.Render("Leave this exam?") + "\n\n" +
		theme.Body.Render("Your answers so far will be discarded.") + "\n\n" +
		theme.Hint.Render("Y to leave, N to keep going")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}
