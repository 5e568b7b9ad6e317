package sets

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/flashlingo/internal/content"
	"github.com/abhisek/flashlingo/internal/exam"
	"github.com/abhisek/flashlingo/internal/router"
	"github.com/abhisek/flashlingo/internal/screen"
	"github.com/abhisek/flashlingo/internal/ui/components"
	"github.com/abhisek/flashlingo/internal/ui/layout"
	"github.com/abhisek/flashlingo/internal/ui/theme"
)

// NoExamsMessage is shown when the language has no sets.
const NoExamsMessage = "No exam available for this language."

const maxVisible = 10

// SetsScreen lists the question sets of one language behind a filter.
type SetsScreen struct {
	lang     string
	entries  []content.SetEntry
	openExam func(exam.SetID) screen.Screen

	filter  components.FilterInput
	visible []content.SetEntry
	cursor  int
	offset  int
}

var _ screen.Screen = (*SetsScreen)(nil)
var _ screen.KeyHintProvider = (*SetsScreen)(nil)
var _ screen.StatusProvider = (*SetsScreen)(nil)

// New creates a SetsScreen. openExam builds the exam screen for a chosen set.
func New(lang string, entries []content.SetEntry, openExam func(exam.SetID) screen.Screen) *SetsScreen {
	s := &SetsScreen{
		lang:     lang,
		entries:  entries,
		openExam: openExam,
		filter:   components.NewFilterInput("filter exams", 32),
	}
	s.refilter()
	return s
}

func (s *SetsScreen) Init() tea.Cmd {
	return s.filter.Init()
}

func (s *SetsScreen) Title() string {
	if s.lang == "" {
		return "Exams"
	}
	return strings.ToUpper(s.lang[:1]) + s.lang[1:] + " exams"
}

func (s *SetsScreen) HeaderStatus() string {
	return fmt.Sprintf("%d/%d", len(s.visible), len(s.entries))
}

func (s *SetsScreen) KeyHints() []layout.KeyHint {
	if len(s.entries) == 0 {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Type", Description: "Filter"},
		{Key: "Enter", Description: "Open"},
		{Key: "Esc", Description: "Back"},
	}
}

// Visible returns the entries passing the current filter.
func (s *SetsScreen) Visible() []content.SetEntry {
	return s.visible
}

func (s *SetsScreen) refilter() {
	s.visible = nil
	for _, e := range s.entries {
		if s.filter.Matches(e.Title) || s.filter.Matches(e.Key) {
			s.visible = append(s.visible, e)
		}
	}
	s.cursor = min(s.cursor, max(len(s.visible)-1, 0))
	s.offset = min(s.offset, s.cursor)
}

func (s *SetsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		var cmd tea.Cmd
		s.filter, cmd = s.filter.Update(msg)
		return s, cmd
	}

	switch kmsg.String() {
	case "up":
		if s.cursor > 0 {
			s.cursor--
		}
		if s.cursor < s.offset {
			s.offset = s.cursor
		}
		return s, nil
	case "down":
		if s.cursor < len(s.visible)-1 {
			s.cursor++
		}
		if s.cursor >= s.offset+maxVisible {
			s.offset = s.cursor - maxVisible + 1
		}
		return s, nil
	case "enter":
		return s, s.open()
	}

	var cmd tea.Cmd
	s.filter, cmd = s.filter.Update(msg)
	s.refilter()
	return s, cmd
}

func (s *SetsScreen) open() tea.Cmd {
	if len(s.visible) == 0 || s.openExam == nil {
		return nil
	}
	e := s.visible[s.cursor]
	next := s.openExam(exam.SetID{Language: s.lang, Key: e.Key})
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (s *SetsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	if len(s.entries) == 0 {
		msg := theme.Warning.Render(NoExamsMessage) + "\n\n" +
			theme.Hint.Render("Press Esc to pick another language.")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render(s.Title()))
	b.WriteString("\n\n")
	b.WriteString(s.filter.View())
	b.WriteString("\n\n")

	if len(s.visible) == 0 {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("No exams match %q.", s.filter.Value())))
	}

	end := min(s.offset+maxVisible, len(s.visible))
	for i := s.offset; i < end; i++ {
		e := s.visible[i]
		label := e.Title
		if label == "" {
			label = e.Key
		}
		style, prefix := theme.Unselected, "  "
		if i == s.cursor {
			style, prefix = theme.Selected, "▸ "
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%-20s", prefix, label)))
		b.WriteString(" " + theme.Hint.Render(e.Key) + "\n")
	}
	if len(s.visible) > maxVisible {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("%d-%d of %d", s.offset+1, end, len(s.visible))))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Width(cw).Render(b.String()))
}
