package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/flashlingo/internal/ui/theme"
)

// FilterInput wraps bubbles/textinput as a case-insensitive list filter.
type FilterInput struct {
	Model textinput.Model
}

// NewFilterInput creates a focused filter input with a steady cursor.
func NewFilterInput(placeholder string, maxLen int) FilterInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "/ "
	if maxLen > 0 {
		ti.CharLimit = maxLen
	}

	styles := ti.Styles()
	styles.Focused.Prompt = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	styles.Focused.Placeholder = lipgloss.NewStyle().Foreground(theme.TextDim)
	styles.Cursor.Blink = false
	ti.SetStyles(styles)

	ti.Focus()
	return FilterInput{Model: ti}
}

// Init returns nil; the cursor does not blink.
func (f FilterInput) Init() tea.Cmd {
	return nil
}

// Update forwards messages to the text input.
func (f FilterInput) Update(msg tea.Msg) (FilterInput, tea.Cmd) {
	var cmd tea.Cmd
	f.Model, cmd = f.Model.Update(msg)
	return f, cmd
}

// View renders the input.
func (f FilterInput) View() string {
	return f.Model.View()
}

// Value returns the current input value.
func (f FilterInput) Value() string {
	return f.Model.Value()
}

// Matches reports whether s passes the filter. An empty filter matches all.
func (f FilterInput) Matches(s string) bool {
	q := strings.TrimSpace(strings.ToLower(f.Model.Value()))
	return q == "" || strings.Contains(strings.ToLower(s), q)
}
