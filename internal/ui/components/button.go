package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/flashlingo/internal/ui/theme"
)

// Button is a styled button triggered by Enter or its shortcut key.
type Button struct {
	Label    string
	Shortcut string
	Active   bool
	OnPress  func() tea.Cmd
}

// NewButton creates a new button.
func NewButton(label, shortcut string, active bool, onPress func() tea.Cmd) Button {
	return Button{
		Label:    label,
		Shortcut: shortcut,
		Active:   active,
		OnPress:  onPress,
	}
}

// Update handles key events.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if !b.Active || b.OnPress == nil {
		return b, nil
	}

	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch k := kmsg.String(); {
		case k == "enter", b.Shortcut != "" && k == b.Shortcut:
			return b, b.OnPress()
		}
	}

	return b, nil
}

// View renders the button.
func (b Button) View() string {
	label := "▸ " + b.Label
	if b.Active {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}
