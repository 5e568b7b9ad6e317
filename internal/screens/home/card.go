package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/flashlingo/internal/ui/theme"
)

// CardVariant selects which flash card art to display.
type CardVariant int

const (
	CardIdle  CardVariant = iota // Front of a card
	CardEmpty                    // Blank card, selected language has no exams
)

const cardIdle = `┌─────────┐
│  hello  │
│ ─────── │
│ bonjour │
└─────────┘`

const cardEmpty = `┌─────────┐
│         │
│    ?    │
│         │
└─────────┘`

// RenderCard returns the flash card art for the given variant.
func RenderCard(variant CardVariant) string {
	art, fg := cardIdle, theme.Secondary
	if variant == CardEmpty {
		art, fg = cardEmpty, theme.TextDim
	}
	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
