package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/flashlingo/internal/screens/welcome"
	"github.com/abhisek/flashlingo/internal/ui/theme"
)

// renderTitle returns the banner, or its compact form, centred in cw.
func renderTitle(cw int, compact bool) string {
	title := welcome.RenderBanner(cw)
	if compact {
		title = theme.Title.Render(welcome.BannerCompact)
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(title)
}

// renderStatsBar renders the catalog totals in a bordered box matching
// content width.
func renderStatsBar(languages, exams, cw int, compact bool) string {
	langStyle := lipgloss.NewStyle().Foreground(theme.Highlight).Bold(true)
	examStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s",
			langStyle.Render(fmt.Sprintf("◆%d", languages)),
			examStyle.Render(fmt.Sprintf("▤%d", exams)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s",
			langStyle.Render(fmt.Sprintf("◆ %d LANGUAGES", languages)),
			examStyle.Render(fmt.Sprintf("▤ %d EXAMS", exams)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2). // border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderNote renders the selected language's exam count or the empty notice.
func renderNote(note string, empty bool, cw int) string {
	style := theme.Hint
	if empty {
		style = theme.Warning
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(note))
}

// renderTutorBanner tells the learner how to turn on answer explanations.
func renderTutorBanner(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render("Set an LLM API key for answer explanations (flashlingo --help)")
}

// renderCardBox renders the card art centred in a box matching content width.
func renderCardBox(variant CardVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderCard(variant))
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderMenu renders each menu label as a fixed-width button.
func renderMenu(labels []string, selected, cw int, compact bool) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Highlight)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text)

	if !compact {
		selectedBtn = selectedBtn.Border(lipgloss.RoundedBorder()).BorderForeground(theme.Highlight)
		normalBtn = normalBtn.Border(lipgloss.RoundedBorder()).BorderForeground(theme.Border)
	}

	buttons := make([]string, len(labels))
	for i, label := range labels {
		if i == selected {
			buttons[i] = selectedBtn.Render("▸ " + label)
		} else {
			buttons[i] = normalBtn.Render(label)
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(lipgloss.JoinVertical(lipgloss.Center, buttons...))
}
